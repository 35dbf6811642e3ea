package db

import (
	"fmt"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// InnerJoin creates a query mod joining joinTable on baseTable.baseColumn = joinTable.joinColumn.
func InnerJoin(baseTable string, baseColumn string, joinTable string, joinColumn string) qm.QueryMod {
	return qm.InnerJoin(fmt.Sprintf("%s ON %s.%s = %s.%s", joinTable, baseTable, baseColumn, joinTable, joinColumn))
}

// LeftOuterJoin creates a query mod left-joining joinTable on baseTable.baseColumn = joinTable.joinColumn.
func LeftOuterJoin(baseTable string, baseColumn string, joinTable string, joinColumn string) qm.QueryMod {
	return qm.LeftOuterJoin(fmt.Sprintf("%s ON %s.%s = %s.%s", joinTable, baseTable, baseColumn, joinTable, joinColumn))
}
