package db_test

import (
	"testing"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/stretchr/testify/assert"
	"github.com/tesserex/custody/internal/models"
	"github.com/tesserex/custody/internal/test"
	"github.com/tesserex/custody/internal/util/db"
)

func TestILike(t *testing.T) {
	query := models.NewQuery(
		qm.Select("*"),
		qm.From("deposit_addresses"),
		db.InnerJoin("deposit_addresses", "id", "deposits", "deposit_address_id"),
		db.ILike("%0xAb58%", "deposit_addresses", "address"),
		db.ILike("eth", "deposits", "tx_hash"),
	)

	sql, args := queries.BuildQuery(query)

	test.Snapshoter.Label("SQL").Save(t, sql)
	test.Snapshoter.Label("Args").Save(t, args...)
}

func TestEscapeLike(t *testing.T) {
	res := db.EscapeLike("%foo% _b%a_r%")
	assert.Equal(t, "\\%foo\\% \\_b\\%a\\_r\\%", res)
}

func TestILikeSearch(t *testing.T) {
	query := models.NewQuery(
		qm.Select("*"),
		qm.From("deposit_addresses"),
		db.InnerJoin("deposit_addresses", "id", "deposits", "deposit_address_id"),
		db.ILikeSearch("  0xab%58 7f_aa  ", "deposit_addresses", "address"),
	)

	sql, args := queries.BuildQuery(query)

	test.Snapshoter.Label("SQL").Save(t, sql)
	test.Snapshoter.Label("Args").Save(t, args...)
}
