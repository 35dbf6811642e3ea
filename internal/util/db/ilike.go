package db

import (
	"fmt"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
)

// ILike creates a query mod for a case-insensitive pattern match against the given
// (optionally table-qualified) column. The search term is passed as bind parameter.
func ILike(searchTerm string, identifiers ...string) qm.QueryMod {
	return qm.Where(fmt.Sprintf("%s ILIKE ?", joinIdentifiers(identifiers)), searchTerm)
}

// ILikeSearch splits the given search string on whitespace and creates a combined
// query mod matching all resulting terms case-insensitively as infix patterns.
// LIKE special characters in the terms are escaped before matching.
func ILikeSearch(search string, identifiers ...string) qm.QueryMod {
	terms := strings.Fields(search)

	mods := make([]qm.QueryMod, 0, len(terms))
	for _, term := range terms {
		mods = append(mods, ILike("%"+EscapeLike(term)+"%", identifiers...))
	}

	return qm.Expr(mods...)
}

// EscapeLike escapes the LIKE pattern special characters "%" and "_" in the given string.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")

	return s
}

func joinIdentifiers(identifiers []string) string {
	return strings.Join(strmangle.IdentQuoteSlice('"', '"', identifiers), ".")
}
