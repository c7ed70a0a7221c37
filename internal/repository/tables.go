package repository

import (
	"errors"
	"strings"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrNoRelationship = errors.New("no relationship between products and categories")
)

// Tables names the two store tables. Revisions of the schema differ only in
// casing, so the names are configuration rather than model metadata.
type Tables struct {
	Products   string
	Categories string
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
