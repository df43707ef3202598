// Package models defines the data types flowing through the report pipeline.
package models

// Row is a single CSV line mapped by column name. Rows only live for the
// duration of one report run.
type Row map[string]string

// Get returns the value of the named column and whether the column exists
// in this row.
func (r Row) Get(column string) (string, bool) {
	value, ok := r[column]
	return value, ok
}

// AllGroup is the reserved group key used when no group-by column is given.
// Every row falls into this single group.
const AllGroup = "ALL"
