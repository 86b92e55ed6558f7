// Package dataset holds the in-memory table the report pipeline operates on.
//
// A Table is a header plus rows of cells. Cells distinguish a missing value
// from an empty string so that blank input fields behave like absent values
// during merging, deduplication and numeric conversion.
//
// Tables are treated as immutable: Concat, DropDuplicates, Head and
// WithColumn all return a new Table and never modify their inputs.
package dataset
