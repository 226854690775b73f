// Package ingest turns uploaded files into records.
//
// Workbooks (.xlsx, .xlsm, and legacy BIFF .xls) are read from their first sheet with the first row
// as the header; every later non-empty row becomes one record whose values are
// the cell texts, with missing cells as empty text. JSON input may be a single
// object or an array of objects. Any other input is rejected with an
// UnsupportedInputError.
package ingest
