// Package data loads tabular files into immutable row sets and derives
// filtered and edited copies of them.
//
// A RowSet is never modified after it has been handed out. Filtering and
// editing return a new RowSet with a new generation ID, so a view can keep
// drawing the old set until it swaps in the new one.
//
// Supported formats, chosen by file extension:
//
//   - .csv, .tsv: first record is the header
//   - .json: an array of objects, or JSON lines
//   - .jsonl, .ndjson: JSON lines
//   - .xlsx, .xlsm: first sheet unless a sheet is named; first row is the header
package data
