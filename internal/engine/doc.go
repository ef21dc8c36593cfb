// Package engine implements the watchlog operations over a sheet.Source.
//
// One Engine owns one worksheet for the duration of one operation: links
// (catalog enrichment), duplicates, routines, tags, and json projection. The
// worksheet is saved when the operation returns, on success and failure
// alike, so mutations written before an error are retained.
//
// The workbook layout is conventional: row 1 holds header labels, column 2
// holds the link (and projection key) values, and data starts at row 2.
// The placeholder "." marks cells awaiting enrichment; the engine never
// overwrites a cell holding anything else.
package engine
