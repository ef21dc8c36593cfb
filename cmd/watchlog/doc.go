// Command watchlog maintains a video watch-log workbook: it enriches rows
// holding video links with catalog metadata, aggregates dated routines by
// color, sorts tag columns, detects duplicate links, and projects the sheet
// to JSON.
package main
