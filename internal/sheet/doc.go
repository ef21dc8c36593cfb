// Package sheet abstracts the worksheet a watchlog operation runs against.
//
// The engine only ever sees the Source interface: 1-based cell access, cell
// mutation, fill-color lookup, and save. The XLSX implementation wraps an
// excelize workbook; Memory is an in-memory double for tests. Cell values are
// normalized to nil (empty), string, float64, or time.Time so the engine can
// classify them with StateOf without knowing the backing format.
package sheet
