// Package output writes operation results as indented JSON files.
//
// File names follow the output_<suffix>.json convention where the suffix is
// a user-provided name, a UUID, or a wall-clock timestamp. Empty results are
// never written.
package output
