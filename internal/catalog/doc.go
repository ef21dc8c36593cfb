// Package catalog implements the video catalog API client used to resolve
// link metadata during enrichment.
//
// A lookup requests one facet at a time: content details (the compact
// duration notation) or the descriptive snippet (publish timestamp and
// channel name). A response with no items is the valid "not found" outcome
// and is surfaced as such, never as an error.
package catalog
