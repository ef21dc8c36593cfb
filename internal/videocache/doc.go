// Package videocache persists resolved catalog lookups in a local SQLite
// database so repeated enrichment runs over the same rows skip the API.
//
// Not-found outcomes are cached too: an entry with no duration, publish
// time, or author marks a link the catalog could not resolve.
package videocache
