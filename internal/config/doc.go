// Package config loads, normalizes, and validates watchlog's TOML
// configuration.
//
// Configuration resolution checks an explicit --config path first, then
// ~/.config/watchlog/config.toml, then a watchlog.toml in the working
// directory. Missing files fall back to repository defaults so read-only
// operations work without any setup; only catalog-backed operations require
// an API key.
package config
