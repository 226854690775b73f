// Package config loads, normalizes, and validates ladderview configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the LADDERVIEW_SHARE_BASE_URL environment fallback.
// The Config type gathers every knob the CLI and the HTTP viewer need: log and
// state directories, server limits, share link shape, and the list of
// redundant fields hidden from record details.
package config
