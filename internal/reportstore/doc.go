// Package reportstore persists analytics reports in SQLite.
//
// The store keeps one row per analyzed transcript: provenance (title, source
// path, content fingerprint), headline numbers for listing, and the full
// report serialized as JSON. A schema version guard refuses databases written
// by an incompatible build, and busy retries with backoff smooth over
// concurrent access from the CLI and watch mode.
package reportstore
