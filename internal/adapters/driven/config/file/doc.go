// Package file provides the file-based configuration store.
//
// Configuration lives in a TOML file, ~/.ocrr/config.toml by default.
// The file is optional: a missing file reads as empty configuration and
// is only created when a value is set.
package file
