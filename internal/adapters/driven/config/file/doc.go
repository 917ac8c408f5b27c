// Package file provides a TOML-backed configuration store.
// Configuration is kept in ~/.fbimport/config.toml with owner-only permissions.
package file
