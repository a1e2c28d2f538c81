// Package config provides process-level defaults for the transcoding
// tools. Batch converters run against one game version and one source
// codepage at a time; both can be selected through the environment
// instead of being threaded through every call site.
package config

import "os"

const (
	// Version is the fontbank-go version string
	Version = "0.3.1"

	// DefaultTextVersion is assumed when no game version is named.
	DefaultTextVersion = "jak1-v2"

	// DefaultCodepage is assumed for undeclared source text.
	DefaultCodepage = "UTF-8"
)

// TextVersion returns $GAMETEXT_VERSION, or the default when unset.
func TextVersion() string {
	if v := os.Getenv("GAMETEXT_VERSION"); v != "" {
		return v
	}
	return DefaultTextVersion
}

// Codepage returns $GAMETEXT_CODEPAGE, or the default when unset.
func Codepage() string {
	if v := os.Getenv("GAMETEXT_CODEPAGE"); v != "" {
		return v
	}
	return DefaultCodepage
}
