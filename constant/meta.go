// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Dsakit is the canonical application identifier used for filesystem paths and CLI branding.
	Dsakit = "dsakit"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden through -ldflags "-X" at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
