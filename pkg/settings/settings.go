// Package settings provides build metadata, runtime configuration, and
// context helpers used across the bpx CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "bpx"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the application.
type Run struct {
	MinLogLevel int8
	NoColor     bool
	ConfigFile  string
	// Width overrides the measured terminal width when positive.
	Width  int
	Height int
}

// NewCliParams returns the defaults used by the CLI before flags are applied.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		NoColor:     false,
	}
}

// LogLevel maps the debug flag to a zap level: -1 (debug) or 0 (info).
func LogLevel(debug bool) int8 {
	if debug {
		return -1
	}
	return 0
}
