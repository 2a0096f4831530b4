// Package config holds the tool version and the parameters of one run.
package config

// Version is set at build time via -ldflags.
var Version = "dev"

// Config carries the parameters for a single grouping run. Paths are
// explicit arguments rather than process-wide constants so the pipeline can
// be exercised against fixture files in tests.
type Config struct {
	// InputPath is the enriched-links JSON document to read.
	InputPath string
	// OutputPath is where the grouped document is written. Must differ from
	// InputPath; the input is never modified in place.
	OutputPath string
	// StatsCSVPath, when non-empty, also writes the top-country aggregates
	// as CSV.
	StatsCSVPath string
}
