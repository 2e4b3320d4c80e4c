package main

// Default limits for CLI commands.
const (
	DefaultRevisionLimit      = 500
	DefaultSampleSize         = 10
	DefaultMinSampleRevisions = 10
)
