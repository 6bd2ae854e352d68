package main

// Default limits for CLI commands.
const (
	DefaultEventLimit  = 50
	DefaultRunLimit    = 20
	DefaultExportLimit = 1000
	DefaultNameCount   = 10
)

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}
