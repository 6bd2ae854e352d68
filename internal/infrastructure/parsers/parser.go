// Package parsers reads dragon rosters from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawDragon is a roster entry before validation. Empty Element and zero Age
// are filled in at random by the caller.
type RawDragon struct {
	Name    string `json:"name"`
	Element string `json:"element,omitempty"`
	Age     int    `json:"age,omitempty"`
	LineNum int    `json:"-"` // Line number in source file (set by parser)
}

// Parser defines the interface for parsing rosters.
type Parser interface {
	Parse(r io.Reader) ([]RawDragon, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}
