package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses a roster from a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the roster entries.
func (p *JSONParser) Parse(r io.Reader) ([]RawDragon, error) {
	var dragons []RawDragon

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&dragons); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	for i := range dragons {
		dragons[i].LineNum = i + 1
		if dragons[i].Name == "" {
			return nil, fmt.Errorf("entry %d: name is required", i+1)
		}
	}

	return dragons, nil
}
