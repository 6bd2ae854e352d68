package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVParser parses a roster from CSV with a header row.
type CSVParser struct{}

// Parse reads CSV from the reader and returns the roster entries.
// Expected columns: name, element, age (only name is required).
func (p *CSVParser) Parse(r io.Reader) ([]RawDragon, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	if _, ok := colIndex["name"]; !ok {
		return nil, fmt.Errorf("missing required column: name")
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawDragons.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawDragon, error) {
	var dragons []RawDragon
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		dragon, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		dragons = append(dragons, dragon)
	}

	return dragons, nil
}

// parseRecord converts a CSV record to a RawDragon.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawDragon, error) {
	dragon := RawDragon{
		Name:    getColumn(record, colIndex, "name"),
		Element: getColumn(record, colIndex, "element"),
		LineNum: lineNum,
	}
	if dragon.Name == "" {
		return RawDragon{}, fmt.Errorf("line %d: name is required", lineNum)
	}

	ageStr := getColumn(record, colIndex, "age")
	if ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil {
			return RawDragon{}, fmt.Errorf("line %d: invalid age value %q: %w", lineNum, ageStr, err)
		}
		dragon.Age = age
	}

	return dragon, nil
}

// getColumn safely retrieves a trimmed column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
