package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/dragon-clan/internal/application/handlers"
	"github.com/ersonp/dragon-clan/internal/domain/services"
	"github.com/ersonp/dragon-clan/internal/infrastructure/parsers"
)

// loadRoster reads a JSON or CSV roster, picking the parser by file extension.
func loadRoster(path string) ([]parsers.RawDragon, error) {
	parser := parsers.ForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported roster format %q (use .json or .csv)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	roster, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return roster, nil
}

// addRoster adds every roster entry to the clan, drawing a missing element or age at random.
func addRoster(ctx context.Context, handler *handlers.ClanHandler, generator *services.CharacterGenerator, roster []parsers.RawDragon) error {
	for _, raw := range roster {
		element := raw.Element
		if element == "" {
			element = generator.RandomElement().String()
		}
		age := raw.Age
		if age <= 0 {
			age = generator.RandomAge()
		}
		if _, err := handler.AddDragon(ctx, raw.Name, element, age); err != nil {
			return fmt.Errorf("roster line %d: %w", raw.LineNum, err)
		}
	}
	return nil
}
