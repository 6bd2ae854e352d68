// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dragon-clan/internal/domain/ports"
	"github.com/ersonp/dragon-clan/internal/infrastructure/config"
)

// JournalOpener opens the event journal stored at path.
type JournalOpener func(path string) (ports.EventJournal, error)

// InitHandler handles project initialization.
type InitHandler struct {
	openJournal JournalOpener
}

// NewInitHandler creates a new init handler. A nil opener skips journal setup.
func NewInitHandler(openJournal JournalOpener) *InitHandler {
	return &InitHandler{
		openJournal: openJournal,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath  string
	JournalPath string
}

// Handle writes the default config and prepares the journal schema.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("dragon clan already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{ConfigPath: config.ConfigFilePath(basePath)}
	if !cfg.Journal.Enabled || h.openJournal == nil {
		return result, nil
	}

	path := cfg.JournalPath(basePath)
	journal, err := h.openJournal(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer journal.Close()

	if err := journal.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}

	result.JournalPath = path
	return result, nil
}
