package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ersonp/dragon-clan/internal/application/handlers"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
	"github.com/ersonp/dragon-clan/internal/infrastructure/config"
	"github.com/ersonp/dragon-clan/internal/infrastructure/events"
	"github.com/ersonp/dragon-clan/internal/infrastructure/logging"
	"github.com/ersonp/dragon-clan/internal/infrastructure/random"
	"github.com/ersonp/dragon-clan/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds the dependencies shared by commands.
type Deps struct {
	BasePath string
	Config   *config.Config
	Presets  *config.PresetsConfig
	Bus      *events.Bus

	// Journal is nil when journaling is disabled or the project is not initialized.
	Journal ports.EventJournal
}

// withDeps loads config, sets up logging and the journal, then calls the provided function.
// It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if globalSeed != 0 {
		cfg.Simulation.Seed = globalSeed
	}
	if globalLogLevel != "" {
		cfg.Logging.Level = globalLogLevel
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.Logging.Format)

	presets, err := config.LoadPresets(cwd)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	deps := &Deps{
		BasePath: cwd,
		Config:   cfg,
		Presets:  presets,
		Bus:      events.NewBus(logging.New("events")),
	}

	if cfg.Journal.Enabled && (config.Exists(cwd) || cfg.Journal.Path != "") {
		journal, err := openJournal(cfg.JournalPath(cwd))
		if err != nil {
			return err
		}
		defer journal.Close()
		deps.Journal = journal
	}

	return fn(deps)
}

// withJournal requires an open journal.
func withJournal(fn func(ports.EventJournal) error) error {
	return withDeps(func(d *Deps) error {
		if d.Journal == nil {
			return fmt.Errorf("journal unavailable (run 'clan init' and enable journal in config)")
		}
		return fn(d.Journal)
	})
}

// openJournal opens the sqlite journal at path and ensures its schema.
func openJournal(path string) (ports.EventJournal, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	repo, err := sqlite.NewRepository(path)
	if err != nil {
		return nil, fmt.Errorf("creating sqlite journal: %w", err)
	}
	if err := repo.EnsureSchema(context.Background()); err != nil {
		repo.Close()
		return nil, fmt.Errorf("ensuring journal schema: %w", err)
	}
	return repo, nil
}

// newRandom creates the random source for a run.
func newRandom(seed uint64) *random.Source {
	return random.New(seed)
}

// sink builds the event pipeline for a run: structured log, in-process bus and,
// when available, the journal.
func (d *Deps) sink(seed uint64) ports.EventSink {
	fanout := events.Fanout{
		events.NewLogSink(logging.New("events"), slog.LevelDebug),
		d.Bus,
	}
	if d.Journal != nil {
		fanout = append(fanout, events.NewRunSink(d.Journal, seed))
	}
	return fanout
}

// newClanHandler creates a clan handler wired to the run's random source and event pipeline.
func (d *Deps) newClanHandler(rng *random.Source) *handlers.ClanHandler {
	return handlers.NewClanHandler(rng, d.sink(rng.Seed()))
}
