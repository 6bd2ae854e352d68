package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/application/handlers"
	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/services"
	"github.com/ersonp/dragon-clan/internal/infrastructure/config"
	"github.com/ersonp/dragon-clan/internal/infrastructure/parsers"
)

type simulateFlags struct {
	dragons      int
	interactions int
	preset       string
	roster       string
	matrix       bool
	details      bool
}

func newSimulateCmd() *cobra.Command {
	var flags simulateFlags

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Create a clan and simulate interactions",
		Long: "Creates a clan of random dragons, runs a series of pairwise interactions and " +
			"prints the interaction log. Events are journaled when the journal is enabled.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.dragons, "dragons", "d", 0, "Number of dragons (default from config)")
	cmd.Flags().IntVarP(&flags.interactions, "interactions", "n", 0, "Number of interactions (default from config)")
	cmd.Flags().StringVarP(&flags.preset, "preset", "p", "", "Simulation preset to start from")
	cmd.Flags().StringVar(&flags.roster, "roster", "", "JSON or CSV file of named dragons to add")
	cmd.Flags().BoolVarP(&flags.matrix, "matrix", "m", false, "Print the relationship matrix")
	cmd.Flags().BoolVar(&flags.details, "details", false, "Print every dragon's character sheet")

	return cmd
}

// resolveSimulation layers config defaults, an optional preset, then explicit flags.
func resolveSimulation(cfg config.SimulationConfig, presets *config.PresetsConfig, flags simulateFlags) (config.SimulationConfig, []string, error) {
	var elements []string
	if flags.preset != "" {
		preset, err := presets.Get(flags.preset)
		if err != nil {
			return cfg, nil, err
		}
		cfg = preset.Apply(cfg)
		elements = preset.Elements
	}
	if globalSeed != 0 {
		cfg.Seed = globalSeed
	}
	if flags.dragons > 0 {
		cfg.InitialDragons = flags.dragons
	}
	if flags.interactions > 0 {
		cfg.Interactions = flags.interactions
	}
	return cfg, elements, nil
}

func runSimulate(cmd *cobra.Command, flags simulateFlags) error {
	return withDeps(func(d *Deps) error {
		sim, elements, err := resolveSimulation(d.Config.Simulation, d.Presets, flags)
		if err != nil {
			return err
		}

		var roster []parsers.RawDragon
		if flags.roster != "" {
			if roster, err = loadRoster(flags.roster); err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		rng := newRandom(sim.Seed)
		handler := d.newClanHandler(rng)

		var failures []string
		stopErrors := d.Bus.Subscribe(entities.EventError, func(e entities.Event) {
			failures = append(failures, eventDetails(e))
		})
		defer stopErrors()

		if _, err := handler.CreateClan(ctx, sim.InitialDragons); err != nil {
			return fmt.Errorf("creating clan: %w", err)
		}
		for _, element := range elements {
			if _, err := handler.AddElementalDragon(ctx, element); err != nil {
				return fmt.Errorf("adding %s dragon: %w", element, err)
			}
		}
		if err := addRoster(ctx, handler, services.NewCharacterGenerator(rng), roster); err != nil {
			return err
		}

		stats, err := handler.Stats()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s (%d dragons, seed %d)\n\n", stats.Name, stats.DragonCount, rng.Seed())
		if err := formatRoster(out, handler.Dragons()); err != nil {
			return err
		}
		fmt.Fprintln(out)

		if err := simulateLog(ctx, out, d, handler, sim.Interactions); err != nil {
			return err
		}

		if flags.matrix {
			fmt.Fprintln(out, "\nRelationships (row's opinion of column):")
			if err := printMatrix(out, handler); err != nil {
				return err
			}
		}

		if flags.details {
			for i := range handler.Dragons() {
				sheet, err := handler.CharacterInfo(i)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s", sheet)
			}
		}

		for _, f := range failures {
			fmt.Fprintf(out, "warning: %s\n", f)
		}
		return nil
	})
}

// simulateLog runs the interactions and prints each one as the bus reports it.
func simulateLog(ctx context.Context, out io.Writer, d *Deps, handler *handlers.ClanHandler, count int) error {
	n := 0
	stop := d.Bus.Subscribe(entities.EventInteractionSimulated, func(e entities.Event) {
		n++
		description, _ := e.Payload["description"].(string)
		change, _ := e.Payload["opinion_change"].(int)
		fmt.Fprintln(out, formatInteraction(n, description, change))
	})
	defer stop()

	results, err := handler.SimulateInteractions(ctx, count)
	if err != nil {
		return fmt.Errorf("simulating interactions: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "Not enough dragons to interact.")
		return nil
	}

	stats, err := handler.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d interactions, %d relationships formed.\n", stats.Interactions, stats.Relationships)
	return nil
}

func printMatrix(out io.Writer, handler *handlers.ClanHandler) error {
	dragons := handler.Dragons()
	names := make([]string, len(dragons))
	opinions := make([][]int, len(dragons))
	for i, from := range dragons {
		names[i] = from.Name
		opinions[i] = make([]int, len(dragons))
		for j := range dragons {
			if i == j {
				continue
			}
			opinion, err := handler.Opinion(i, j)
			if err != nil {
				return err
			}
			opinions[i][j] = opinion
		}
	}
	return formatMatrix(out, names, opinions)
}
