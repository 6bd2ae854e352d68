package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/services"
)

type namesFlags struct {
	count   int
	element string
	clan    bool
}

func newNamesCmd() *cobra.Command {
	var flags namesFlags

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Generate dragon or clan names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.count, "count", "c", DefaultNameCount, "Number of names")
	cmd.Flags().StringVarP(&flags.element, "element", "e", "", "Flavour dragon names by element")
	cmd.Flags().BoolVar(&flags.clan, "clan", false, "Generate clan names instead of dragon names")

	return cmd
}

func runNames(cmd *cobra.Command, flags namesFlags) error {
	if flags.count <= 0 {
		return fmt.Errorf("count must be positive, got %d", flags.count)
	}

	var element *entities.Element
	if flags.element != "" {
		parsed, err := entities.ParseElement(flags.element)
		if err != nil {
			return err
		}
		element = &parsed
	}

	return withDeps(func(d *Deps) error {
		generator := services.NewNameGenerator(newRandom(d.Config.Simulation.Seed))
		out := cmd.OutOrStdout()

		if flags.clan {
			for range flags.count {
				fmt.Fprintln(out, generator.ClanName())
			}
			return nil
		}

		for _, name := range generator.DragonNames(flags.count, element) {
			fmt.Fprintln(out, name)
		}
		return nil
	})
}
