package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/application/handlers"
	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/services"
	"github.com/ersonp/dragon-clan/internal/infrastructure/events"
)

type dragonFlags struct {
	name    string
	element string
	age     int
}

func newDragonCmd() *cobra.Command {
	var flags dragonFlags

	cmd := &cobra.Command{
		Use:   "dragon",
		Short: "Generate a dragon and print its character sheet",
		Long: "Generates a single dragon. Unset attributes are drawn at random; " +
			"an unknown element falls back to Fire.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDragon(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Dragon name (default: generated)")
	cmd.Flags().StringVarP(&flags.element, "element", "e", "", "Element (Fire, Water, Earth, Wind, Lightning, Ice)")
	cmd.Flags().IntVarP(&flags.age, "age", "a", 0, fmt.Sprintf("Age %d-%d (default: random)", services.MinDragonAge, services.MaxDragonAge))

	return cmd
}

func runDragon(cmd *cobra.Command, flags dragonFlags) error {
	return withDeps(func(d *Deps) error {
		ctx := cmd.Context()
		rng := newRandom(d.Config.Simulation.Seed)
		generator := services.NewCharacterGenerator(rng)

		// A preview clan; nothing is journaled.
		preview := handlers.NewClanHandler(rng, events.Discard{})
		if _, err := preview.CreateClan(ctx, 0); err != nil {
			return err
		}

		element := flags.element
		if element == "" {
			element = generator.RandomElement().String()
		}

		var err error
		if flags.name == "" && flags.age == 0 {
			_, err = preview.AddElementalDragon(ctx, element)
		} else {
			name, age := flags.name, flags.age
			if name == "" {
				parsed, _ := entities.ParseElement(element)
				name = services.NewNameGenerator(rng).DragonName(&parsed)
			}
			if age == 0 {
				age = generator.RandomAge()
			}
			_, err = preview.AddDragon(ctx, name, element, age)
		}
		if err != nil {
			return fmt.Errorf("generating dragon: %w", err)
		}

		info, err := preview.Dragon(0)
		if err != nil {
			return err
		}
		sheet, err := preview.CharacterInfo(0)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s the %s dragon (%s)\n\n", info.Name, info.Element, info.InteractionStyle)
		fmt.Fprint(out, sheet)
		return nil
	})
}
