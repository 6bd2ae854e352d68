package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/application/handlers"
	"github.com/ersonp/dragon-clan/internal/infrastructure/events"
)

type compatFlags struct {
	elementA string
	elementB string
	rounds   int
}

func newCompatCmd() *cobra.Command {
	var flags compatFlags

	cmd := &cobra.Command{
		Use:   "compat",
		Short: "Score how well two generated dragons get along",
		Long: "Generates two dragons and prints compatibility and value alignment in both " +
			"directions, optionally followed by a number of alternating interactions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompat(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.elementA, "element-a", "Fire", "Element of the first dragon")
	cmd.Flags().StringVar(&flags.elementB, "element-b", "Water", "Element of the second dragon")
	cmd.Flags().IntVarP(&flags.rounds, "rounds", "r", 0, "Interactions to run between the pair, alternating initiator")

	return cmd
}

func runCompat(cmd *cobra.Command, flags compatFlags) error {
	return withDeps(func(d *Deps) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		pair := handlers.NewClanHandler(newRandom(d.Config.Simulation.Seed), events.Discard{})
		if _, err := pair.CreateClan(ctx, 0); err != nil {
			return err
		}
		for _, element := range []string{flags.elementA, flags.elementB} {
			if _, err := pair.AddElementalDragon(ctx, element); err != nil {
				return fmt.Errorf("generating %s dragon: %w", element, err)
			}
		}

		tw := newTable(out)
		fmt.Fprintln(tw, "FROM\tTO\tCOMPATIBILITY\tALIGNMENT")
		for _, p := range [][2]int{{0, 1}, {1, 0}} {
			report, err := pair.Compatibility(p[0], p[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%+d\t%+d\n", report.From, report.To, report.Compatibility, report.Alignment)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if flags.rounds <= 0 {
			return nil
		}

		fmt.Fprintln(out)
		for n := 1; n <= flags.rounds; n++ {
			from, to := (n-1)%2, n%2
			event, err := pair.Interact(ctx, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatInteraction(n, event.Description, event.OpinionChange))
		}

		fmt.Fprintln(out)
		dragons := pair.Dragons()
		for _, p := range [][2]int{{0, 1}, {1, 0}} {
			info, err := pair.RelationshipInfo(p[0], p[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s → %s: %s\n", dragons[p[0]].Name, dragons[p[1]].Name, info)
		}
		return nil
	})
}
