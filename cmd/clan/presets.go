package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/infrastructure/config"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage simulation presets",
		RunE:  runPresetsList,
	}

	cmd.AddCommand(
		newPresetsListCmd(),
		newPresetsAddCmd(),
		newPresetsRemoveCmd(),
	)

	return cmd
}

func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all presets",
		RunE:  runPresetsList,
	}
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	presets, err := config.LoadPresets(cwd)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(presets.Presets) == 0 {
		fmt.Fprintln(out, "No presets configured.")
		fmt.Fprintln(out, "Use 'clan presets add NAME' to create a preset.")
		return nil
	}

	return formatPresets(out, presets)
}

func newPresetsAddCmd() *cobra.Command {
	var preset config.Preset

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add or replace a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			name, err := addPreset(cwd, args[0], preset)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset.Description, "description", "d", "", "Preset description")
	cmd.Flags().IntVar(&preset.Dragons, "dragons", 0, "Number of random dragons")
	cmd.Flags().IntVar(&preset.Interactions, "interactions", 0, "Number of interactions")
	cmd.Flags().Uint64Var(&preset.Seed, "preset-seed", 0, "Fixed seed for the preset")
	cmd.Flags().StringSliceVarP(&preset.Elements, "elements", "e", nil, "Extra dragons by element (e.g. Fire,Ice)")

	return cmd
}

func newPresetsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			if err := removePreset(cwd, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed preset %q\n", args[0])
			return nil
		},
	}
}

// addPreset validates and stores a preset, returning the name it was saved under.
func addPreset(basePath, name string, preset config.Preset) (string, error) {
	if config.SanitizeName(name) == "" {
		return "", fmt.Errorf("invalid preset name %q", name)
	}
	if preset.Dragons < 0 || preset.Interactions < 0 {
		return "", fmt.Errorf("dragons and interactions must not be negative")
	}
	for i, label := range preset.Elements {
		element, err := entities.ParseElement(label)
		if err != nil {
			return "", err
		}
		preset.Elements[i] = element.String()
	}

	presets, err := config.LoadPresets(basePath)
	if err != nil {
		return "", fmt.Errorf("loading presets: %w", err)
	}

	key := presets.Add(name, preset)
	if err := presets.Save(basePath); err != nil {
		return "", fmt.Errorf("saving presets: %w", err)
	}

	return key, nil
}

func removePreset(basePath, name string) error {
	presets, err := config.LoadPresets(basePath)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	if !presets.Exists(name) {
		return fmt.Errorf("preset %q not found", name)
	}

	presets.Remove(name)
	if err := presets.Save(basePath); err != nil {
		return fmt.Errorf("saving presets: %w", err)
	}

	return nil
}

func formatPresets(w io.Writer, presets *config.PresetsConfig) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDRAGONS\tINTERACTIONS\tSEED\tELEMENTS\tDESCRIPTION")
	for _, name := range presets.Names() {
		p := presets.Presets[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			name,
			orDefault(p.Dragons),
			orDefault(p.Interactions),
			orRandom(p.Seed),
			strings.Join(p.Elements, ","),
			p.Description,
		)
	}
	return tw.Flush()
}

func orDefault(v int) string {
	if v == 0 {
		return "default"
	}
	return fmt.Sprint(v)
}

func orRandom(seed uint64) string {
	if seed == 0 {
		return "random"
	}
	return fmt.Sprint(seed)
}
