package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a dragon clan project",
		Long:  "Creates a .dragonclan directory with default configuration and prepares the event journal.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler(openJournal).Handle(cmd.Context(), cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	if result.JournalPath != "" {
		fmt.Printf("Created event journal: %s\n", result.JournalPath)
	}
	fmt.Println("Dragon clan initialized successfully!")

	return nil
}
