package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/groverneev/editwars/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize an editwars workspace",
		Long:  "Creates a .editwars directory with default configuration and the history cache.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("editwars already initialized in %s", cwd)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))

	// Creating the cache up front surfaces permission problems immediately.
	return withDeps(cmd.Context(), func(d *Deps) error {
		fmt.Printf("Created history cache: %s\n", d.Config.History.Path)
		fmt.Println("EditWars initialized successfully!")
		return nil
	})
}
