package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groverneev/editwars/internal/domain/ports"
)

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List pages with cached histories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(_ *Deps, store ports.HistoryStore) error {
				titles, err := store.ListPages(cmd.Context())
				if err != nil {
					return fmt.Errorf("listing cached pages: %w", err)
				}

				if len(titles) == 0 {
					fmt.Println("No cached histories")
					return nil
				}

				for _, title := range titles {
					fmt.Println(title)
				}
				return nil
			})
		},
	}
}

func newForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <page title>",
		Short: "Remove a page's cached history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(_ *Deps, store ports.HistoryStore) error {
				if err := store.DeleteHistory(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("removing cached history: %w", err)
				}
				fmt.Printf("Forgot cached history for %s\n", args[0])
				return nil
			})
		},
	}
}
