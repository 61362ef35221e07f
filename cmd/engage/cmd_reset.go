package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd restores the sample data
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore sample data",
	Long:  `Overwrites the state file with the built-in sample catalog.`,
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	store := newStore()
	if _, err := store.Reset(); err != nil {
		return fmt.Errorf("failed to reset state: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sample data restored to %s\n", store.Path())
	return nil
}
