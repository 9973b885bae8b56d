package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kashvi-shop/database/seeders"
)

// shop seed:list: print the seeders run at startup, in order.
func newSeedListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed:list",
		Short: "List the seeders that fill the store at startup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, name := range seeders.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
			}
			return nil
		},
	}
}
