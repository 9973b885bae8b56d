package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kashvi-shop/internal/shell"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shop",
		Short:         "In-memory console shop",
		Long:          "A menu-driven shop for administrators and customers. State lives in memory for one run.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConsole,
	}

	// Console
	root.AddCommand(newRunCmd())
	root.AddCommand(newServeCmd())

	// Introspection
	root.AddCommand(newMenuListCmd())
	root.AddCommand(newSeedListCmd())
	return root
}

// runConsole serves the console on the command's streams until input ends or
// SIGINT/SIGTERM arrives.
func runConsole(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return shell.Start(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
