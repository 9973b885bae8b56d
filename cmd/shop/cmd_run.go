package main

import "github.com/spf13/cobra"

// shop run: start the console.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the console (alias: serve)",
		Args:  cobra.NoArgs,
		RunE:  runConsole,
	}
}

// shop serve: alias kept for muscle memory.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "serve",
		Short:  "Start the console",
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE:   runConsole,
	}
}
