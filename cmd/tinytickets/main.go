package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tinytickets/tinytickets/internal/interfaces/cli/migrate"
	"github.com/tinytickets/tinytickets/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tinytickets",
		Short: "Tiny Tickets - asset ticketing backend",
		Long:  `Tiny Tickets serves the ticket API and frontend, and manages its database schema.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
