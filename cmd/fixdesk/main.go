package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixdesk/internal/interfaces/cli/migrate"
	"fixdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixdesk",
		Short: "FixDesk - service ticket backend for a printer repair workshop",
		Long:  `FixDesk is the ticket management backend for a 3D printer repair workshop, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
