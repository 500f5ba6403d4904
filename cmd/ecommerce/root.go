package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const envFile = ".env"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecommerce",
		Short:         "E-commerce catalog backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv()
		},
	}

	root.AddCommand(newServeCmd(), newWorkerCmd(), newMigrateCmd())

	return root
}

// loadDotEnv populates the environment from .env when the file exists.
// Variables already set in the process win.
func loadDotEnv() error {
	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		return err
	}
	slog.Debug("Loaded environment file", slog.String("path", envFile))

	return nil
}
