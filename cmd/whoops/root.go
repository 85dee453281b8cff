package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shhac/whoops/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "whoops",
	Short: "Whoops collects and shows crash reports for Go programs",
	Long: `Whoops stores panics and errors as crash reports and shows them as
expandable cards, in a desktop window or in the terminal.`,
	SilenceUsage: true,
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("storage", "", "Directory holding crash reports (default ~/.whoops)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadConfig layers the config file, the environment and the command-line
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*app.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := app.LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("storage") {
		cfg.StoragePath, _ = cmd.Flags().GetString("storage")
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
	return cfg, nil
}
