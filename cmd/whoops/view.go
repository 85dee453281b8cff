package main

import (
	"fmt"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/shhac/whoops/internal/app"
	"github.com/shhac/whoops/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the desktop report viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		fyneApp := fyneapp.NewWithID("com.whoops.viewer")
		whoops, err := app.New(fyneApp, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		// A crash inside the viewer becomes a report of its own.
		defer whoops.Recorder().Recover()

		window := ui.NewReportWindow(whoops.FyneApp(), whoops)
		whoops.Run(window.Window())

		whoops.Logger().Info("application shutdown complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	rootCmd.RunE = viewCmd.RunE
}
