package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shhac/whoops/internal/app"
	"github.com/shhac/whoops/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse crash reports in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// File logging only; stderr belongs to the terminal UI.
		whoops, err := app.New(nil, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		model := tui.New(whoops.Storage(), whoops.Logger(), tui.Options{
			Limit:    cfg.ListLimit,
			Duration: cfg.AnimationDuration,
		})
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("terminal viewer: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
