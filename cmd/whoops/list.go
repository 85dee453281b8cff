package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/shhac/whoops/internal/app"
	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/logging"
	"github.com/shhac/whoops/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored crash reports, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		whoops, err := headlessApp(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		if !cmd.Flags().Changed("limit") {
			limit = whoops.Config().ListLimit
		}

		reports, err := whoops.Storage().ListReports(limit)
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}
		printReports(cmd.OutOrStdout(), reports)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Int("limit", 0, "Maximum number of reports (default from config)")
	listCmd.Flags().Bool("json", false, "Print reports as JSON")
}

// headlessApp builds an App that logs to stderr.
func headlessApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	whoops, err := app.NewWithLogger(nil, cfg, logging.NewConsoleLogger(os.Stderr, cfg.Debug))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return whoops, nil
}

func printReports(w io.Writer, reports []domain.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No crash reports")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "WHEN", "KIND", "TITLE", "SUMMARY")
	for _, r := range reports {
		t.Row(r.ID, r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.Kind, report.Title(r), report.Summary(r))
	}
	fmt.Fprintln(w, t.Render())
}
