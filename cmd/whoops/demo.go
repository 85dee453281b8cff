package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shhac/whoops/internal/report"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Record a sample panic and a sample gRPC error",
	RunE: func(cmd *cobra.Command, args []string) error {
		whoops, err := headlessApp(cmd)
		if err != nil {
			return err
		}

		reports, err := report.RecordDemo(whoops.Recorder())
		if err != nil {
			return err
		}
		for _, r := range reports {
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s\n", r.ID, report.Title(r))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
