package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear [id...]",
	Short: "Delete the given crash reports, or all of them",
	RunE: func(cmd *cobra.Command, args []string) error {
		whoops, err := headlessApp(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			if err := whoops.Storage().ClearReports(); err != nil {
				return fmt.Errorf("clear reports: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all crash reports")
			return nil
		}

		for _, id := range args {
			if err := whoops.Storage().DeleteReport(id); err != nil {
				return fmt.Errorf("delete report %s: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
