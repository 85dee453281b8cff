package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shhac/whoops/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of whoops",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "whoops version %s\n", app.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
