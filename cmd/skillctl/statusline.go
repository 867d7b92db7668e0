package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/pkg/statusline"
)

var statuslineCmd = &cobra.Command{
	Use:   "statusline",
	Short: "Render the host status line",
	Long: `Read a session snapshot (model, workspace, cost totals) as JSON on stdin
and print a one-line colored status display. Malformed input degrades to a
minimal line; the command always exits 0.`,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Println(statusline.New().Render(cmd.Context(), os.Stdin))
	},
}

func init() {
	rootCmd.AddCommand(statuslineCmd)
}
