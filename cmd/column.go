package cmd

import (
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Full distillation column commands",
	Long: `Commands for full distillation columns (rectifying and
stripping sections, with an optional split into two vessels).

Use 'gocolumn column design' to run a complete design.`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}
