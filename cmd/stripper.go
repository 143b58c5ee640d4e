package cmd

import (
	"github.com/spf13/cobra"
)

var stripperCmd = &cobra.Command{
	Use:   "stripper",
	Short: "Stripping column commands",
	Long: `Commands for stripping-only columns (no rectifying section;
the overhead specification is an equilibrated vapor and the design
variable is the boil-up ratio).

Use 'gocolumn stripper design' to run a complete design.`,
}

func init() {
	rootCmd.AddCommand(stripperCmd)
}
