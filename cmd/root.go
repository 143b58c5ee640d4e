package cmd

import (
	"fmt"
	"os"

	"github.com/chemetools/gocolumn/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gocolumn",
	Short: "Distillation Column Design Tool",
	Long: `gocolumn - Go Distillation Column Designer

A CLI tool for the preliminary design and costing of staged
vapor-liquid separation columns using McCabe-Thiele analysis.

This tool helps process design engineers perform:
  - Key-component mass balances (lever rule)
  - Stage counting and minimum reflux/boil-up determination
  - Tray efficiency estimation (modified O'Connell correlation)
  - Column diameter, height, wall thickness and weight sizing
  - Purchased-cost estimation for trays, vessel, condenser and boiler

Correlations follow Seader, Henley & Roper, Separation Process
Principles, 3rd ed. (2011).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocolumn v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Distillation Column Designer                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design and costing of staged")
		fmt.Println("  vapor-liquid separation columns.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • McCabe-Thiele stage counting with minimum reflux")
		fmt.Println("    • Full column and stripper-only configurations")
		fmt.Println("    • Tray hydraulics and mechanical vessel sizing")
		fmt.Println("    • Purchased-cost correlations on a CE index basis")
		fmt.Println()
		fmt.Println("  Use 'gocolumn --help' to see available commands.")
		fmt.Println()
		fmt.Printf("  Copyright © %s the gocolumn authors.\n", version.Year)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
