package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/chemetools/gocolumn/internal/column"
	"github.com/chemetools/gocolumn/internal/diagram"
	"github.com/chemetools/gocolumn/internal/thermo"
	"github.com/spf13/cobra"
)

var (
	stripFeedFile string
	stripLightKey string
	stripHeavyKey string
	stripPressure float64
	stripYTop     float64
	stripXBot     float64
	stripK        float64

	stripConfig configFlags

	stripShowDiagram bool
	stripExportFile  string
)

var stripperDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design and cost a stripping column",
	Long: `Run a complete McCabe-Thiele design of a stripping-only
column: key mass balance, minimum boil-up, stage counting, tray
efficiency, hydraulic and mechanical sizing, and purchased costs.

The overhead specification is an equilibrated vapor; there is no
rectifying section and no condenser, so the design variable is the
ratio of boil-up to minimum boil-up.

Example:
  gocolumn stripper design --feed feed.json --light Methanol --heavy Water \
    --ytop 0.99 --xbot 0.01 -k 1.25`,
	Run: runStripperDesign,
}

func init() {
	stripperCmd.AddCommand(stripperDesignCmd)

	stripperDesignCmd.Flags().StringVarP(&stripFeedFile, "feed", "f", "", "Feed definition JSON file (required)")
	stripperDesignCmd.Flags().StringVar(&stripLightKey, "light", "", "Light key component (required)")
	stripperDesignCmd.Flags().StringVar(&stripHeavyKey, "heavy", "", "Heavy key component (required)")
	stripperDesignCmd.Flags().Float64VarP(&stripPressure, "pressure", "p", 101325, "Operating pressure (Pa)")
	stripperDesignCmd.Flags().Float64Var(&stripYTop, "ytop", 0, "Light key mole fraction in the overhead vapor (required)")
	stripperDesignCmd.Flags().Float64Var(&stripXBot, "xbot", 0, "Light key mole fraction in bottoms (required)")
	stripperDesignCmd.Flags().Float64VarP(&stripK, "boilup-multiple", "k", 1.25, "Ratio of boil-up to minimum boil-up")
	stripConfig.register(stripperDesignCmd)

	stripperDesignCmd.Flags().BoolVar(&stripShowDiagram, "diagram", false, "Show ASCII McCabe-Thiele diagram")
	stripperDesignCmd.Flags().StringVar(&stripExportFile, "export", "", "Export McCabe-Thiele diagram to an image file")

	_ = stripperDesignCmd.MarkFlagRequired("feed")
	_ = stripperDesignCmd.MarkFlagRequired("light")
	_ = stripperDesignCmd.MarkFlagRequired("heavy")
	_ = stripperDesignCmd.MarkFlagRequired("ytop")
	_ = stripperDesignCmd.MarkFlagRequired("xbot")
}

func runStripperDesign(cmd *cobra.Command, args []string) {
	feed, err := thermo.LoadFeed(stripFeedFile)
	if err != nil {
		fail(err)
	}

	col, err := column.NewStripper(stripLightKey, stripHeavyKey, stripPressure, stripYTop, stripXBot, stripK)
	if err != nil {
		fail(err)
	}
	if err := stripConfig.apply(&col.Config); err != nil {
		fail(err)
	}

	res, err := col.Design(feed)
	if err != nil {
		fail(err)
	}
	cost, err := col.Cost(res)
	if err != nil {
		fail(err)
	}

	fmt.Println()
	fmt.Println("STRIPPING COLUMN DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Keys: %s (light) / %s (heavy) at %.0f Pa\n", stripLightKey, stripHeavyKey, stripPressure)
	fmt.Printf("  Targets: y_top = %.4f, x_bot = %.4f, k = %.2f\n", stripYTop, stripXBot, stripK)
	fmt.Println()

	printMassBalance(feed, res)

	fmt.Println("DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Theoretical stages\t%d\n", res.TheoreticalStages)
	fmt.Fprintf(w, "  Minimum boil-up\t%.3f\n", res.MinBoilUp)
	fmt.Fprintf(w, "  Boil-up\t%.3f\n", res.BoilUp)
	fmt.Fprintf(w, "  Stage efficiency\t%.3f\n", res.StripperEfficiency)
	fmt.Fprintf(w, "  Actual stages\t%d\n", res.ActualStages)
	fmt.Fprintf(w, "  Diameter\t%.2f ft\n", res.Diameter)
	fmt.Fprintf(w, "  Height\t%.2f ft\n", res.Height)
	fmt.Fprintf(w, "  Wall thickness\t%.3f in\n", res.WallThickness)
	fmt.Fprintf(w, "  Weight\t%.0f lb\n", res.Weight)
	w.Flush()
	fmt.Println()

	printWarnings(res)

	fmt.Println("PURCHASED COSTS (USD):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Trays\t%.0f\n", cost.Trays)
	fmt.Fprintf(w, "  Tower\t%.0f\n", cost.Tower)
	fmt.Fprintf(w, "  Boiler\t%.0f\n", cost.Boiler)
	fmt.Fprintf(w, "  Total\t%.0f\n", cost.Total())
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("STRIPPER SUMMARY", []string{
		fmt.Sprintf("Actual stages: %d", res.ActualStages),
		fmt.Sprintf("Boil-up ratio: %.3f (minimum %.3f)", res.BoilUp, res.MinBoilUp),
		fmt.Sprintf("Total purchased cost: %.0f USD", cost.Total()),
	}))

	if stripShowDiagram || stripExportFile != "" {
		data, err := mccabeData(res, stripLightKey, stripHeavyKey, stripPressure, stripYTop, stripXBot, true)
		if err != nil {
			fail(err)
		}
		if stripShowDiagram {
			fmt.Println(diagram.DrawASCIIDiagram(data))
		}
		if stripExportFile != "" {
			if err := diagram.ExportDiagram(data, stripExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", stripExportFile)
			}
		}
	}
}
