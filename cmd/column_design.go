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
	// Separation spec
	designFeedFile string
	designLightKey string
	designHeavyKey string
	designPressure float64
	designYTop     float64
	designXBot     float64
	designK        float64
	designDivided  bool

	designConfig configFlags

	// Diagram options
	designShowDiagram bool
	designExportFile  string
)

var columnDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design and cost a full distillation column",
	Long: `Run a complete McCabe-Thiele design of a full distillation
column: key mass balance, minimum reflux, stage counting, tray
efficiency, hydraulic and mechanical sizing, and purchased costs.

All light and heavy non-keys are assumed to separate completely to
the distillate and bottoms. The feed is read from a JSON file, e.g.:

  {
    "pressure": 101325,
    "phase": "liquid",
    "components": [
      {"id": "Methanol", "flow": 50},
      {"id": "Water", "flow": 50}
    ]
  }

Examples:
  # Methanol/water split at 1 atm, reflux 1.25 times the minimum
  gocolumn column design --feed feed.json --light Methanol --heavy Water \
    --ytop 0.99 --xbot 0.01 -k 1.25

  # Same separation in two separate vessels, stainless trays
  gocolumn column design --feed feed.json --light Methanol --heavy Water \
    --ytop 0.99 --xbot 0.01 --divided --tray-material "Stainless steel 304"`,
	Run: runColumnDesign,
}

func init() {
	columnCmd.AddCommand(columnDesignCmd)

	columnDesignCmd.Flags().StringVarP(&designFeedFile, "feed", "f", "", "Feed definition JSON file (required)")
	columnDesignCmd.Flags().StringVar(&designLightKey, "light", "", "Light key component (required)")
	columnDesignCmd.Flags().StringVar(&designHeavyKey, "heavy", "", "Heavy key component (required)")
	columnDesignCmd.Flags().Float64VarP(&designPressure, "pressure", "p", 101325, "Operating pressure (Pa)")
	columnDesignCmd.Flags().Float64Var(&designYTop, "ytop", 0, "Light key mole fraction in distillate (required)")
	columnDesignCmd.Flags().Float64Var(&designXBot, "xbot", 0, "Light key mole fraction in bottoms (required)")
	columnDesignCmd.Flags().Float64VarP(&designK, "reflux-multiple", "k", 1.25, "Ratio of reflux to minimum reflux")
	columnDesignCmd.Flags().BoolVar(&designDivided, "divided", false, "Size rectifier and stripper as separate vessels")
	designConfig.register(columnDesignCmd)

	columnDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII McCabe-Thiele diagram")
	columnDesignCmd.Flags().StringVar(&designExportFile, "export", "", "Export McCabe-Thiele diagram to an image file")

	_ = columnDesignCmd.MarkFlagRequired("feed")
	_ = columnDesignCmd.MarkFlagRequired("light")
	_ = columnDesignCmd.MarkFlagRequired("heavy")
	_ = columnDesignCmd.MarkFlagRequired("ytop")
	_ = columnDesignCmd.MarkFlagRequired("xbot")
}

func runColumnDesign(cmd *cobra.Command, args []string) {
	feed, err := thermo.LoadFeed(designFeedFile)
	if err != nil {
		fail(err)
	}

	col, err := column.NewDistillation(designLightKey, designHeavyKey, designPressure, designYTop, designXBot, designK)
	if err != nil {
		fail(err)
	}
	col.Divided = designDivided
	if err := designConfig.apply(&col.Config); err != nil {
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
	fmt.Println("FULL DISTILLATION COLUMN DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Keys: %s (light) / %s (heavy) at %.0f Pa\n", designLightKey, designHeavyKey, designPressure)
	fmt.Printf("  Targets: y_top = %.4f, x_bot = %.4f, k = %.2f\n", designYTop, designXBot, designK)
	fmt.Println()

	printMassBalance(feed, res)

	fmt.Println("DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Theoretical stages\t%d\n", res.TheoreticalStages)
	fmt.Fprintf(w, "  Theoretical feed stage\t%d\n", res.FeedStage)
	fmt.Fprintf(w, "  Minimum reflux\t%.3f\n", res.MinReflux)
	fmt.Fprintf(w, "  Reflux\t%.3f\n", res.Reflux)
	fmt.Fprintf(w, "  Rectifier efficiency\t%.3f\n", res.RectifierEfficiency)
	fmt.Fprintf(w, "  Stripper efficiency\t%.3f\n", res.StripperEfficiency)
	if res.Divided {
		printSection(w, "Rectifier", res.Rectifier)
		printSection(w, "Stripper", res.Stripper)
	} else {
		fmt.Fprintf(w, "  Actual stages\t%d\n", res.ActualStages)
		fmt.Fprintf(w, "  Diameter\t%.2f ft\n", res.Diameter)
		fmt.Fprintf(w, "  Height\t%.2f ft\n", res.Height)
		fmt.Fprintf(w, "  Wall thickness\t%.3f in\n", res.WallThickness)
		fmt.Fprintf(w, "  Weight\t%.0f lb\n", res.Weight)
	}
	w.Flush()
	fmt.Println()

	printWarnings(res)

	fmt.Println("PURCHASED COSTS (USD):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if res.Divided {
		fmt.Fprintf(w, "  Rectifier trays\t%.0f\n", cost.RectifierTrays)
		fmt.Fprintf(w, "  Rectifier tower\t%.0f\n", cost.RectifierTower)
		fmt.Fprintf(w, "  Stripper trays\t%.0f\n", cost.StripperTrays)
		fmt.Fprintf(w, "  Stripper tower\t%.0f\n", cost.StripperTower)
	} else {
		fmt.Fprintf(w, "  Trays\t%.0f\n", cost.Trays)
		fmt.Fprintf(w, "  Tower\t%.0f\n", cost.Tower)
	}
	fmt.Fprintf(w, "  Condenser\t%.0f\n", cost.Condenser)
	fmt.Fprintf(w, "  Boiler\t%.0f\n", cost.Boiler)
	fmt.Fprintf(w, "  Total\t%.0f\n", cost.Total())
	w.Flush()
	fmt.Println()

	nStages := res.ActualStages
	if res.Divided {
		nStages = res.Rectifier.Stages + res.Stripper.Stages
	}
	fmt.Println(diagram.DrawSummaryBox("COLUMN SUMMARY", []string{
		fmt.Sprintf("Actual stages: %d (feed at theoretical stage %d)", nStages, res.FeedStage),
		fmt.Sprintf("Reflux ratio: %.3f (minimum %.3f)", res.Reflux, res.MinReflux),
		fmt.Sprintf("Total purchased cost: %.0f USD", cost.Total()),
	}))

	if designShowDiagram || designExportFile != "" {
		data, err := mccabeData(res, designLightKey, designHeavyKey, designPressure, designYTop, designXBot, false)
		if err != nil {
			fail(err)
		}
		if designShowDiagram {
			fmt.Println(diagram.DrawASCIIDiagram(data))
		}
		if designExportFile != "" {
			if err := diagram.ExportDiagram(data, designExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", designExportFile)
			}
		}
	}
}

func printSection(w *tabwriter.Writer, name string, s column.SectionSize) {
	fmt.Fprintf(w, "  %s stages\t%d\n", name, s.Stages)
	fmt.Fprintf(w, "  %s diameter\t%.2f ft\n", name, s.Diameter)
	fmt.Fprintf(w, "  %s height\t%.2f ft\n", name, s.Height)
	fmt.Fprintf(w, "  %s wall thickness\t%.3f in\n", name, s.WallThickness)
	fmt.Fprintf(w, "  %s weight\t%.0f lb\n", name, s.Weight)
}

func printMassBalance(feed *thermo.Stream, res *column.DesignResult) {
	fmt.Println("MASS BALANCE (kmol/h):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Component\tFeed\tDistillate\tBottoms\n")
	fmt.Fprintf(w, "  ─────────\t────\t──────────\t───────\n")
	for i, sp := range res.Distillate.Species {
		var f float64
		if feed.Phase == thermo.TwoPhase {
			f = feed.LiquidMol[i] + feed.VaporMol[i]
		} else {
			f = feed.Mol[i]
		}
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.3f\n", sp.ID, f, res.Distillate.Mol[i], res.Bottoms.Mol[i])
	}
	fmt.Fprintf(w, "  (T, K)\t\t%.2f\t%.2f\n", res.Distillate.T, res.Bottoms.T)
	w.Flush()
	fmt.Println()
}

func printWarnings(res *column.DesignResult) {
	if len(res.Warnings) == 0 {
		return
	}
	for _, warning := range res.Warnings {
		fmt.Printf("  WARNING: %s\n", warning)
	}
	fmt.Println()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
