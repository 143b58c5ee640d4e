package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/chemetools/gocolumn/internal/thermo"
	"github.com/spf13/cobra"
)

var propsFeedFile string

var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "Report feed stream properties",
	Long: `Load a feed definition file and report its bulk properties
(flows, density, viscosity, surface tension) along with the bubble
and dew point temperatures at the feed pressure.

Useful for sanity-checking a feed file before running a design.

Example:
  gocolumn props --feed feed.json`,
	Run: runProps,
}

func init() {
	rootCmd.AddCommand(propsCmd)
	propsCmd.Flags().StringVarP(&propsFeedFile, "feed", "f", "", "Feed definition JSON file (required)")
	_ = propsCmd.MarkFlagRequired("feed")
}

func runProps(cmd *cobra.Command, args []string) {
	feed, err := thermo.LoadFeed(propsFeedFile)
	if err != nil {
		fail(err)
	}

	fmt.Println()
	fmt.Println("FEED STREAM PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	frac := feed.MolFrac()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Component\tMW\tTb (K)\tMole fraction\n")
	fmt.Fprintf(w, "  ─────────\t──\t──────\t─────────────\n")
	for i, sp := range feed.Species {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.4f\n", sp.ID, sp.MW, sp.Tb, frac[i])
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Phase\t%s\n", feed.Phase)
	fmt.Fprintf(w, "  Pressure\t%.0f Pa\n", feed.P)
	if feed.T > 0 {
		fmt.Fprintf(w, "  Temperature\t%.2f K\n", feed.T)
	}
	fmt.Fprintf(w, "  Molar flow\t%.3f kmol/h\n", feed.MolNet())
	fmt.Fprintf(w, "  Mass flow\t%.3f kg/h\n", feed.MassNet())
	if feed.T > 0 {
		fmt.Fprintf(w, "  Density\t%.2f kg/m3\n", feed.Rho())
		fmt.Fprintf(w, "  Liquid viscosity\t%.4f cP\n", feed.Mu())
	}
	fmt.Fprintf(w, "  Surface tension\t%.2f dyn/cm\n", feed.Sigma())
	w.Flush()
	fmt.Println()

	Tb, y, err := thermo.BubblePoint(feed.Species, frac, feed.P)
	if err != nil {
		fail(err)
	}
	Td, x, err := thermo.DewPoint(feed.Species, frac, feed.P)
	if err != nil {
		fail(err)
	}

	fmt.Println("SATURATION AT FEED PRESSURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bubble point\t%.2f K\n", Tb)
	for i, sp := range feed.Species {
		fmt.Fprintf(w, "    y(%s)\t%.4f\n", sp.ID, y[i])
	}
	fmt.Fprintf(w, "  Dew point\t%.2f K\n", Td)
	for i, sp := range feed.Species {
		fmt.Fprintf(w, "    x(%s)\t%.4f\n", sp.ID, x[i])
	}
	w.Flush()
	fmt.Println()
}
