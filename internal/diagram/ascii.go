package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// McCabeThieleData holds everything needed to draw a McCabe-Thiele
// diagram: the sampled equilibrium curve, the staircase trace, and
// the operating-line geometry of the design.
type McCabeThieleData struct {
	LightKey string

	// Equilibrium curve sampled on a uniform liquid-fraction grid
	XEq []float64
	YEq []float64

	// Staircase trace
	XStages []float64
	YStages []float64

	// Separation spec and operating-line intersection
	XBot float64
	YTop float64
	ZF   float64
	XM   float64
	YM   float64

	Stages    int
	FeedStage int

	// Reflux (full column) or boil-up (stripper) ratios
	Rmin float64
	R    float64

	IsStripper bool
}

// stairAt returns the staircase height at liquid fraction x, or NaN
// outside the traced range. Between consecutive trace points the
// staircase runs horizontally at the upper stage's vapor fraction.
func (d McCabeThieleData) stairAt(x float64) float64 {
	n := len(d.XStages)
	if n < 2 || len(d.YStages) < n || x < d.XStages[0] || x > d.XStages[n-1] {
		return math.NaN()
	}
	for i := 0; i < n-1; i++ {
		if x <= d.XStages[i+1] {
			return d.YStages[i+1]
		}
	}
	return d.YStages[n-1]
}

// DrawASCIIDiagram renders the McCabe-Thiele construction as an ASCII
// chart: equilibrium curve, the y=x graphical aid line, and the
// staircase.
func DrawASCIIDiagram(data McCabeThieleData) string {
	var sb strings.Builder

	n := len(data.XEq)
	if n == 0 {
		return ""
	}

	eq := make([]float64, n)
	aid := make([]float64, n)
	stairs := make([]float64, n)
	for i, x := range data.XEq {
		eq[i] = data.YEq[i]
		aid[i] = x
		stairs[i] = data.stairAt(x)
	}

	sb.WriteString("\n")
	sb.WriteString("  McCABE-THIELE DIAGRAM\n")
	sb.WriteString("  ─────────────────────\n\n")

	chart := asciigraph.PlotMany(
		[][]float64{aid, eq, stairs},
		asciigraph.Height(20),
		asciigraph.Width(64),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("x (%s) from 0 to 1", data.LightKey)),
	)
	sb.WriteString(chart)
	sb.WriteString("\n\n")

	sb.WriteString("  Legend:\n")
	sb.WriteString("  blue = equilibrium curve, red = stages, plain = y = x aid line\n")
	if data.IsStripper {
		sb.WriteString(fmt.Sprintf("  Stages: %d (Bmin = %.2f, B = %.2f)\n", data.Stages, data.Rmin, data.R))
	} else {
		sb.WriteString(fmt.Sprintf("  Stages: %d, Feed stage: %d (Rmin = %.2f, R = %.2f)\n", data.Stages, data.FeedStage, data.Rmin, data.R))
	}
	return sb.String()
}

// DrawSummaryBox creates a boxed summary of result lines.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
