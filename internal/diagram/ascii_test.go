package diagram

import (
	"math"
	"strings"
	"testing"
)

func sampleData() McCabeThieleData {
	n := 21
	xEq := make([]float64, n)
	yEq := make([]float64, n)
	for i := range xEq {
		x := float64(i) / float64(n-1)
		xEq[i] = x
		// Constant relative volatility curve, alpha = 3.
		yEq[i] = 3 * x / (1 + 2*x)
	}
	return McCabeThieleData{
		LightKey:  "Methanol",
		XEq:       xEq,
		YEq:       yEq,
		XStages:   []float64{0.05, 0.2, 0.5, 0.9},
		YStages:   []float64{0.05, 0.35, 0.7, 0.95},
		XBot:      0.05,
		YTop:      0.95,
		ZF:        0.5,
		XM:        0.45,
		YM:        0.6,
		Stages:    3,
		FeedStage: 2,
		Rmin:      1.2,
		R:         1.5,
	}
}

func TestStairAt(t *testing.T) {
	d := sampleData()

	// Outside the traced range the staircase is undefined.
	if !math.IsNaN(d.stairAt(0.01)) {
		t.Error("stairAt below the trace should be NaN")
	}
	if !math.IsNaN(d.stairAt(0.95)) {
		t.Error("stairAt above the trace should be NaN")
	}

	// Between trace points the staircase holds the upper stage level.
	if got := d.stairAt(0.1); got != 0.35 {
		t.Errorf("stairAt(0.1) = %g, want 0.35", got)
	}
	if got := d.stairAt(0.4); got != 0.7 {
		t.Errorf("stairAt(0.4) = %g, want 0.7", got)
	}
	if got := d.stairAt(0.9); got != 0.95 {
		t.Errorf("stairAt(0.9) = %g, want 0.95", got)
	}
}

func TestDrawASCIIDiagram(t *testing.T) {
	out := DrawASCIIDiagram(sampleData())
	if out == "" {
		t.Fatal("empty diagram")
	}
	for _, want := range []string{"McCABE-THIELE", "Methanol", "Stages: 3", "Feed stage: 2", "Rmin = 1.20"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q", want)
		}
	}
}

func TestDrawASCIIDiagramStripper(t *testing.T) {
	d := sampleData()
	d.IsStripper = true
	out := DrawASCIIDiagram(d)
	if !strings.Contains(out, "Bmin = 1.20") {
		t.Error("stripper diagram should report boil-up ratios")
	}
	if strings.Contains(out, "Feed stage") {
		t.Error("stripper diagram should not report a feed stage")
	}
}

func TestDrawASCIIDiagramEmpty(t *testing.T) {
	if out := DrawASCIIDiagram(McCabeThieleData{}); out != "" {
		t.Errorf("empty data should render nothing, got %q", out)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULTS", []string{"Stages: 12", "Reflux: 2.50"})
	if !strings.Contains(out, "RESULTS") || !strings.Contains(out, "Stages: 12") {
		t.Errorf("summary box missing content:\n%s", out)
	}
	// Top border, title, separator, two content rows, bottom border.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Errorf("summary box has %d lines, want 6", len(lines))
	}
}
