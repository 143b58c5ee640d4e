package column

import (
	"fmt"

	"github.com/chemetools/gocolumn/internal/thermo"
)

// SectionSize holds the mechanical dimensions of one column section
// when the rectifier and stripper are separate vessels.
type SectionSize struct {
	Stages        int
	Diameter      float64 // ft
	Height        float64 // ft
	WallThickness float64 // in
	Weight        float64 // lb
}

// DesignResult holds the staged design of a column. Dimension fields
// are written once by Design; costing reads them and never mutates.
type DesignResult struct {
	Distillate *thermo.Stream
	Bottoms    *thermo.Stream

	TheoreticalStages int
	FeedStage         int // theoretical feed stage (1-based)

	// Full column
	MinReflux float64
	Reflux    float64
	// Stripper-only column
	MinBoilUp float64
	BoilUp    float64

	RectifierEfficiency float64
	StripperEfficiency  float64

	// Combined column or stripper-only column
	Divided       bool
	ActualStages  int
	Diameter      float64 // ft
	Height        float64 // ft
	WallThickness float64 // in
	Weight        float64 // lb

	// Divided column sections
	Rectifier SectionSize
	Stripper  SectionSize

	// McCabe-Thiele staircase trace: liquid fraction, vapor fraction
	// and temperature of the light key at each stage.
	XStages []float64
	YStages []float64
	TStages []float64

	// Operating-line geometry for diagrams: feed quality line slope
	// origin ZF and the operating-line intersection (XM, YM).
	ZF float64
	Q  float64
	XM float64
	YM float64

	Warnings []string

	// Duty streams retained for condenser/boiler costing.
	condensate *thermo.Stream
	boilUp     *thermo.Stream
}

func (r *DesignResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Correlation validity ranges for tower dimensions.
var designBounds = struct {
	diameter [2]float64 // ft
	height   [2]float64 // ft
	weight   [2]float64 // lb
}{
	diameter: [2]float64{3, 24},
	height:   [2]float64{27, 170},
	weight:   [2]float64{9000, 2.5e6},
}

func (r *DesignResult) checkBounds(label string, Di, H, W float64) {
	if label != "" {
		label += " "
	}
	if Di < designBounds.diameter[0] || Di > designBounds.diameter[1] {
		r.warnf("%sdiameter %.2f ft is outside the correlation range [%g, %g] ft", label, Di, designBounds.diameter[0], designBounds.diameter[1])
	}
	if H < designBounds.height[0] || H > designBounds.height[1] {
		r.warnf("%sheight %.2f ft is outside the correlation range [%g, %g] ft", label, H, designBounds.height[0], designBounds.height[1])
	}
	if W < designBounds.weight[0] || W > designBounds.weight[1] {
		r.warnf("%sweight %.0f lb is outside the correlation range [%g, %g] lb", label, W, designBounds.weight[0], designBounds.weight[1])
	}
}

// CostResult holds the purchased-cost contributions of a column, all
// on the same CE cost index basis (USD).
type CostResult struct {
	// Combined column or stripper-only column
	Trays float64
	Tower float64

	// Divided column
	RectifierTrays float64
	RectifierTower float64
	StripperTrays  float64
	StripperTower  float64

	Condenser float64
	Boiler    float64
}

// Total returns the sum of all cost contributions.
func (c *CostResult) Total() float64 {
	return c.Trays + c.Tower +
		c.RectifierTrays + c.RectifierTower +
		c.StripperTrays + c.StripperTower +
		c.Condenser + c.Boiler
}
