// Package hx estimates heat-exchanger duty and purchased cost for the
// condenser and boiler attached to a column. The exchanger is treated
// as an opaque service: it receives a duty stream undergoing a phase
// change and reports its own cost on the shared CE index basis.
package hx

import (
	"fmt"
	"math"

	"github.com/chemetools/gocolumn/internal/thermo"
)

// Utility temperatures (K).
const (
	coolingWaterIn  = 305.0
	coolingWaterOut = 325.0
	brineIn         = 255.0
	brineOut        = 265.0
	steamApproach   = 25.0 // saturated steam LMTD for the boiler
)

// Exchanger is a shell-and-tube heat exchanger sized against a phase
// change on the process side.
type Exchanger struct {
	U          float64 // overall heat transfer coefficient (W/(m2*K))
	condensing bool
}

// Condenser returns an exchanger configured for overhead condensation.
func Condenser() *Exchanger {
	return &Exchanger{U: 850, condensing: true}
}

// Boiler returns an exchanger configured for bottoms vaporization.
func Boiler() *Exchanger {
	return &Exchanger{U: 1140}
}

// Result holds the exchanger design and its cost contribution.
type Result struct {
	Duty float64 // W
	LMTD float64 // K
	Area float64 // ft2
	Cost float64 // USD at the given CE index
}

// Design sizes the exchanger for the latent duty of the given stream
// and returns its purchased cost at cost index CE. The stream is the
// phase-changing flow: condensate for a condenser, boil-up for a
// boiler.
func (e *Exchanger) Design(duty *thermo.Stream, CE float64) (*Result, error) {
	if duty == nil {
		return nil, fmt.Errorf("no duty stream")
	}
	// Latent duty: molar flows (kmol/h) times heats of vaporization
	// (J/mol), converted to W.
	var Q float64
	for i, sp := range duty.Species {
		Q += duty.Mol[i] * sp.Hvap * 1000
	}
	Q /= 3600

	var lmtd float64
	if e.condensing {
		in, out := coolingWaterIn, coolingWaterOut
		if duty.T <= coolingWaterOut+5 {
			in, out = brineIn, brineOut
		}
		dT1 := duty.T - in
		dT2 := duty.T - out
		lmtd = (dT1 - dT2) / math.Log(dT1/dT2)
	} else {
		lmtd = steamApproach
	}
	if lmtd <= 0 || math.IsNaN(lmtd) {
		return nil, fmt.Errorf("no feasible utility temperature approach at T=%.1f K", duty.T)
	}

	area := Q / (e.U * lmtd) * 10.7639 // m2 to ft2
	return &Result{
		Duty: Q,
		LMTD: lmtd,
		Area: area,
		Cost: floatingHeadCost(area) * CE / 500,
	}, nil
}

// floatingHeadCost returns the f.o.b. purchase cost (USD) of a
// floating-head shell-and-tube exchanger of area A (ft2) on a CE
// basis of 500.
func floatingHeadCost(A float64) float64 {
	la := math.Log(A)
	return math.Exp(11.0545 - 0.9228*la + 0.09861*la*la)
}
