package seader

import "math"

// Mechanical design constants for tower vessels (carbon steel,
// temperatures below 800 F).
const (
	maxStress  = 15000.0 // S, maximum allowable stress (psi)
	elasticity = 29.5    // M, modulus of elasticity (10^6 psi)
	corrosion  = 1.0 / 8 // corrosion allowance (in)
)

// Height returns the column height (ft) from tray spacing TS (mm) and
// the number of tray gaps. The top allowance (1.2672 m) removes
// entrained liquid above the top tray; the bottom allowance (3 m)
// provides bottoms surge capacity.
func Height(TS, nStages float64, top, bot bool) float64 {
	H := TS * nStages / 1000
	if top {
		H += 1.2672
	}
	if bot {
		H += 3
	}
	return H * 3.28
}

// minThickness returns the minimum wall thickness (in) for vessel
// rigidity, linear in the inner diameter Di (ft): 1/4 in at 4 ft up to
// 1/2 in at 12 ft.
func minThickness(Di float64) float64 {
	return 0.125 + 0.03125*Di
}

// WallThickness returns the shell wall thickness (in) designed to
// withstand the internal pressure and the wind/earthquake load at the
// bottom of the column.
//
//	Po: operating internal pressure (psi, absolute)
//	Di: inner diameter (ft)
//	L:  column height (ft)
//
// The weld efficiency is taken as 1.0 and downgraded to 0.85 when the
// first-pass thickness falls below 1.25 in. Vacuum columns branch to an
// external-pressure correlation and return without corrosion allowance
// or plate rounding.
func WallThickness(Po, Di, L float64) float64 {
	Di = Di * 12 // ft to in
	L = L * 12

	E := 1.0

	// Design pressure, always above operating pressure.
	PoGauge := Po - 14.69
	var Pd float64
	switch {
	case PoGauge < 0:
		// Vacuum regime: thickness for external pressure.
		Pd = -PoGauge
		tE := 1.3 * Di * math.Pow(Pd*L/elasticity/Di, 0.4)
		tEC := L*(0.18*Di-2.2)*1e-5 - 0.19
		return tE + tEC
	case PoGauge < 5:
		Pd = 10
	case PoGauge < 1000:
		lp := math.Log(Po)
		Pd = math.Exp(0.60608+0.91615*lp) + 0.0015655*lp*lp
	default:
		Pd = 1.1 * PoGauge
	}

	// ASME pressure-vessel thin-wall formula.
	ts := Pd * Di / (2*maxStress*E - 1.2*Pd)
	if ts < 1.25 {
		// Weld efficiency of 0.85 for low-thickness carbon steel.
		E = 0.85
		ts = Pd * Di / (2*maxStress*E - 1.2*Pd)
	}

	// Minimum thickness for vessel rigidity may govern.
	if tsMin := minThickness(Di / 12); ts < tsMin {
		ts = tsMin
	}

	// Thickness to withstand wind/earthquake load.
	Do := Di + ts
	tw := 0.22 * (Do + 18) * L * L / (maxStress * Do * Do)
	tv := math.Max(tw, ts)

	tv += corrosion
	// Vessels are fabricated from metal plates in small increments.
	switch {
	case tv < 0.5:
		tv = ApproxToStep(tv, 3.0/16, 1.0/16)
	case tv < 2:
		tv = ApproxToStep(tv, 0.5, 1.0/8)
	case tv < 3:
		tv = ApproxToStep(tv, 2, 1.0/4)
	}
	return tv
}

// Weight returns the tower weight (lb) assuming 2:1 elliptical heads.
//
//	Di:   inner diameter (ft)
//	L:    tangent-to-tangent length (ft)
//	tv:   shell thickness (in)
//	rhoM: material density (lb/in3)
func Weight(Di, L, tv, rhoM float64) float64 {
	Di = Di * 12
	L = L * 12
	return math.Pi * (Di + tv) * (L + 0.8*Di) * tv * rhoM
}

// ApproxToStep rounds val up to the first value on the grid
// x0, x0+dx, x0+2dx, ... strictly above it.
func ApproxToStep(val, x0, dx float64) float64 {
	for x0 <= val {
		x0 += dx
	}
	return x0
}
