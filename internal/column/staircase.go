package column

import (
	"github.com/chemetools/gocolumn/internal/thermo"
)

// maxStairSteps is the hard cap on equilibrium stages stepped in one
// staircase run. Exceeding it signals an ill-posed operating-line and
// bound pair (near-pinch or crossed lines); the partial trace is
// still returned for inspection.
const maxStairSteps = 100

// equilibriumFunc returns the bubble-point temperature and the vapor
// mole fraction of the light key in equilibrium with liquid fraction x.
type equilibriumFunc func(x float64) (T, y float64, err error)

// lhkEquilibrium builds the pseudo-binary equilibrium curve of the
// key pair at pressure P.
func lhkEquilibrium(light, heavy *thermo.Species, P float64) equilibriumFunc {
	species := []*thermo.Species{light, heavy}
	return func(x float64) (float64, float64, error) {
		T, y, err := thermo.BubblePoint(species, []float64{x, 1 - x}, P)
		if err != nil {
			return 0, 0, err
		}
		return T, y[0], nil
	}
}

// trace accumulates the (x, y, T) staircase points of one design run.
type trace struct {
	X []float64
	Y []float64
	T []float64
}

// staircase steps along the operating line from the trace's last
// point, alternating a bubble-point "stage up" with an operating-line
// "stage across", until the liquid fraction reaches xLimit. Liquid
// fractions overshooting 1 are clamped to 0.9999999. Returns false
// when the step cap is hit before the bound.
func staircase(eq equilibriumFunc, operatingLine func(float64) float64, tr *trace, xLimit float64) (bool, error) {
	i := 0
	xi := tr.X[len(tr.X)-1]
	for xi < xLimit {
		if i > maxStairSteps {
			return false, nil
		}
		i++
		// Go up
		T, yi, err := eq(xi)
		if err != nil {
			return false, err
		}
		tr.Y = append(tr.Y, yi)
		tr.T = append(tr.T, T)
		// Go right
		xi = operatingLine(yi)
		if xi > 1 {
			xi = 0.9999999
		}
		tr.X = append(tr.X, xi)
	}
	return true, nil
}
