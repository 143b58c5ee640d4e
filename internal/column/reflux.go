package column

import (
	"fmt"

	"github.com/chemetools/gocolumn/internal/solve"
)

// refluxSpec holds the minimum-reflux solution: the clamped feed
// quality, the q-line, and the pinch-point minimum reflux ratio.
type refluxSpec struct {
	Q     float64
	QLine func(x float64) float64
	Rmin  float64
	XRmin float64
	YRmin float64
}

// minimumReflux locates the pinch point where the feed q-line meets
// the equilibrium curve and derives the minimum reflux ratio from the
// slope through the top composition. The feed quality q is clamped
// away from exactly 1 to avoid the vertical q-line singularity.
func minimumReflux(eq equilibriumFunc, q, zf, yTop float64) (refluxSpec, error) {
	if q == 1 {
		q = 1 - 1e-5
	}
	qLine := func(x float64) float64 { return q*x/(q-1) - zf/(q-1) }

	var eqErr error
	intersection := func(x float64) float64 {
		_, y, err := eq(x)
		if err != nil {
			eqErr = err
			return 0
		}
		return qLine(x) - y
	}
	xRmin, err := solve.Brent(intersection, 0, 1)
	if eqErr != nil {
		return refluxSpec{}, fmt.Errorf("pinch point: %w", eqErr)
	}
	if err != nil {
		return refluxSpec{}, fmt.Errorf("pinch point: %w", err)
	}

	yRmin := qLine(xRmin)
	m := (yRmin - yTop) / (xRmin - yTop)
	return refluxSpec{
		Q:     q,
		QLine: qLine,
		Rmin:  m / (1 - m),
		XRmin: xRmin,
		YRmin: yRmin,
	}, nil
}

// actualRatio converts a minimum reflux (or boil-up) ratio into the
// actual ratio as the multiple k of the minimum, substituting a
// nominal 0.1*k when the minimum is non-positive (pinch-free systems).
func actualRatio(min, k float64) float64 {
	if min <= 0 {
		return 0.1 * k
	}
	return min * k
}
