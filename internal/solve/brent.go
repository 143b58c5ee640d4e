package solve

import (
	"fmt"
	"math"
)

// Default tolerances for Brent
const (
	tolX    = 1e-12
	maxIter = 100
)

// Brent finds a root of f on the bracketing interval [a, b] using
// Brent's method (inverse quadratic interpolation with bisection
// fallback). f(a) and f(b) must have opposite signs.
func Brent(f func(float64) float64, a, b float64) (float64, error) {
	fa := f(a)
	fb := f(b)

	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, fmt.Errorf("solve: no sign change on [%g, %g] (f(a)=%g, f(b)=%g)", a, b, fa, fb)
	}

	c, fc := a, fa
	d := b - a
	e := d

	for i := 0; i < maxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		const eps = 2.220446049250313e-16
		tol := 4*eps*math.Abs(b) + tolX
		m := 0.5 * (c - b)

		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Bisection
			d = m
			e = m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			e = b - a
			d = e
		}
	}
	return b, fmt.Errorf("solve: no convergence after %d iterations (last estimate %g)", maxIter, b)
}
