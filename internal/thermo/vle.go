package thermo

import (
	"fmt"

	"github.com/chemetools/gocolumn/internal/solve"
)

// Temperature bracket for equilibrium searches (K). Wide enough for any
// built-in species at vacuum through high-pressure operation.
const (
	tLo = 250.0
	tHi = 900.0
)

// BubblePoint returns the bubble-point temperature (K) and the vapor
// composition in equilibrium with liquid mole fractions x at pressure
// P (Pa), assuming Raoult's law.
func BubblePoint(species []*Species, x []float64, P float64) (float64, []float64, error) {
	if len(species) != len(x) {
		return 0, nil, fmt.Errorf("bubble point: %d species but %d mole fractions", len(species), len(x))
	}
	f := func(T float64) float64 {
		var p float64
		for i, sp := range species {
			p += x[i] * sp.Psat(T)
		}
		return p - P
	}
	T, err := solve.Brent(f, tLo, tHi)
	if err != nil {
		return 0, nil, fmt.Errorf("bubble point at P=%g Pa: %w", P, err)
	}
	y := make([]float64, len(x))
	for i, sp := range species {
		y[i] = x[i] * sp.Psat(T) / P
	}
	return T, y, nil
}

// DewPoint returns the dew-point temperature (K) and the liquid
// composition in equilibrium with vapor mole fractions y at pressure
// P (Pa), assuming Raoult's law.
func DewPoint(species []*Species, y []float64, P float64) (float64, []float64, error) {
	if len(species) != len(y) {
		return 0, nil, fmt.Errorf("dew point: %d species but %d mole fractions", len(species), len(y))
	}
	f := func(T float64) float64 {
		var s float64
		for i, sp := range species {
			s += y[i] * P / sp.Psat(T)
		}
		return s - 1
	}
	T, err := solve.Brent(f, tLo, tHi)
	if err != nil {
		return 0, nil, fmt.Errorf("dew point at P=%g Pa: %w", P, err)
	}
	x := make([]float64, len(y))
	for i, sp := range species {
		x[i] = y[i] * P / sp.Psat(T)
	}
	return T, x, nil
}
