package thermo

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Species holds the pure-component constants needed for column design.
// Antoine constants are in the classic log10(Psat [mmHg]) = A - B/(C + T [degC])
// form. Liquid viscosity follows log10(mu [cP]) = MuA + MuB/T [K].
type Species struct {
	ID string

	MW float64 // Molar mass (kg/kmol)
	Tb float64 // Normal boiling point (K)

	// Antoine vapor pressure constants (mmHg, degC)
	AntA float64
	AntB float64
	AntC float64

	RhoL  float64 // Liquid density (kg/m3)
	Sigma float64 // Surface tension (dyn/cm)
	Hvap  float64 // Heat of vaporization at Tb (J/mol)

	// Liquid viscosity constants
	MuA float64
	MuB float64
}

// Psat returns the vapor pressure (Pa) at temperature T (K).
func (s *Species) Psat(T float64) float64 {
	p := math.Pow(10, s.AntA-s.AntB/(s.AntC+T-273.15)) * 133.322
	if p < 1e-12 {
		// Far below the Antoine range; keep the value finite so
		// dew point ratios stay well-behaved.
		p = 1e-12
	}
	return p
}

// Mu returns the liquid viscosity (cP) at temperature T (K).
func (s *Species) Mu(T float64) float64 {
	return math.Pow(10, s.MuA+s.MuB/T)
}

// registry of built-in species. Constants from Perry's and the CRC
// handbook; viscosity fits from two-point data.
var registry = map[string]*Species{
	"Water": {
		ID: "Water", MW: 18.015, Tb: 373.15,
		AntA: 8.07131, AntB: 1730.63, AntC: 233.426,
		RhoL: 998, Sigma: 72.0, Hvap: 40650,
		MuA: -2.5325, MuB: 739.6,
	},
	"Methanol": {
		ID: "Methanol", MW: 32.042, Tb: 337.85,
		AntA: 8.08097, AntB: 1582.27, AntC: 239.7,
		RhoL: 792, Sigma: 22.6, Hvap: 35200,
		MuA: -2.1370, MuB: 558.0,
	},
	"Ethanol": {
		ID: "Ethanol", MW: 46.069, Tb: 351.44,
		AntA: 8.20417, AntB: 1642.89, AntC: 230.3,
		RhoL: 789, Sigma: 22.3, Hvap: 38600,
		MuA: -2.9930, MuB: 901.0,
	},
	"Glycerol": {
		ID: "Glycerol", MW: 92.094, Tb: 563.15,
		AntA: 6.16501, AntB: 1036.0, AntC: 28.0,
		RhoL: 1261, Sigma: 63.4, Hvap: 91700,
		MuA: -5.9790, MuB: 2667.0,
	},
	"Acetone": {
		ID: "Acetone", MW: 58.080, Tb: 329.25,
		AntA: 7.11714, AntB: 1210.595, AntC: 229.664,
		RhoL: 784, Sigma: 23.5, Hvap: 29100,
		MuA: -1.6380, MuB: 335.0,
	},
	"Benzene": {
		ID: "Benzene", MW: 78.114, Tb: 353.25,
		AntA: 6.90565, AntB: 1211.033, AntC: 220.79,
		RhoL: 876, Sigma: 28.2, Hvap: 30700,
		MuA: -1.9910, MuB: 528.0,
	},
	"Toluene": {
		ID: "Toluene", MW: 92.141, Tb: 383.75,
		AntA: 6.95464, AntB: 1344.8, AntC: 219.48,
		RhoL: 867, Sigma: 27.9, Hvap: 33200,
		MuA: -1.8260, MuB: 469.0,
	},
}

// Lookup returns the built-in species with the given ID.
func Lookup(id string) (*Species, error) {
	s, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown species %q, must be one of: %s", id, strings.Join(SpeciesIDs(), ", "))
	}
	return s, nil
}

// SpeciesIDs returns the IDs of all built-in species, sorted.
func SpeciesIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
