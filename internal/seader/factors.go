// Package seader implements the tray-column design and costing
// correlations of Seader, Henley & Roper, "Separation Process
// Principles" 3rd ed. (2011). All cost correlations are on a CE plant
// cost index basis of 500; correlations mix SI and US customary units
// exactly as published, so each function documents its unit system.
package seader

import (
	"fmt"
	"sort"
	"strings"
)

// trayTypeFactors maps tray type to its cost factor F_TT.
var trayTypeFactors = map[string]float64{
	"Sieve":      1,
	"Valve":      1.18,
	"Bubble cap": 1.87,
}

// trayMaterialFactors maps tray material to its cost factor F_TM as a
// function of inner diameter Di (ft).
var trayMaterialFactors = map[string]func(Di float64) float64{
	"Carbon steel":        func(Di float64) float64 { return 1 },
	"Stainless steel 304": func(Di float64) float64 { return 1.189 + 0.058*Di },
	"Stainless steel 316": func(Di float64) float64 { return 1.401 + 0.073*Di },
	"Carpenter 20CB-3":    func(Di float64) float64 { return 1.525 + 0.079*Di },
	"Monel":               func(Di float64) float64 { return 2.306 + 0.112*Di },
}

// vesselMaterialFactors maps column shell material to its cost factor F_M.
var vesselMaterialFactors = map[string]float64{
	"Carbon steel":        1.0,
	"Low-alloy steel":     1.2,
	"Stainless steel 304": 1.7,
	"Stainless steel 316": 2.1,
	"Carpenter 20CB-3":    3.2,
	"Nickel-200":          5.4,
	"Monel-400":           3.6,
	"Inconel-600":         3.9,
	"Incoloy-825":         3.7,
	"Titanium":            7.7,
}

// vesselMaterialDensities maps shell material to density (lb/in3) for
// weight estimation. Only materials with tabulated densities support
// mechanical sizing.
var vesselMaterialDensities = map[string]float64{
	"Carbon steel":        0.284,
	"Stainless steel 304": 0.289,
	"Stainless steel 316": 0.289,
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TrayTypeFactor returns the cost factor for a tray type.
func TrayTypeFactor(trayType string) (float64, error) {
	f, ok := trayTypeFactors[trayType]
	if !ok {
		return 0, fmt.Errorf("tray type must be one of the following: %s", strings.Join(sortedKeys(trayTypeFactors), ", "))
	}
	return f, nil
}

// TrayMaterialFactor returns the diameter-dependent cost factor
// function for a tray material.
func TrayMaterialFactor(material string) (func(Di float64) float64, error) {
	f, ok := trayMaterialFactors[material]
	if !ok {
		return nil, fmt.Errorf("tray material must be one of the following: %s", strings.Join(sortedKeys(trayMaterialFactors), ", "))
	}
	return f, nil
}

// VesselMaterialFactor returns the shell cost factor for a vessel material.
func VesselMaterialFactor(material string) (float64, error) {
	f, ok := vesselMaterialFactors[material]
	if !ok {
		return 0, fmt.Errorf("vessel material must be one of the following: %s", strings.Join(sortedKeys(vesselMaterialFactors), ", "))
	}
	return f, nil
}

// VesselMaterialDensity returns the shell material density (lb/in3).
// Materials without a tabulated density cannot be weight-estimated and
// are rejected.
func VesselMaterialDensity(material string) (float64, error) {
	rho, ok := vesselMaterialDensities[material]
	if !ok {
		return 0, fmt.Errorf("no density data for vessel material %q; weight estimation supports: %s", material, strings.Join(sortedKeys(vesselMaterialDensities), ", "))
	}
	return rho, nil
}
