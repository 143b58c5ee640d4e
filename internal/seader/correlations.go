package seader

import (
	"fmt"
	"math"
)

// MurphreeEfficiency returns the sectional Murphree stage efficiency
// from the modified O'Connell correlation.
//
//	mu:    liquid viscosity (mPa*s)
//	alpha: relative volatility of the key components
//	L, V:  liquid and vapor molar flow rates
//
// The stripping factor S = alpha*V/L enters as max(S, 1/S). The result
// is clamped to 1.
func MurphreeEfficiency(mu, alpha, L, V float64) float64 {
	S := alpha * V / L
	if S < 1 {
		S = 1 / S
	}
	e := 0.503 * math.Pow(mu, -0.226) * math.Pow(S, -0.08)
	if e < 1 {
		return e
	}
	return 1
}

// FlowParameter returns the flow parameter F_LV from liquid and vapor
// mass flow rates and densities.
func FlowParameter(L, V, rhoV, rhoL float64) float64 {
	return L / V * math.Sqrt(rhoV/rhoL)
}

// MaxCapacityParameter returns the maximum capacity parameter C_sbf
// (m/s) before flooding, from tray spacing TS (mm) and the flow
// parameter.
func MaxCapacityParameter(TS, Flv float64) float64 {
	return 0.0105 + 8.127e-4*math.Pow(TS, 0.755)*math.Exp(-1.463*math.Pow(Flv, 0.842))
}

// MaxVaporVelocity returns the maximum allowable vapor velocity U_f
// (m/s) through the net flow area before flooding.
//
//	Csbf:       maximum capacity parameter (m/s)
//	sigma:      liquid surface tension (dyn/cm)
//	rhoL, rhoV: phase densities (kg/m3)
//	FF:         foaming factor
//	Aha:        ratio of open area A_h to active area A_a
//
// Aha outside [0.06, 1] is a configuration error.
func MaxVaporVelocity(Csbf, sigma, rhoL, rhoV, FF, Aha float64) (float64, error) {
	FST := math.Pow(sigma/20, 0.2) // surface tension factor

	var FHA float64
	switch {
	case Aha >= 0.1 && Aha <= 1:
		FHA = 1
	case Aha >= 0.06:
		FHA = 5*Aha + 0.5
	default:
		return 0, fmt.Errorf("ratio of open to active area 'A_ha' must be between 0.06 and 1 (%g given)", Aha)
	}

	return Csbf * FHA * FST * FF * math.Sqrt((rhoL-rhoV)/rhoV), nil
}

// DowncomerAreaRatio estimates the ratio of downcomer area to net
// (total) tray area from the flow parameter, per Oliver.
func DowncomerAreaRatio(Flv float64) float64 {
	switch {
	case Flv < 0.1:
		return 0.1
	case Flv < 1:
		return 0.1 + (Flv-0.1)/9
	default:
		return 0.2
	}
}

// Diameter returns the column inner diameter (ft) from the vapor
// volumetric flow Vvol (m3/s), the flooding velocity Uf (m/s), the
// fraction f of flooding velocity, and the downcomer area ratio Adn.
// The diameter is floored at 0.914 m before conversion.
func Diameter(Vvol, Uf, f, Adn float64) float64 {
	Di := math.Sqrt(4 * Vvol / (f * Uf * math.Pi * (1 - Adn)))
	if Di < 0.914 {
		Di = 0.914
	}
	return Di * 3.28
}

// TrayBaseCost returns the base cost of one sieve tray (USD) from the
// inner diameter Di (ft) and the CE plant cost index.
func TrayBaseCost(Di, CE float64) float64 {
	return CE * 0.825397 * math.Exp(0.1482*Di)
}

// NTrayFactor returns the cost discount factor for the number of
// trays. Columns with 20 or more trays take no discount.
func NTrayFactor(NT float64) float64 {
	if NT < 20 {
		return 2.25 / math.Pow(1.0414, NT)
	}
	return 1
}

// EmptyTowerCost returns the f.o.b. cost (USD) of an empty tower
// vessel of weight W (lb), on a CE basis of 500.
func EmptyTowerCost(W float64) float64 {
	lw := math.Log(W)
	return math.Exp(7.2756 + 0.18255*lw + 0.02297*lw*lw)
}

// PlatformLadderCost returns the cost (USD) of platforms and ladders
// for a tower of inner diameter Di (ft) and length L (ft), on a CE
// basis of 500.
func PlatformLadderCost(Di, L float64) float64 {
	return 300.9 * math.Pow(Di, 0.63316) * math.Pow(L, 0.80161)
}
