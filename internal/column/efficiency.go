package column

import "math"

// terminalAlpha returns the apparent relative volatility of the key
// pair read off one staircase stage: the ratio of light to heavy key
// K-values at that stage.
func terminalAlpha(x, y float64) float64 {
	kLight := y / x
	kHeavy := (1 - y) / (1 - x)
	return kLight / kHeavy
}

// actualStages converts theoretical stages in a section to actual
// trays with the section efficiency.
func actualStages(theoretical, efficiency float64) int {
	return int(math.Ceil(theoretical / efficiency))
}
