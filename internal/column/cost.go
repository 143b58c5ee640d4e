package column

import "github.com/chemetools/gocolumn/internal/seader"

// costTrays returns the purchased cost of NT trays of diameter Di (ft).
func (c *Config) costTrays(NT int, Di float64) float64 {
	CBT := seader.TrayBaseCost(Di, c.ce)
	FNT := seader.NTrayFactor(float64(NT))
	return float64(NT) * FNT * c.fTT * c.fTM(Di) * CBT
}

// costTower returns the purchased cost of the empty vessel with
// platforms and ladders. Di and L in ft, W in lb.
func (c *Config) costTower(Di, L, W float64) float64 {
	CV := seader.EmptyTowerCost(W)
	CPL := seader.PlatformLadderCost(Di, L)
	return (c.fM*CV + CPL) * c.ce / 500
}
