package column

import "github.com/chemetools/gocolumn/internal/seader"

// sectionHydraulics holds the transient sizing state of one
// hydraulically distinct column section. Only the diameter outlives
// the sizing call.
type sectionHydraulics struct {
	Flv      float64
	Csbf     float64 // m/s
	Uf       float64 // m/s
	Adn      float64
	Diameter float64 // ft
}

// sizeSection computes the section diameter through the flooding
// correlation chain.
//
//	L, V:       liquid and vapor mass flows (kg/h)
//	rhoV, rhoL: phase densities (kg/m3)
//	sigma:      liquid surface tension (dyn/cm)
//	Vvol:       vapor volumetric flow (m3/s)
func (c *Config) sizeSection(L, V, rhoV, rhoL, sigma, Vvol float64) (sectionHydraulics, error) {
	h := sectionHydraulics{}
	h.Flv = seader.FlowParameter(L, V, rhoV, rhoL)
	h.Csbf = seader.MaxCapacityParameter(c.ts, h.Flv)

	Uf, err := seader.MaxVaporVelocity(h.Csbf, sigma, rhoL, rhoV, c.ff, c.aha)
	if err != nil {
		return h, err
	}
	h.Uf = Uf

	if c.hasAdn {
		h.Adn = c.adn
	} else {
		h.Adn = seader.DowncomerAreaRatio(h.Flv)
	}

	h.Diameter = seader.Diameter(Vvol, Uf, c.flooding, h.Adn)
	return h, nil
}
