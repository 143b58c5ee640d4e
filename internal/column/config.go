// Package column implements McCabe-Thiele design, sizing and costing
// of staged vapor-liquid separation columns. Two variants are
// provided: Distillation (rectifying + stripping sections, optionally
// as two separate vessels) and Stripper (stripping section only).
package column

import (
	"fmt"

	"github.com/chemetools/gocolumn/internal/seader"
)

// Config holds the tray and vessel configuration of a column. Every
// setter validates immediately; invalid values are never stored.
type Config struct {
	trayType string
	fTT      float64

	trayMaterial string
	fTM          func(Di float64) float64

	vesselMaterial string
	fM             float64
	rhoM           float64 // lb/in3

	ts       float64 // tray spacing (mm)
	flooding float64 // fraction of flooding velocity
	ff       float64 // foaming factor
	aha      float64 // open area / active area
	adn      float64 // downcomer area / net area override
	hasAdn   bool
	stageEff float64 // user stage efficiency override; 0 uses O'Connell
	ce       float64 // CE plant cost index
}

// DefaultConfig returns a sieve-tray carbon steel column at 450 mm
// tray spacing, 80% of flooding, CE index 567.5.
func DefaultConfig() Config {
	c := Config{}
	// Defaults are drawn from validated tables; these cannot fail.
	_ = c.SetTrayType("Sieve")
	_ = c.SetTrayMaterial("Carbon steel")
	_ = c.SetVesselMaterial("Carbon steel")
	_ = c.SetTraySpacing(450)
	_ = c.SetFloodingFraction(0.8)
	_ = c.SetFoamingFactor(1)
	_ = c.SetOpenAreaRatio(0.1)
	_ = c.SetCostIndex(567.5)
	return c
}

// SetTrayType sets the tray type (Sieve, Valve, Bubble cap).
func (c *Config) SetTrayType(trayType string) error {
	f, err := seader.TrayTypeFactor(trayType)
	if err != nil {
		return err
	}
	c.trayType = trayType
	c.fTT = f
	return nil
}

// SetTrayMaterial sets the tray material.
func (c *Config) SetTrayMaterial(material string) error {
	f, err := seader.TrayMaterialFactor(material)
	if err != nil {
		return err
	}
	c.trayMaterial = material
	c.fTM = f
	return nil
}

// SetVesselMaterial sets the shell material. The material must have
// both a cost factor and a tabulated density for weight estimation.
func (c *Config) SetVesselMaterial(material string) error {
	f, err := seader.VesselMaterialFactor(material)
	if err != nil {
		return err
	}
	rho, err := seader.VesselMaterialDensity(material)
	if err != nil {
		return err
	}
	c.vesselMaterial = material
	c.fM = f
	c.rhoM = rho
	return nil
}

// SetTraySpacing sets the tray spacing in mm (225-600).
func (c *Config) SetTraySpacing(ts float64) error {
	if ts < 225 || ts > 600 {
		return fmt.Errorf("tray spacing must be between 225 and 600 mm (%g given)", ts)
	}
	c.ts = ts
	return nil
}

// SetFloodingFraction sets the ratio of actual vapor velocity to the
// maximum velocity allowable before flooding.
func (c *Config) SetFloodingFraction(f float64) error {
	if f <= 0 || f > 1 {
		return fmt.Errorf("flooding fraction must be in (0, 1] (%g given)", f)
	}
	c.flooding = f
	return nil
}

// SetFoamingFactor sets the foaming factor F_F (0 < F_F <= 1).
func (c *Config) SetFoamingFactor(ff float64) error {
	if ff > 1 || ff <= 0 {
		return fmt.Errorf("foaming factor 'F_F' must be between 0 and 1 (%g given)", ff)
	}
	c.ff = ff
	return nil
}

// SetOpenAreaRatio sets the ratio of open area A_h to active area A_a.
func (c *Config) SetOpenAreaRatio(aha float64) error {
	if aha < 0.06 || aha > 1 {
		return fmt.Errorf("ratio of open to active area 'A_ha' must be between 0.06 and 1 (%g given)", aha)
	}
	c.aha = aha
	return nil
}

// SetDowncomerAreaRatio fixes the ratio of downcomer area to net
// (total) area. When unset, the ratio is estimated per section from
// the flow parameter (Oliver's estimation).
func (c *Config) SetDowncomerAreaRatio(adn float64) error {
	if adn <= 0 || adn >= 1 {
		return fmt.Errorf("downcomer area ratio 'A_dn' must be in (0, 1) (%g given)", adn)
	}
	c.adn = adn
	c.hasAdn = true
	return nil
}

// SetStageEfficiency enforces a user-defined stage efficiency in
// place of the O'Connell correlation, applied uniformly per section.
func (c *Config) SetStageEfficiency(e float64) error {
	if e <= 0 || e > 1 {
		return fmt.Errorf("stage efficiency must be in (0, 1] (%g given)", e)
	}
	c.stageEff = e
	return nil
}

// SetCostIndex sets the CE plant cost index all cost correlations are
// scaled by.
func (c *Config) SetCostIndex(ce float64) error {
	if ce <= 0 {
		return fmt.Errorf("cost index must be positive (%g given)", ce)
	}
	c.ce = ce
	return nil
}

// TrayType returns the configured tray type.
func (c *Config) TrayType() string { return c.trayType }

// TrayMaterial returns the configured tray material.
func (c *Config) TrayMaterial() string { return c.trayMaterial }

// VesselMaterial returns the configured vessel material.
func (c *Config) VesselMaterial() string { return c.vesselMaterial }

// TraySpacing returns the tray spacing (mm).
func (c *Config) TraySpacing() float64 { return c.ts }

// CostIndex returns the configured CE plant cost index.
func (c *Config) CostIndex() float64 { return c.ce }
