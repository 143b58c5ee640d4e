package cmd

import (
	"github.com/chemetools/gocolumn/internal/column"
	"github.com/spf13/cobra"
)

// configFlags carries the tray/vessel configuration flags shared by
// the column and stripper design commands.
type configFlags struct {
	trayType       string
	trayMaterial   string
	vesselMaterial string
	traySpacing    float64
	foamingFactor  float64
	openAreaRatio  float64
	downcomerRatio float64
	floodingFrac   float64
	stageEff       float64
	costIndex      float64
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.trayType, "tray-type", "Sieve", "Tray type (Sieve, Valve, Bubble cap)")
	cmd.Flags().StringVar(&f.trayMaterial, "tray-material", "Carbon steel", "Tray material")
	cmd.Flags().StringVar(&f.vesselMaterial, "vessel-material", "Carbon steel", "Vessel shell material")
	cmd.Flags().Float64Var(&f.traySpacing, "tray-spacing", 450, "Tray spacing (mm, 225-600)")
	cmd.Flags().Float64Var(&f.foamingFactor, "foaming", 1, "Foaming factor F_F (0-1]")
	cmd.Flags().Float64Var(&f.openAreaRatio, "open-area", 0.1, "Ratio of open to active tray area A_ha [0.06-1]")
	cmd.Flags().Float64Var(&f.downcomerRatio, "downcomer", 0, "Fixed downcomer to net area ratio A_dn (0 = estimate)")
	cmd.Flags().Float64Var(&f.floodingFrac, "flooding", 0.8, "Fraction of flooding velocity")
	cmd.Flags().Float64Var(&f.stageEff, "efficiency", 0, "Enforced stage efficiency (0 = O'Connell correlation)")
	cmd.Flags().Float64Var(&f.costIndex, "ce", 567.5, "CE plant cost index")
}

// apply validates every flag through the config setters.
func (f *configFlags) apply(c *column.Config) error {
	if err := c.SetTrayType(f.trayType); err != nil {
		return err
	}
	if err := c.SetTrayMaterial(f.trayMaterial); err != nil {
		return err
	}
	if err := c.SetVesselMaterial(f.vesselMaterial); err != nil {
		return err
	}
	if err := c.SetTraySpacing(f.traySpacing); err != nil {
		return err
	}
	if err := c.SetFoamingFactor(f.foamingFactor); err != nil {
		return err
	}
	if err := c.SetOpenAreaRatio(f.openAreaRatio); err != nil {
		return err
	}
	if f.downcomerRatio != 0 {
		if err := c.SetDowncomerAreaRatio(f.downcomerRatio); err != nil {
			return err
		}
	}
	if err := c.SetFloodingFraction(f.floodingFrac); err != nil {
		return err
	}
	if f.stageEff != 0 {
		if err := c.SetStageEfficiency(f.stageEff); err != nil {
			return err
		}
	}
	return c.SetCostIndex(f.costIndex)
}
