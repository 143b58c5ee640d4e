package column

import (
	"math"
	"testing"

	"github.com/chemetools/gocolumn/internal/thermo"
)

func methanolWaterFeed(t *testing.T) *thermo.Stream {
	t.Helper()
	species := speciesList(t, "Methanol", "Water")
	f := thermo.NewStream(species, thermo.Liquid, 353, 101325)
	f.Mol[0] = 50
	f.Mol[1] = 50
	return f
}

func TestNewDistillationValidation(t *testing.T) {
	cases := []struct {
		name                 string
		light, heavy         string
		p, yTop, xBot, ratio float64
	}{
		{"empty keys", "", "Water", 101325, 0.99, 0.01, 1.25},
		{"identical keys", "Water", "Water", 101325, 0.99, 0.01, 1.25},
		{"zero pressure", "Methanol", "Water", 0, 0.99, 0.01, 1.25},
		{"crossed targets", "Methanol", "Water", 101325, 0.01, 0.99, 1.25},
		{"target at unity", "Methanol", "Water", 101325, 1, 0.01, 1.25},
		{"non-positive k", "Methanol", "Water", 101325, 0.99, 0.01, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewDistillation(c.light, c.heavy, c.p, c.yTop, c.xBot, c.ratio); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDistillationDesign(t *testing.T) {
	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	feed := methanolWaterFeed(t)

	res, err := col.Design(feed)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}

	if res.TheoreticalStages < 2 {
		t.Errorf("TheoreticalStages = %d, want at least 2", res.TheoreticalStages)
	}
	if res.FeedStage < 1 || res.FeedStage > res.TheoreticalStages {
		t.Errorf("FeedStage = %d outside [1, %d]", res.FeedStage, res.TheoreticalStages)
	}
	if res.MinReflux <= 0 {
		t.Errorf("MinReflux = %g, want positive", res.MinReflux)
	}
	if math.Abs(res.Reflux-1.25*res.MinReflux) > 1e-12 {
		t.Errorf("Reflux = %g, want 1.25 * %g", res.Reflux, res.MinReflux)
	}

	// Component-wise mass conservation across the split.
	for i := range feed.Species {
		sum := res.Distillate.Mol[i] + res.Bottoms.Mol[i]
		if math.Abs(sum-feed.Mol[i]) > 1e-9 {
			t.Errorf("component %s not conserved: %g, want %g", feed.Species[i].ID, sum, feed.Mol[i])
		}
	}

	// Product temperatures from the terminal flashes: the condenser
	// runs cooler than the reboiler.
	if res.Distillate.T >= res.Bottoms.T {
		t.Errorf("distillate T %g K not below bottoms T %g K", res.Distillate.T, res.Bottoms.T)
	}

	for _, e := range []float64{res.RectifierEfficiency, res.StripperEfficiency} {
		if e <= 0 || e > 1 {
			t.Errorf("stage efficiency %g outside (0, 1]", e)
		}
	}
	if res.ActualStages < res.TheoreticalStages {
		t.Errorf("ActualStages = %d below TheoreticalStages = %d", res.ActualStages, res.TheoreticalStages)
	}

	if res.Diameter < 0.914*3.28-1e-9 {
		t.Errorf("Diameter = %g ft, below the minimum practical diameter", res.Diameter)
	}
	if res.Height <= 0 || res.WallThickness <= 0 || res.Weight <= 0 {
		t.Errorf("non-positive dimensions: H=%g tv=%g W=%g", res.Height, res.WallThickness, res.Weight)
	}

	// Staircase trace spans the composition targets.
	if res.XStages[0] != 0.01 {
		t.Errorf("trace starts at %g, want x_bot", res.XStages[0])
	}
	if last := res.YStages[len(res.YStages)-1]; last < 0.99 {
		t.Errorf("trace ends at y=%g, want at least y_top", last)
	}
}

func TestDistillationCost(t *testing.T) {
	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	res, err := col.Design(methanolWaterFeed(t))
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	cost, err := col.Cost(res)
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}

	for name, v := range map[string]float64{
		"Trays":     cost.Trays,
		"Tower":     cost.Tower,
		"Condenser": cost.Condenser,
		"Boiler":    cost.Boiler,
	} {
		if v <= 0 {
			t.Errorf("%s cost = %g, want positive", name, v)
		}
	}
	if total := cost.Total(); math.Abs(total-(cost.Trays+cost.Tower+cost.Condenser+cost.Boiler)) > 1e-9 {
		t.Errorf("Total = %g, want sum of contributions", total)
	}

	if _, err := col.Cost(nil); err == nil {
		t.Error("expected error for Cost without a design result")
	}
}

func TestDistillationDesignDivided(t *testing.T) {
	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	col.Divided = true

	res, err := col.Design(methanolWaterFeed(t))
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	if !res.Divided {
		t.Fatal("result not marked divided")
	}
	for _, s := range []SectionSize{res.Rectifier, res.Stripper} {
		if s.Stages < 1 || s.Diameter <= 0 || s.Height <= 0 || s.WallThickness <= 0 || s.Weight <= 0 {
			t.Errorf("incomplete section sizing: %+v", s)
		}
	}

	cost, err := col.Cost(res)
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost.RectifierTower <= 0 || cost.StripperTower <= 0 {
		t.Errorf("divided tower costs = %g, %g, want positive", cost.RectifierTower, cost.StripperTower)
	}
	if cost.Trays != 0 || cost.Tower != 0 {
		t.Errorf("combined-column costs set on a divided design: %g, %g", cost.Trays, cost.Tower)
	}
}

func TestDistillationDesignCustomEfficiency(t *testing.T) {
	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	if err := col.SetStageEfficiency(0.5); err != nil {
		t.Fatalf("SetStageEfficiency: %v", err)
	}

	res, err := col.Design(methanolWaterFeed(t))
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	if res.RectifierEfficiency != 0.5 || res.StripperEfficiency != 0.5 {
		t.Errorf("efficiencies = %g, %g, want the enforced 0.5", res.RectifierEfficiency, res.StripperEfficiency)
	}
	// Both sections round up separately, so the total at e=0.5 is at
	// least twice the theoretical count.
	if res.ActualStages < 2*res.TheoreticalStages {
		t.Errorf("ActualStages = %d, want at least %d at e=0.5", res.ActualStages, 2*res.TheoreticalStages)
	}
}

func TestDistillationDesignTwoPhaseFeed(t *testing.T) {
	species := speciesList(t, "Methanol", "Water")
	f := thermo.NewStream(species, thermo.TwoPhase, 353, 101325)
	f.Mol = nil
	f.LiquidMol = []float64{30, 40}
	f.VaporMol = []float64{20, 10}

	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	res, err := col.Design(f)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	if res.TheoreticalStages < 2 || res.MinReflux <= 0 {
		t.Errorf("two-phase feed design incomplete: stages=%d Rmin=%g", res.TheoreticalStages, res.MinReflux)
	}
}

func TestDistillationDesignMalformedTwoPhaseFeed(t *testing.T) {
	// A hand-built two-phase stream without its phase flow vectors must
	// be rejected, not crash the pipeline.
	species := speciesList(t, "Methanol", "Water")
	f := thermo.NewStream(species, thermo.TwoPhase, 353, 101325)

	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	if _, err := col.Design(f); err == nil {
		t.Error("expected error for a two-phase feed without phase flow vectors")
	}
}

func TestDistillationDesignMultipleFeeds(t *testing.T) {
	species := speciesList(t, "Methanol", "Water")
	liq := thermo.NewStream(species, thermo.Liquid, 350, 101325)
	liq.Mol = []float64{30, 30}
	vap := thermo.NewStream(species, thermo.Vapor, 360, 101325)
	vap.Mol = []float64{20, 20}

	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	res, err := col.Design(liq, vap)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}

	// All feed mass ends up in the products.
	net := res.Distillate.MolNet() + res.Bottoms.MolNet()
	if math.Abs(net-100) > 1e-9 {
		t.Errorf("product net flow = %g, want 100", net)
	}
}

func TestDistillationDesignNoFeed(t *testing.T) {
	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	if _, err := col.Design(); err == nil {
		t.Error("expected error for design without feeds")
	}
}

func TestDistillationDesignMismatchedFeeds(t *testing.T) {
	a := methanolWaterFeed(t)
	species := speciesList(t, "Ethanol", "Water")
	b := thermo.NewStream(species, thermo.Liquid, 350, 101325)
	b.Mol = []float64{10, 10}

	col, err := NewDistillation("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewDistillation: %v", err)
	}
	if _, err := col.Design(a, b); err == nil {
		t.Error("expected error for feeds with different species lists")
	}
}
