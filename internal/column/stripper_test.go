package column

import (
	"math"
	"testing"
)

func TestNewStripperValidation(t *testing.T) {
	if _, err := NewStripper("Methanol", "Methanol", 101325, 0.99, 0.01, 1.25); err == nil {
		t.Error("expected error for identical keys")
	}
	if _, err := NewStripper("Methanol", "Water", -1, 0.99, 0.01, 1.25); err == nil {
		t.Error("expected error for negative pressure")
	}
}

func TestStripperDesign(t *testing.T) {
	col, err := NewStripper("Methanol", "Water", 101325, 0.95, 0.01, 1.5)
	if err != nil {
		t.Fatalf("NewStripper: %v", err)
	}
	feed := methanolWaterFeed(t)

	res, err := col.Design(feed)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}

	if res.MinBoilUp <= 0 {
		t.Errorf("MinBoilUp = %g, want positive", res.MinBoilUp)
	}
	if math.Abs(res.BoilUp-1.5*res.MinBoilUp) > 1e-12 {
		t.Errorf("BoilUp = %g, want 1.5 * %g", res.BoilUp, res.MinBoilUp)
	}
	if res.MinReflux != 0 || res.Reflux != 0 {
		t.Errorf("reflux fields set on a stripper design: %g, %g", res.MinReflux, res.Reflux)
	}

	if res.TheoreticalStages < 2 {
		t.Errorf("TheoreticalStages = %d, want at least 2", res.TheoreticalStages)
	}
	if res.ActualStages < res.TheoreticalStages {
		t.Errorf("ActualStages = %d below TheoreticalStages = %d", res.ActualStages, res.TheoreticalStages)
	}
	if e := res.StripperEfficiency; e <= 0 || e > 1 {
		t.Errorf("stage efficiency %g outside (0, 1]", e)
	}

	// Mass conservation across the split.
	for i := range feed.Species {
		sum := res.Distillate.Mol[i] + res.Bottoms.Mol[i]
		if math.Abs(sum-feed.Mol[i]) > 1e-9 {
			t.Errorf("component %s not conserved: %g, want %g", feed.Species[i].ID, sum, feed.Mol[i])
		}
	}

	if res.Diameter < 0.914*3.28-1e-9 {
		t.Errorf("Diameter = %g ft, below the minimum practical diameter", res.Diameter)
	}
	if res.Height <= 0 || res.Weight <= 0 {
		t.Errorf("non-positive dimensions: H=%g W=%g", res.Height, res.Weight)
	}

	// The staircase runs from the bottoms spec toward the overhead spec.
	if res.XStages[0] != 0.01 {
		t.Errorf("trace starts at %g, want x_bot", res.XStages[0])
	}
}

func TestStripperBoilUpScalesWithPurity(t *testing.T) {
	feed := methanolWaterFeed(t)

	lo, err := NewStripper("Methanol", "Water", 101325, 0.90, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewStripper: %v", err)
	}
	hi, err := NewStripper("Methanol", "Water", 101325, 0.99, 0.01, 1.25)
	if err != nil {
		t.Fatalf("NewStripper: %v", err)
	}

	resLo, err := lo.Design(feed.Copy())
	if err != nil {
		t.Fatalf("Design(y=0.90): %v", err)
	}
	resHi, err := hi.Design(feed.Copy())
	if err != nil {
		t.Fatalf("Design(y=0.99): %v", err)
	}

	// A purer overhead always demands more boil-up; the stage count is
	// discrete and only separates at a wide enough purity gap.
	if resHi.MinBoilUp <= resLo.MinBoilUp {
		t.Errorf("minimum boil-up at y=0.99 (%g) not above y=0.90 (%g)", resHi.MinBoilUp, resLo.MinBoilUp)
	}
	if resHi.BoilUp <= resLo.BoilUp {
		t.Errorf("boil-up at y=0.99 (%g) not above y=0.90 (%g)", resHi.BoilUp, resLo.BoilUp)
	}
	if resHi.TheoreticalStages <= resLo.TheoreticalStages {
		t.Errorf("stages at y=0.99 (%d) not above y=0.90 (%d)", resHi.TheoreticalStages, resLo.TheoreticalStages)
	}
}

func TestStripperCost(t *testing.T) {
	col, err := NewStripper("Methanol", "Water", 101325, 0.95, 0.01, 1.5)
	if err != nil {
		t.Fatalf("NewStripper: %v", err)
	}
	res, err := col.Design(methanolWaterFeed(t))
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	cost, err := col.Cost(res)
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}

	if cost.Trays <= 0 || cost.Tower <= 0 || cost.Boiler <= 0 {
		t.Errorf("costs = %g, %g, %g, want all positive", cost.Trays, cost.Tower, cost.Boiler)
	}
	// A stripper has no condenser.
	if cost.Condenser != 0 {
		t.Errorf("Condenser cost = %g on a stripper, want 0", cost.Condenser)
	}
}
