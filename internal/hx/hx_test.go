package hx

import (
	"math"
	"testing"

	"github.com/chemetools/gocolumn/internal/thermo"
)

func methanolStream(t *testing.T, mol, T float64) *thermo.Stream {
	t.Helper()
	sp, err := thermo.Lookup("Methanol")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	s := thermo.NewStream([]*thermo.Species{sp}, thermo.Liquid, T, 101325)
	s.Mol[0] = mol
	return s
}

func TestCondenserDesign(t *testing.T) {
	// 100 kmol/h of methanol condensing at its boiling point.
	duty := methanolStream(t, 100, 337.85)
	res, err := Condenser().Design(duty, 500)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}

	// Latent duty: 100 kmol/h * 35200 J/mol = 978 kW.
	want := 100 * 35200.0 * 1000 / 3600
	if math.Abs(res.Duty-want)/want > 1e-9 {
		t.Errorf("Duty = %g W, want %g", res.Duty, want)
	}
	if res.LMTD <= 0 || res.LMTD >= 337.85-305 {
		t.Errorf("LMTD = %g K outside the cooling water approach band", res.LMTD)
	}
	if res.Area <= 0 || res.Cost <= 0 {
		t.Errorf("Area = %g, Cost = %g, want positive", res.Area, res.Cost)
	}
}

func TestCondenserBrineFallback(t *testing.T) {
	// A condensation temperature below the cooling water return switches
	// the utility to brine instead of failing on a negative approach.
	duty := methanolStream(t, 50, 320)
	res, err := Condenser().Design(duty, 500)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	if res.LMTD <= 0 || res.LMTD >= 320-255 {
		t.Errorf("LMTD = %g K outside the brine approach band", res.LMTD)
	}
}

func TestBoilerDesign(t *testing.T) {
	duty := methanolStream(t, 100, 373)
	res, err := Boiler().Design(duty, 500)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	if res.LMTD != steamApproach {
		t.Errorf("boiler LMTD = %g, want the fixed steam approach %g", res.LMTD, steamApproach)
	}
	if res.Area <= 0 || res.Cost <= 0 {
		t.Errorf("Area = %g, Cost = %g, want positive", res.Area, res.Cost)
	}
}

func TestDesignCostScalesWithIndex(t *testing.T) {
	duty := methanolStream(t, 100, 337.85)
	a, err := Boiler().Design(duty, 500)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	b, err := Boiler().Design(duty, 600)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	if math.Abs(b.Cost-1.2*a.Cost) > 1e-6*a.Cost {
		t.Errorf("cost not linear in CE index: %g vs 1.2*%g", b.Cost, a.Cost)
	}
}

func TestDesignNilStream(t *testing.T) {
	if _, err := Condenser().Design(nil, 500); err == nil {
		t.Fatal("expected error for nil duty stream")
	}
}
