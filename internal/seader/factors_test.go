package seader

import (
	"math"
	"strings"
	"testing"
)

func TestTrayTypeFactor(t *testing.T) {
	cases := map[string]float64{
		"Sieve":      1,
		"Valve":      1.18,
		"Bubble cap": 1.87,
	}
	for name, want := range cases {
		got, err := TrayTypeFactor(name)
		if err != nil {
			t.Errorf("TrayTypeFactor(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("TrayTypeFactor(%q) = %g, want %g", name, got, want)
		}
	}
}

func TestTrayTypeFactorUnknown(t *testing.T) {
	_, err := TrayTypeFactor("Packed")
	if err == nil {
		t.Fatal("expected error for unknown tray type")
	}
	for _, name := range []string{"Bubble cap", "Sieve", "Valve"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not list option %q", err.Error(), name)
		}
	}
}

func TestTrayMaterialFactor(t *testing.T) {
	f, err := TrayMaterialFactor("Stainless steel 304")
	if err != nil {
		t.Fatalf("TrayMaterialFactor: %v", err)
	}
	// F_TM grows linearly with diameter for alloy trays.
	if got, want := f(4), 1.189+0.058*4; math.Abs(got-want) > 1e-12 {
		t.Errorf("F_TM(4 ft) = %g, want %g", got, want)
	}

	cs, err := TrayMaterialFactor("Carbon steel")
	if err != nil {
		t.Fatalf("TrayMaterialFactor: %v", err)
	}
	if cs(3) != 1 || cs(20) != 1 {
		t.Error("carbon steel tray factor should be 1 at any diameter")
	}
}

func TestTrayMaterialFactorUnknown(t *testing.T) {
	_, err := TrayMaterialFactor("Unobtainium")
	if err == nil {
		t.Fatal("expected error for unknown tray material")
	}
	if !strings.Contains(err.Error(), "Monel") || !strings.Contains(err.Error(), "Carbon steel") {
		t.Errorf("error %q does not list the valid materials", err.Error())
	}
}

func TestVesselMaterialFactor(t *testing.T) {
	got, err := VesselMaterialFactor("Stainless steel 316")
	if err != nil {
		t.Fatalf("VesselMaterialFactor: %v", err)
	}
	if got != 2.1 {
		t.Errorf("F_M = %g, want 2.1", got)
	}
	if _, err := VesselMaterialFactor("Adamantium"); err == nil {
		t.Fatal("expected error for unknown vessel material")
	}
}

func TestVesselMaterialDensity(t *testing.T) {
	got, err := VesselMaterialDensity("Carbon steel")
	if err != nil {
		t.Fatalf("VesselMaterialDensity: %v", err)
	}
	if got != 0.284 {
		t.Errorf("density = %g, want 0.284", got)
	}

	// Titanium has a cost factor but no tabulated density: mechanical
	// sizing rejects it up front.
	if _, err := VesselMaterialDensity("Titanium"); err == nil {
		t.Fatal("expected error for material without density data")
	}
}
