package thermo

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write feed file: %v", err)
	}
	return path
}

func TestLoadFeedSinglePhase(t *testing.T) {
	path := writeFeed(t, `{
		"name": "test feed",
		"pressure": 101325,
		"temperature": 350,
		"phase": "liquid",
		"components": [
			{"id": "Methanol", "flow": 50},
			{"id": "Water", "flow": 50}
		]
	}`)

	s, err := LoadFeed(path)
	if err != nil {
		t.Fatalf("LoadFeed: %v", err)
	}
	if s.Phase != Liquid {
		t.Errorf("Phase = %v, want liquid", s.Phase)
	}
	if math.Abs(s.MolNet()-100) > 1e-9 {
		t.Errorf("MolNet = %g, want 100", s.MolNet())
	}
	if s.T != 350 || s.P != 101325 {
		t.Errorf("T, P = %g, %g, want 350, 101325", s.T, s.P)
	}
	if s.Species[0].ID != "Methanol" || s.Species[1].ID != "Water" {
		t.Errorf("species order not preserved: %s, %s", s.Species[0].ID, s.Species[1].ID)
	}
}

func TestLoadFeedTwoPhase(t *testing.T) {
	path := writeFeed(t, `{
		"pressure": 101325,
		"phase": "two-phase",
		"components": [
			{"id": "Methanol", "liquid": 30, "vapor": 20},
			{"id": "Water", "liquid": 40, "vapor": 10}
		]
	}`)

	s, err := LoadFeed(path)
	if err != nil {
		t.Fatalf("LoadFeed: %v", err)
	}
	if s.Phase != TwoPhase {
		t.Errorf("Phase = %v, want two-phase", s.Phase)
	}
	if s.Mol != nil {
		t.Error("two-phase stream should not carry a single-phase flow vector")
	}
	if math.Abs(s.MolNet()-100) > 1e-9 {
		t.Errorf("MolNet = %g, want 100", s.MolNet())
	}
}

func TestFeedValidation(t *testing.T) {
	cases := []struct {
		name string
		ff   FeedFile
	}{
		{
			name: "zero pressure",
			ff: FeedFile{Phase: "liquid", Components: []FeedComponent{
				{ID: "Methanol", Flow: 50}, {ID: "Water", Flow: 50},
			}},
		},
		{
			name: "one component",
			ff: FeedFile{Pressure: 101325, Phase: "liquid", Components: []FeedComponent{
				{ID: "Water", Flow: 100},
			}},
		},
		{
			name: "bad phase",
			ff: FeedFile{Pressure: 101325, Phase: "plasma", Components: []FeedComponent{
				{ID: "Methanol", Flow: 50}, {ID: "Water", Flow: 50},
			}},
		},
		{
			name: "unknown species",
			ff: FeedFile{Pressure: 101325, Phase: "liquid", Components: []FeedComponent{
				{ID: "Methanol", Flow: 50}, {ID: "Kryptonite", Flow: 50},
			}},
		},
		{
			name: "negative flow",
			ff: FeedFile{Pressure: 101325, Phase: "liquid", Components: []FeedComponent{
				{ID: "Methanol", Flow: -1}, {ID: "Water", Flow: 50},
			}},
		},
		{
			name: "zero net flow",
			ff: FeedFile{Pressure: 101325, Phase: "liquid", Components: []FeedComponent{
				{ID: "Methanol", Flow: 0}, {ID: "Water", Flow: 0},
			}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.ff.Stream(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFeedMissingFile(t *testing.T) {
	if _, err := LoadFeed(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFeedBadJSON(t *testing.T) {
	path := writeFeed(t, `{not json`)
	if _, err := LoadFeed(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
