package thermo

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeedComponent is one entry of a feed definition file. Single-phase
// feeds set Flow; two-phase feeds set Liquid and/or Vapor instead.
type FeedComponent struct {
	ID     string  `json:"id"`
	Flow   float64 `json:"flow,omitempty"`   // kmol/h
	Liquid float64 `json:"liquid,omitempty"` // kmol/h
	Vapor  float64 `json:"vapor,omitempty"`  // kmol/h
}

// FeedFile is the JSON schema for a column feed.
type FeedFile struct {
	Name        string          `json:"name,omitempty"`
	Pressure    float64         `json:"pressure"`              // Pa
	Temperature float64         `json:"temperature,omitempty"` // K
	Phase       string          `json:"phase"`
	Components  []FeedComponent `json:"components"`
}

// LoadFeed loads a feed stream definition from a JSON file.
func LoadFeed(filepath string) (*Stream, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var ff FeedFile
	if err := json.Unmarshal(data, &ff); err != nil {
		return nil, err
	}

	return ff.Stream()
}

// Stream validates the feed definition and builds the stream.
func (ff *FeedFile) Stream() (*Stream, error) {
	if ff.Pressure <= 0 {
		return nil, fmt.Errorf("feed pressure must be positive, got %g Pa", ff.Pressure)
	}
	if len(ff.Components) < 2 {
		return nil, fmt.Errorf("feed must have at least 2 components, got %d", len(ff.Components))
	}
	phase, err := ParsePhase(ff.Phase)
	if err != nil {
		return nil, err
	}

	species := make([]*Species, len(ff.Components))
	for i, c := range ff.Components {
		sp, err := Lookup(c.ID)
		if err != nil {
			return nil, err
		}
		species[i] = sp
	}

	s := NewStream(species, phase, ff.Temperature, ff.Pressure)
	if phase == TwoPhase {
		s.Mol = nil
		s.LiquidMol = make([]float64, len(species))
		s.VaporMol = make([]float64, len(species))
	}
	for i, c := range ff.Components {
		if c.Flow < 0 || c.Liquid < 0 || c.Vapor < 0 {
			return nil, fmt.Errorf("negative flow for component %q", c.ID)
		}
		if phase == TwoPhase {
			s.LiquidMol[i] = c.Liquid
			s.VaporMol[i] = c.Vapor
		} else {
			s.Mol[i] = c.Flow
		}
	}
	if s.MolNet() <= 0 {
		return nil, fmt.Errorf("feed has no flow")
	}
	return s, nil
}
