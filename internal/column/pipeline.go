package column

import (
	"fmt"

	"github.com/chemetools/gocolumn/internal/thermo"
)

// designState is the working state of one design run, threaded
// between pipeline stages. Each run builds a fresh state; no trace or
// hydraulic data survives into the next call.
type designState struct {
	species []*thermo.Species
	part    keyPartition

	// Feed molar flows aggregated by phase (kmol/h).
	feedLiq []float64
	feedVap []float64

	dist *thermo.Stream
	bot  *thermo.Stream

	// Equilibrium species subsets (components with product flow) and
	// the compositions returned by the terminal flash calculations.
	topSpecies []*thermo.Species
	topIdx     []int
	condFrac   []float64
	botSpecies []*thermo.Species
	botIdx     []int
	boilFrac   []float64
}

// prepare runs partitioning, the key mass balance and the two
// terminal equilibrium points (dew point of the distillate, bubble
// point of the bottoms).
func prepare(feeds []*thermo.Stream, lightKey, heavyKey string, P, yTop, xBot float64) (*designState, error) {
	if len(feeds) == 0 {
		return nil, fmt.Errorf("at least one feed stream is required")
	}
	species := feeds[0].Species
	for _, f := range feeds[1:] {
		if len(f.Species) != len(species) {
			return nil, fmt.Errorf("all feed streams must share one species list")
		}
		for i := range species {
			if f.Species[i].ID != species[i].ID {
				return nil, fmt.Errorf("all feed streams must share one species list")
			}
		}
	}

	st := &designState{
		species: species,
		feedLiq: make([]float64, len(species)),
		feedVap: make([]float64, len(species)),
	}

	// Aggregate feed flows by phase.
	for _, f := range feeds {
		switch f.Phase {
		case thermo.Liquid:
			for i, m := range f.Mol {
				st.feedLiq[i] += m
			}
		case thermo.Vapor:
			for i, m := range f.Mol {
				st.feedVap[i] += m
			}
		case thermo.Solid:
			// Solids pass through neither section.
		case thermo.TwoPhase:
			if len(f.LiquidMol) != len(species) || len(f.VaporMol) != len(species) {
				return nil, fmt.Errorf("two-phase feed stream must carry liquid and vapor flow vectors over all %d species", len(species))
			}
			for i := range species {
				st.feedLiq[i] += f.LiquidMol[i]
				st.feedVap[i] += f.VaporMol[i]
			}
		default:
			return nil, fmt.Errorf("invalid phase %v encountered in feed stream", f.Phase)
		}
	}

	part, err := partitionKeys(species, lightKey, heavyKey)
	if err != nil {
		return nil, err
	}
	st.part = part

	feedMol := make([]float64, len(species))
	for i := range species {
		feedMol[i] = st.feedLiq[i] + st.feedVap[i]
	}
	st.dist, st.bot, err = massBalance(species, part, feedMol, yTop, xBot, P)
	if err != nil {
		return nil, err
	}

	// Equilibrium species subsets.
	st.topSpecies, st.topIdx = equilibriumSubset(st.dist)
	st.botSpecies, st.botIdx = equilibriumSubset(st.bot)

	// Dew point of the distillate gives the condensate composition.
	y := subsetFrac(st.dist, st.topIdx)
	T, x, err := thermo.DewPoint(st.topSpecies, y, P)
	if err != nil {
		return nil, err
	}
	st.dist.T = T
	st.condFrac = x

	// Bubble point of the bottoms gives the boil-up composition.
	xb := subsetFrac(st.bot, st.botIdx)
	T, yb, err := thermo.BubblePoint(st.botSpecies, xb, P)
	if err != nil {
		return nil, err
	}
	st.bot.T = T
	st.boilFrac = yb

	return st, nil
}

// equilibriumSubset returns the species carrying flow in a stream.
func equilibriumSubset(s *thermo.Stream) ([]*thermo.Species, []int) {
	var species []*thermo.Species
	var idx []int
	for i, m := range s.Mol {
		if m > 0 {
			species = append(species, s.Species[i])
			idx = append(idx, i)
		}
	}
	return species, idx
}

// subsetFrac returns normalized mole fractions over a species subset.
func subsetFrac(s *thermo.Stream, idx []int) []float64 {
	var net float64
	for _, i := range idx {
		net += s.Mol[i]
	}
	frac := make([]float64, len(idx))
	for j, i := range idx {
		frac[j] = s.Mol[i] / net
	}
	return frac
}

// subsetStream builds a single-phase stream over a species subset
// with flows frac*net.
func subsetStream(species []*thermo.Species, frac []float64, net float64, phase thermo.Phase, T, P float64) *thermo.Stream {
	s := thermo.NewStream(species, phase, T, P)
	for i := range species {
		s.Mol[i] = frac[i] * net
	}
	return s
}
