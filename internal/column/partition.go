package column

import (
	"fmt"

	"github.com/chemetools/gocolumn/internal/thermo"
)

// keyPartition classifies every feed component relative to the key
// pair: the light and heavy key indices, plus the light non-keys
// (assumed fully overhead) and heavy non-keys (assumed fully to the
// bottoms).
type keyPartition struct {
	LK, HK int
	LNK    []int
	HNK    []int
}

// partitionKeys classifies the species list by reference boiling
// point. A non-key component boiling between the keys cannot be
// routed and is a configuration error.
func partitionKeys(species []*thermo.Species, lightKey, heavyKey string) (keyPartition, error) {
	p := keyPartition{LK: -1, HK: -1}
	for i, sp := range species {
		switch sp.ID {
		case lightKey:
			p.LK = i
		case heavyKey:
			p.HK = i
		}
	}
	if p.LK < 0 {
		return p, fmt.Errorf("light key %q is not a feed component", lightKey)
	}
	if p.HK < 0 {
		return p, fmt.Errorf("heavy key %q is not a feed component", heavyKey)
	}

	tbLight := species[p.LK].Tb
	tbHeavy := species[p.HK].Tb
	if tbLight >= tbHeavy {
		return p, fmt.Errorf("light key %q (Tb=%.1f K) must be more volatile than heavy key %q (Tb=%.1f K)", lightKey, tbLight, heavyKey, tbHeavy)
	}

	for i, sp := range species {
		if i == p.LK || i == p.HK {
			continue
		}
		switch {
		case sp.Tb < tbLight:
			p.LNK = append(p.LNK, i)
		case sp.Tb > tbHeavy:
			p.HNK = append(p.HNK, i)
		default:
			return p, fmt.Errorf("intermediate volatile species %q between light and heavy key [%q, %q]", sp.ID, lightKey, heavyKey)
		}
	}
	return p, nil
}
