package column

import (
	"fmt"

	"github.com/chemetools/gocolumn/internal/thermo"
)

// massBalance splits the feed molar flows into distillate and bottoms
// by the lever rule on the key pair. Light non-keys go entirely
// overhead and heavy non-keys entirely to the bottoms, so mass is
// conserved component-wise.
func massBalance(species []*thermo.Species, part keyPartition, feedMol []float64, yTop, xBot, P float64) (*thermo.Stream, *thermo.Stream, error) {
	light := feedMol[part.LK]
	heavy := feedMol[part.HK]
	lhkNet := light + heavy
	if lhkNet <= 0 {
		return nil, nil, fmt.Errorf("feed contains no key-component flow")
	}
	zf := light / lhkNet
	if zf <= xBot || zf >= yTop {
		return nil, nil, fmt.Errorf("feed key fraction z=%.4f must lie between x_bot=%.4f and y_top=%.4f", zf, xBot, yTop)
	}

	splitFrac := (zf - xBot) / (yTop - xBot)
	topNet := lhkNet * splitFrac

	dist := thermo.NewStream(species, thermo.Vapor, 0, P)
	bot := thermo.NewStream(species, thermo.Liquid, 0, P)

	dist.Mol[part.LK] = topNet * yTop
	dist.Mol[part.HK] = topNet * (1 - yTop)
	bot.Mol[part.LK] = light - dist.Mol[part.LK]
	bot.Mol[part.HK] = heavy - dist.Mol[part.HK]

	for _, i := range part.LNK {
		dist.Mol[i] = feedMol[i]
	}
	for _, i := range part.HNK {
		bot.Mol[i] = feedMol[i]
	}
	return dist, bot, nil
}
