package column

import (
	"fmt"

	"github.com/chemetools/gocolumn/internal/hx"
	"github.com/chemetools/gocolumn/internal/seader"
	"github.com/chemetools/gocolumn/internal/thermo"
)

// Stripper designs a stripping-only column. The top specification is
// an already-equilibrated vapor rather than the product of a physical
// rectifying section, so the boil-up ratio takes the place of reflux:
// the minimum follows from a dew-point calculation at the top
// composition and the actual ratio is the multiple k of the minimum.
type Stripper struct {
	Config

	LightKey string
	HeavyKey string
	P        float64 // operating pressure (Pa)
	YTop     float64 // light key mole fraction in the overhead vapor
	XBot     float64 // light key mole fraction in the bottoms
	K        float64 // ratio of boil-up to minimum boil-up
}

// NewStripper creates a stripping column with the default tray and
// vessel configuration.
func NewStripper(lightKey, heavyKey string, P, yTop, xBot, k float64) (*Stripper, error) {
	if err := validateSeparation(lightKey, heavyKey, P, yTop, xBot, k); err != nil {
		return nil, err
	}
	return &Stripper{
		Config:   DefaultConfig(),
		LightKey: lightKey,
		HeavyKey: heavyKey,
		P:        P,
		YTop:     yTop,
		XBot:     xBot,
		K:        k,
	}, nil
}

// Design runs the staging, boil-up, hydraulic and mechanical design
// pipeline on the given feed streams.
func (d *Stripper) Design(feeds ...*thermo.Stream) (*DesignResult, error) {
	st, err := prepare(feeds, d.LightKey, d.HeavyKey, d.P, d.YTop, d.XBot)
	if err != nil {
		return nil, err
	}

	res := &DesignResult{
		Distillate: st.dist,
		Bottoms:    st.bot,
	}

	part := st.part
	lk := st.species[part.LK]
	hk := st.species[part.HK]
	lhkPair := []*thermo.Species{lk, hk}
	eq := lhkEquilibrium(lk, hk, d.P)

	// Minimum boil-up from the dew point at the top composition.
	_, x, err := thermo.DewPoint(lhkPair, []float64{d.YTop, 1 - d.YTop}, d.P)
	if err != nil {
		return nil, err
	}
	xRmin := x[0]
	m := (d.YTop - d.XBot) / (xRmin - d.XBot)
	Bmin := 1 / (m - 1)
	B := actualRatio(Bmin, d.K)
	res.MinBoilUp = Bmin
	res.BoilUp = B

	// Stripping operating line starts at the bottoms composition with
	// slope (B+1)/B.
	ms := (B + 1) / B
	bs := d.XBot - ms*d.XBot
	ss := func(y float64) float64 { return (y - bs) / ms }

	tr := &trace{X: []float64{d.XBot}, Y: []float64{d.XBot}}
	ok, err := staircase(eq, ss, tr, ss(d.YTop))
	if err != nil {
		return nil, err
	}
	if !ok {
		res.warnf("cannot meet specifications: more than %d stages required", maxStairSteps)
	}
	res.XStages = tr.X
	res.YStages = tr.Y
	res.TStages = tr.T
	stages := len(tr.X)
	res.TheoreticalStages = stages

	// Diagram geometry: the operating line ends at the top spec.
	res.ZF = d.XBot
	res.XM = ss(d.YTop)
	res.YM = d.YTop

	// Stage efficiency from the terminal (bottom) stage.
	Vmol := B * (st.bot.Mol[part.LK] + st.bot.Mol[part.HK])
	Lmol := st.bot.MolNet() + Vmol
	var eS float64
	if d.stageEff > 0 {
		eS = d.stageEff
	} else {
		alpha := terminalAlpha(tr.X[0], tr.Y[0])
		eS = seader.MurphreeEfficiency(st.bot.Mu(), alpha, Lmol, Vmol)
	}
	res.StripperEfficiency = eS
	nStages := actualStages(float64(stages), eS)
	res.ActualStages = nStages
	res.Height = seader.Height(d.ts, float64(nStages-1), true, true)

	// Diameter from the boil-up at the feed plate.
	boilUp := subsetStream(st.botSpecies, st.boilFrac, Vmol, thermo.Vapor, st.bot.T, d.P)
	res.boilUp = boilUp
	rhoL := st.bot.Rho()
	rhoV := boilUp.Rho()
	Vmass := boilUp.MassNet()
	Vvol := 0.0002778 * boilUp.VolNet() // m3/h to m3/s
	// Liquid traffic has the bottoms composition at L mol flow.
	Lmass := st.bot.MassNet() / st.bot.MolNet() * Lmol
	sigma := st.bot.Sigma()
	hyd, err := d.sizeSection(Lmass, Vmass, rhoV, rhoL, sigma, Vvol)
	if err != nil {
		return nil, err
	}
	res.Diameter = hyd.Diameter

	Po := d.P / 101325 * 14.7 // Pa to psi
	res.WallThickness = seader.WallThickness(Po, res.Diameter, res.Height)
	res.Weight = seader.Weight(res.Diameter, res.Height, res.WallThickness, d.rhoM)
	res.checkBounds("", res.Diameter, res.Height, res.Weight)
	return res, nil
}

// Cost computes the purchased costs of trays, vessel and boiler for a
// completed design.
func (d *Stripper) Cost(res *DesignResult) (*CostResult, error) {
	if res == nil {
		return nil, fmt.Errorf("cost requires a completed design result")
	}
	cost := &CostResult{
		Trays: d.costTrays(res.ActualStages-1, res.Diameter),
		Tower: d.costTower(res.Diameter, res.Height, res.Weight),
	}
	boiler, err := hx.Boiler().Design(res.boilUp, d.ce)
	if err != nil {
		return nil, fmt.Errorf("boiler: %w", err)
	}
	cost.Boiler = boiler.Cost
	return cost, nil
}
