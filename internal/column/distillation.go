package column

import (
	"fmt"
	"math"

	"github.com/chemetools/gocolumn/internal/hx"
	"github.com/chemetools/gocolumn/internal/seader"
	"github.com/chemetools/gocolumn/internal/thermo"
)

// Distillation designs a full column with rectifying and stripping
// sections. All light and heavy non-keys are assumed to separate to
// the distillate and bottoms respectively; the number of stages and
// the reflux ratio come from a McCabe-Thiele analysis at a given
// multiple k of the minimum reflux. Setting Divided sizes and costs
// the rectifier and stripper as two separate vessels.
type Distillation struct {
	Config

	LightKey string
	HeavyKey string
	P        float64 // operating pressure (Pa)
	YTop     float64 // light key mole fraction in the distillate
	XBot     float64 // light key mole fraction in the bottoms
	K        float64 // ratio of reflux to minimum reflux
	Divided  bool
}

// NewDistillation creates a full distillation column with the default
// tray and vessel configuration.
func NewDistillation(lightKey, heavyKey string, P, yTop, xBot, k float64) (*Distillation, error) {
	if err := validateSeparation(lightKey, heavyKey, P, yTop, xBot, k); err != nil {
		return nil, err
	}
	return &Distillation{
		Config:   DefaultConfig(),
		LightKey: lightKey,
		HeavyKey: heavyKey,
		P:        P,
		YTop:     yTop,
		XBot:     xBot,
		K:        k,
	}, nil
}

func validateSeparation(lightKey, heavyKey string, P, yTop, xBot, k float64) error {
	if lightKey == "" || heavyKey == "" {
		return fmt.Errorf("must specify light and heavy key components")
	}
	if lightKey == heavyKey {
		return fmt.Errorf("light and heavy key must differ, both are %q", lightKey)
	}
	if P <= 0 {
		return fmt.Errorf("operating pressure must be positive (%g given)", P)
	}
	if !(0 < xBot && xBot < yTop && yTop < 1) {
		return fmt.Errorf("composition targets must satisfy 0 < x_bot < y_top < 1 (x_bot=%g, y_top=%g)", xBot, yTop)
	}
	if k <= 0 {
		return fmt.Errorf("reflux multiple k must be positive (%g given)", k)
	}
	return nil
}

// Design runs the full staging, reflux, hydraulic and mechanical
// design pipeline on the given feed streams.
func (d *Distillation) Design(feeds ...*thermo.Stream) (*DesignResult, error) {
	st, err := prepare(feeds, d.LightKey, d.HeavyKey, d.P, d.YTop, d.XBot)
	if err != nil {
		return nil, err
	}

	res := &DesignResult{
		Distillate: st.dist,
		Bottoms:    st.bot,
		Divided:    d.Divided,
	}

	part := st.part
	lk := st.species[part.LK]
	hk := st.species[part.HK]
	eq := lhkEquilibrium(lk, hk, d.P)

	// Feed quality and minimum reflux from the q-line pinch.
	lhkLiq := st.feedLiq[part.LK] + st.feedLiq[part.HK]
	lhkNet := lhkLiq + st.feedVap[part.LK] + st.feedVap[part.HK]
	zf := (st.feedLiq[part.LK] + st.feedVap[part.LK]) / lhkNet
	q := lhkLiq / lhkNet

	rx, err := minimumReflux(eq, q, zf, d.YTop)
	if err != nil {
		return nil, err
	}
	R := actualRatio(rx.Rmin, d.K)
	res.MinReflux = rx.Rmin
	res.Reflux = R
	res.ZF = zf
	res.Q = rx.Q

	// Rectifying operating line intersects the q-line with slope
	// R/(R+1).
	m1 := R / (R + 1)
	b1 := d.YTop - m1*d.YTop
	rs := func(y float64) float64 { return (y - b1) / m1 }

	ym := (rx.Q*b1 + m1*zf) / (rx.Q - m1*(rx.Q-1))
	xm := rs(ym)
	res.YM = ym
	res.XM = xm

	// Stripping operating line runs from the bottoms composition to
	// the intersection point.
	m2 := (d.XBot - ym) / (d.XBot - xm)
	b2 := ym - m2*xm
	ss := func(y float64) float64 { return (y - b2) / m2 }

	// Staircase: stripping section up to the intersection, then the
	// rectifying section up to the distillate spec.
	tr := &trace{X: []float64{d.XBot}, Y: []float64{d.XBot}}
	ok, err := staircase(eq, ss, tr, xm)
	if err != nil {
		return nil, err
	}
	if !ok {
		res.warnf("cannot meet specifications: stripping section needs more than %d stages", maxStairSteps)
	} else {
		yi := tr.Y[len(tr.Y)-1]
		xi := rs(yi)
		if xi >= 1 {
			xi = 0.99999
		}
		tr.X[len(tr.X)-1] = xi
		ok, err = staircase(eq, rs, tr, d.YTop)
		if err != nil {
			return nil, err
		}
		if !ok {
			res.warnf("cannot meet specifications: rectifying section needs more than %d stages", maxStairSteps)
		}
	}
	res.XStages = tr.X
	res.YStages = tr.Y
	res.TStages = tr.T

	// Theoretical feed stage: the stage straddling the operating-line
	// intersection.
	feedStage := len(tr.Y)
	found := false
	for i := 0; i < len(tr.Y)-1; i++ {
		if tr.Y[i] < ym && tr.Y[i+1] > ym {
			feedStage = i + 1
			found = true
		}
	}
	if !found {
		res.warnf("no stage straddles the feed line; feed stage defaulted to %d", feedStage)
	}
	stages := len(tr.X)
	res.TheoreticalStages = stages
	res.FeedStage = feedStage

	// Section efficiencies and actual stage counts.
	vapNet := st.dist.MolNet()
	LR := R * vapNet
	VR := (R + 1) * vapNet
	condensate := subsetStream(st.topSpecies, st.condFrac, LR, thermo.Liquid, st.dist.T, d.P)
	res.condensate = condensate

	var sumVap, sumLiq float64
	for i := range st.species {
		sumVap += st.feedVap[i]
		sumLiq += st.feedLiq[i]
	}
	VS := (R+1)*vapNet - sumVap
	LS := R*vapNet + sumLiq

	n := len(tr.X) - 1
	var eR, eS float64
	if d.stageEff > 0 {
		eR = d.stageEff
		eS = d.stageEff
	} else {
		alphaR := terminalAlpha(tr.X[n], tr.Y[n])
		eR = seader.MurphreeEfficiency(condensate.Mu(), alphaR, LR, VR)
		alphaS := terminalAlpha(tr.X[0], tr.Y[0])
		eS = seader.MurphreeEfficiency(st.bot.Mu(), alphaS, LS, VS)
	}
	res.RectifierEfficiency = eR
	res.StripperEfficiency = eS

	midStage := float64(feedStage) - 0.5
	nRect := actualStages(midStage, eR)
	nStrip := actualStages(float64(stages)-midStage, eS)

	// Rectifying section diameter from the top plate.
	rhoL := condensate.Rho()
	sigma := condensate.Sigma()
	Lmass := condensate.MassNet()
	Vmass := Lmass * (R + 1) / R
	vaporStream := st.dist.Copy()
	vaporStream.Scale(R + 1)
	Vvol := 0.0002778 * vaporStream.VolNet() // m3/h to m3/s
	rhoV := st.dist.Rho()
	hydR, err := d.sizeSection(Lmass, Vmass, rhoV, rhoL, sigma, Vvol)
	if err != nil {
		return nil, err
	}

	// Stripping section diameter from the feed plate.
	boilUp := subsetStream(st.botSpecies, st.boilFrac, VS, thermo.Vapor, st.bot.T, d.P)
	res.boilUp = boilUp
	rhoL = st.bot.Rho()
	rhoV = boilUp.Rho()
	Vmass = boilUp.MassNet()
	Vvol = 0.0002778 * boilUp.VolNet()
	Lmass = st.bot.MassNet()
	sigma = st.bot.Sigma()
	hydS, err := d.sizeSection(Lmass, Vmass, rhoV, rhoL, sigma, Vvol)
	if err != nil {
		return nil, err
	}

	Po := d.P / 101325 * 14.7 // Pa to psi

	if d.Divided {
		HR := seader.Height(d.ts, float64(nRect-1), true, true)
		HS := seader.Height(d.ts, float64(nStrip-1), true, true)
		tvR := seader.WallThickness(Po, hydR.Diameter, HR)
		tvS := seader.WallThickness(Po, hydS.Diameter, HS)
		res.Rectifier = SectionSize{
			Stages:        nRect,
			Diameter:      hydR.Diameter,
			Height:        HR,
			WallThickness: tvR,
			Weight:        seader.Weight(hydR.Diameter, HR, tvR, d.rhoM),
		}
		res.Stripper = SectionSize{
			Stages:        nStrip,
			Diameter:      hydS.Diameter,
			Height:        HS,
			WallThickness: tvS,
			Weight:        seader.Weight(hydS.Diameter, HS, tvS, d.rhoM),
		}
		res.checkBounds("rectifier", res.Rectifier.Diameter, res.Rectifier.Height, res.Rectifier.Weight)
		res.checkBounds("stripper", res.Stripper.Diameter, res.Stripper.Height, res.Stripper.Weight)
	} else {
		res.ActualStages = nRect + nStrip
		res.Height = seader.Height(d.ts, float64(nRect+nStrip-2), true, true)
		res.Diameter = math.Max(hydR.Diameter, hydS.Diameter)
		res.WallThickness = seader.WallThickness(Po, res.Diameter, res.Height)
		res.Weight = seader.Weight(res.Diameter, res.Height, res.WallThickness, d.rhoM)
		res.checkBounds("", res.Diameter, res.Height, res.Weight)
	}
	return res, nil
}

// Cost computes the purchased costs of trays, vessel(s), condenser
// and boiler for a completed design.
func (d *Distillation) Cost(res *DesignResult) (*CostResult, error) {
	if res == nil {
		return nil, fmt.Errorf("cost requires a completed design result")
	}
	cost := &CostResult{}

	if d.Divided {
		// Partial condenser: the top stage is not a tray.
		cost.RectifierTrays = d.costTrays(res.Rectifier.Stages-1, res.Rectifier.Diameter)
		cost.StripperTrays = d.costTrays(res.Stripper.Stages-1, res.Stripper.Diameter)
		cost.RectifierTower = d.costTower(res.Rectifier.Diameter, res.Rectifier.Height, res.Rectifier.Weight)
		cost.StripperTower = d.costTower(res.Stripper.Diameter, res.Stripper.Height, res.Stripper.Weight)
	} else {
		cost.Trays = d.costTrays(res.ActualStages-1, res.Diameter)
		cost.Tower = d.costTower(res.Diameter, res.Height, res.Weight)
	}

	condenser, err := hx.Condenser().Design(res.condensate, d.ce)
	if err != nil {
		return nil, fmt.Errorf("condenser: %w", err)
	}
	cost.Condenser = condenser.Cost

	boiler, err := hx.Boiler().Design(res.boilUp, d.ce)
	if err != nil {
		return nil, fmt.Errorf("boiler: %w", err)
	}
	cost.Boiler = boiler.Cost
	return cost, nil
}
