package cmd

import (
	"github.com/chemetools/gocolumn/internal/column"
	"github.com/chemetools/gocolumn/internal/diagram"
	"github.com/chemetools/gocolumn/internal/thermo"
)

// equilibriumCurvePoints is the sampling resolution of the diagram's
// equilibrium curve.
const equilibriumCurvePoints = 100

// mccabeData samples the key-pair equilibrium curve and assembles the
// diagram input from a finished design.
func mccabeData(res *column.DesignResult, lightKey, heavyKey string, P, yTop, xBot float64, stripper bool) (diagram.McCabeThieleData, error) {
	data := diagram.McCabeThieleData{
		LightKey:   lightKey,
		XStages:    res.XStages,
		YStages:    res.YStages,
		XBot:       xBot,
		YTop:       yTop,
		ZF:         res.ZF,
		XM:         res.XM,
		YM:         res.YM,
		Stages:     res.TheoreticalStages,
		FeedStage:  res.FeedStage,
		IsStripper: stripper,
	}
	if stripper {
		data.Rmin = res.MinBoilUp
		data.R = res.BoilUp
	} else {
		data.Rmin = res.MinReflux
		data.R = res.Reflux
	}

	light, err := thermo.Lookup(lightKey)
	if err != nil {
		return data, err
	}
	heavy, err := thermo.Lookup(heavyKey)
	if err != nil {
		return data, err
	}
	pair := []*thermo.Species{light, heavy}

	n := equilibriumCurvePoints
	data.XEq = make([]float64, n)
	data.YEq = make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		_, y, err := thermo.BubblePoint(pair, []float64{x, 1 - x}, P)
		if err != nil {
			return data, err
		}
		data.XEq[i] = x
		data.YEq[i] = y[0]
	}
	return data, nil
}
