package thermo

import (
	"fmt"
	"math"
)

// R is the universal gas constant (J/(kmol*K)).
const R = 8314.462

// Phase identifies the phase of a process stream.
type Phase int

const (
	Liquid Phase = iota
	Vapor
	Solid
	TwoPhase
)

// ParsePhase converts a phase name from a feed file.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "liquid", "l":
		return Liquid, nil
	case "vapor", "gas", "g":
		return Vapor, nil
	case "solid", "s":
		return Solid, nil
	case "two-phase", "mixed":
		return TwoPhase, nil
	}
	return 0, fmt.Errorf("invalid phase %q, must be one of: liquid, vapor, solid, two-phase", s)
}

func (p Phase) String() string {
	switch p {
	case Liquid:
		return "liquid"
	case Vapor:
		return "vapor"
	case Solid:
		return "solid"
	case TwoPhase:
		return "two-phase"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Stream is a process stream: a molar flow vector over a fixed species
// slice at a temperature and pressure. Single-phase streams use Mol;
// two-phase streams carry separate liquid and vapor vectors.
type Stream struct {
	Species []*Species
	Phase   Phase

	Mol       []float64 // kmol/h, single-phase
	LiquidMol []float64 // kmol/h, two-phase only
	VaporMol  []float64 // kmol/h, two-phase only

	T float64 // K
	P float64 // Pa
}

// NewStream creates a single-phase stream with zero flow.
func NewStream(species []*Species, phase Phase, T, P float64) *Stream {
	return &Stream{
		Species: species,
		Phase:   phase,
		Mol:     make([]float64, len(species)),
		T:       T,
		P:       P,
	}
}

// Copy returns a deep copy of the stream.
func (s *Stream) Copy() *Stream {
	c := *s
	c.Mol = append([]float64(nil), s.Mol...)
	c.LiquidMol = append([]float64(nil), s.LiquidMol...)
	c.VaporMol = append([]float64(nil), s.VaporMol...)
	return &c
}

// Scale multiplies all molar flows by f.
func (s *Stream) Scale(f float64) {
	for i := range s.Mol {
		s.Mol[i] *= f
	}
	for i := range s.LiquidMol {
		s.LiquidMol[i] *= f
	}
	for i := range s.VaporMol {
		s.VaporMol[i] *= f
	}
}

// mol returns the total per-component molar flow regardless of phase split.
func (s *Stream) mol(i int) float64 {
	if s.Phase == TwoPhase {
		return s.LiquidMol[i] + s.VaporMol[i]
	}
	return s.Mol[i]
}

// MolNet returns the total molar flow (kmol/h).
func (s *Stream) MolNet() float64 {
	var n float64
	for i := range s.Species {
		n += s.mol(i)
	}
	return n
}

// MassNet returns the total mass flow (kg/h).
func (s *Stream) MassNet() float64 {
	var m float64
	for i, sp := range s.Species {
		m += s.mol(i) * sp.MW
	}
	return m
}

// MolFrac returns the overall mole fraction vector.
func (s *Stream) MolFrac() []float64 {
	n := s.MolNet()
	x := make([]float64, len(s.Species))
	if n == 0 {
		return x
	}
	for i := range s.Species {
		x[i] = s.mol(i) / n
	}
	return x
}

// VolNet returns the volumetric flow (m3/h). Vapor follows the ideal gas
// law; liquid uses pure-component molar volumes.
func (s *Stream) VolNet() float64 {
	liq, vap := s.phaseSplit()
	var v float64
	var vapMol float64
	for i, sp := range s.Species {
		v += liq[i] * sp.MW / sp.RhoL
		vapMol += vap[i]
	}
	v += vapMol * R * s.T / s.P
	return v
}

// Rho returns the bulk mass density (kg/m3).
func (s *Stream) Rho() float64 {
	v := s.VolNet()
	if v == 0 {
		return 0
	}
	return s.MassNet() / v
}

// Mu returns the liquid viscosity (cP) by logarithmic mole-fraction
// mixing over the liquid portion of the stream.
func (s *Stream) Mu() float64 {
	liq, _ := s.phaseSplit()
	var n float64
	for i := range s.Species {
		n += liq[i]
	}
	if n == 0 {
		return 0
	}
	var lg float64
	for i, sp := range s.Species {
		if liq[i] == 0 {
			continue
		}
		lg += liq[i] / n * math.Log10(sp.Mu(s.T))
	}
	return math.Pow(10, lg)
}

// Sigma returns the surface tension (dyn/cm) as a mole-fraction average
// over the liquid portion of the stream.
func (s *Stream) Sigma() float64 {
	liq, _ := s.phaseSplit()
	var n, sig float64
	for i := range s.Species {
		n += liq[i]
	}
	if n == 0 {
		return 0
	}
	for i, sp := range s.Species {
		sig += liq[i] / n * sp.Sigma
	}
	return sig
}

// phaseSplit returns the liquid and vapor molar flow vectors.
func (s *Stream) phaseSplit() (liq, vap []float64) {
	n := len(s.Species)
	switch s.Phase {
	case TwoPhase:
		return s.LiquidMol, s.VaporMol
	case Vapor:
		return make([]float64, n), s.Mol
	default:
		return s.Mol, make([]float64, n)
	}
}
