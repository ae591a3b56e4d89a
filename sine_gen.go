// sine_gen.go - Phase accumulator sine generator

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import "fmt"

// The generator advances a UQ0.16 phase accumulator once per sample tick.
// With the frequency step order Ks the sample rate is Fs = 2^16 * 2^Ks Hz
// and a frequency multiple k produces Fo = k * 2^Ks Hz. At k=1 one full
// period takes exactly 2^16 ticks; the phase increment per tick numerically
// equals k regardless of Fs.
const (
	PhaseSpan     = 1 << uq016Frac // phase codes per full circle, Ps
	FreqStepOrder = 0              // Ks: frequency series step is 2^Ks Hz
	SampleRateHz  = PhaseSpan << FreqStepOrder
	FreqMin       = 1 << FreqStepOrder
	FreqMax       = SampleRateHz / 2 // Nyquist
)

// SineGen is a numerically controlled sine oscillator. Zero value: phase 0,
// no attenuation, postprocessing off, frequency unset (FreqMin is the lowest
// valid setting).
type SineGen struct {
	freq    uint32 // phase increment per tick, equals the frequency multiple k
	phase   UQ016  // momentary phase, wraps modulo 1.0
	att     UQ016  // attenuation: output amplitude is (1-att)
	postpro bool   // round-to-nearest on the SQ0.15 narrowing
}

// NewSineGen returns a generator running at the given frequency multiple.
func NewSineGen(freq uint32) (*SineGen, error) {
	g := &SineGen{}
	if err := g.SetFreq(freq); err != nil {
		return nil, err
	}
	return g, nil
}

// SetFreq sets the frequency multiple k, effective from the next tick.
// Changing k mid-run keeps the output phase correct.
func (g *SineGen) SetFreq(k uint32) error {
	if k < FreqMin || k > FreqMax {
		return fmt.Errorf("%w: frequency multiple %d outside [%d; %d]", ErrInvalidParameter, k, FreqMin, FreqMax)
	}
	g.freq = k
	return nil
}

// Freq returns the current frequency multiple.
func (g *SineGen) Freq() uint32 { return g.freq }

// SetPhase sets the momentary phase code.
func (g *SineGen) SetPhase(phi UQ016) { g.phase = phi }

// Phase returns the momentary phase code.
func (g *SineGen) Phase() UQ016 { return g.phase }

// SetAtt sets the attenuation factor; the output amplitude becomes (1-att).
func (g *SineGen) SetAtt(att UQ016) { g.att = att }

// SetPostproc enables round-to-nearest narrowing of the output sample.
func (g *SineGen) SetPostproc(on bool) { g.postpro = on }

// Output returns the sample for the current phase without advancing it.
func (g *SineGen) Output() SQ015 {
	return modSin(g.phase, g.att, g.postpro)
}

// Step advances the phase by one tick, wrapping modulo one full circle.
func (g *SineGen) Step() {
	g.phase += UQ016(g.freq)
}

// Next returns the current sample and advances the phase.
func (g *SineGen) Next() SQ015 {
	out := g.Output()
	g.Step()
	return out
}
