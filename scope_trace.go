// scope_trace.go - Trace construction shared by the scope backends

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

// tracePeriod renders one full period of a postprocessed generator at the
// given frequency multiple, normalized to [-1; 1].
func tracePeriod(freq uint32, att UQ016) []float32 {
	g, err := NewSineGen(freq)
	if err != nil {
		return nil
	}
	g.SetAtt(att)
	g.SetPostproc(true)

	n := PhaseSpan / int(freq)
	if n < 2 {
		n = 2
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(g.Next()) / float32(1<<sq015Frac)
	}
	return out
}

// tableTrace normalizes quantized table samples to [0; 1] for display.
func tableTrace(samples []uint32, width int) []float32 {
	out := make([]float32, len(samples))
	scale := float32(uint64(1) << uint(width))
	for i, v := range samples {
		out[i] = float32(v) / scale
	}
	return out
}
