// lut_table.go - Quarter wave sine LUT generation and hex formatting

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// ErrInvalidParameter is wrapped by every TableSpec validation failure.
var ErrInvalidParameter = errors.New("invalid table parameter")

// TableSpec describes one quantized quarter wave sine table.
type TableSpec struct {
	Entries  int // number of samples, N
	Width    int // bits per stored sample, W
	PerLine  int // samples per printed line, L
	Quadrant Quadrant
	Scale    ScaleConvention
	Overflow OverflowPolicy
}

// Validate rejects geometries the generator cannot format cleanly.
func (s TableSpec) Validate() error {
	if s.Entries <= 0 {
		return fmt.Errorf("%w: entries must be positive, got %d", ErrInvalidParameter, s.Entries)
	}
	if s.Width <= 0 || s.Width > 32 {
		return fmt.Errorf("%w: width must be in 1..32, got %d", ErrInvalidParameter, s.Width)
	}
	if s.PerLine <= 0 {
		return fmt.Errorf("%w: per-line count must be positive, got %d", ErrInvalidParameter, s.PerLine)
	}
	if s.PerLine > s.Entries {
		return fmt.Errorf("%w: per-line count %d exceeds entry count %d", ErrInvalidParameter, s.PerLine, s.Entries)
	}
	return nil
}

// phase returns phi(i) in radians for sample index i.
func (s TableSpec) phase(i int) float64 {
	phi := float64(i) / float64(s.Entries) * (math.Pi / 2)
	if s.Quadrant == QuadrantDescending {
		phi += math.Pi / 2
	}
	return phi
}

// scale returns the fixed point unit the sine value is multiplied by.
func (s TableSpec) scale() float64 {
	if s.Scale == ScaleUnit {
		return float64(uint64(1) << uint(s.Width))
	}
	return float64(uint64(1)<<uint(s.Width)) - 1
}

// Build computes the N quantized samples. Every returned value fits in
// Width bits; how the unrepresentable 1.0 is handled depends on the
// overflow policy.
func (s TableSpec) Build() ([]uint32, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	limit := uint64(1) << uint(s.Width)
	samples := make([]uint32, s.Entries)
	for i := range samples {
		v := uint64(math.Round(math.Sin(s.phase(i)) * s.scale()))
		if v >= limit {
			switch s.Overflow {
			case OverflowSaturate:
				v = limit - 1
			case OverflowWrap:
				v -= limit
			}
		}
		samples[i] = uint32(v)
	}
	return samples, nil
}

// HexDigits returns the zero-padded width of one emitted literal.
func (s TableSpec) HexDigits() int {
	return (s.Width + 3) / 4
}

// WriteTable builds the table and writes it as lines of PerLine hex
// literals, each literal followed by ", ". No surrounding brackets are
// emitted; the output is meant to be pasted into an array literal.
func (s TableSpec) WriteTable(w io.Writer) error {
	samples, err := s.Build()
	if err != nil {
		return err
	}

	digits := s.HexDigits()
	var line strings.Builder
	for i, v := range samples {
		fmt.Fprintf(&line, "0x%0*X, ", digits, v)
		if (i+1)%s.PerLine == 0 || i == len(samples)-1 {
			if _, err := fmt.Fprintln(w, line.String()); err != nil {
				return err
			}
			line.Reset()
		}
	}
	return nil
}

// FormatTable returns the emitted table as a string, e.g. for the
// clipboard export path.
func (s TableSpec) FormatTable() (string, error) {
	var sb strings.Builder
	if err := s.WriteTable(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
