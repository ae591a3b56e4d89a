// lut_constants.go - Table variant tags, overflow policies and preset table specs

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import "fmt"

// Quadrant selects which quarter of the sine period the table samples.
type Quadrant int

const (
	// QuadrantAscending sweeps phi = (i/N)*pi/2, sin rising from 0 towards 1.
	QuadrantAscending Quadrant = iota
	// QuadrantDescending sweeps phi = (1+i/N)*pi/2, sin falling from 1 to 0.
	QuadrantDescending
)

// ScaleConvention selects the fixed point unit used for quantization.
type ScaleConvention int

const (
	// ScaleMaxCode quantizes with round(sin*(2^W-1)); full scale is the
	// largest representable code, the value 1.0 is representable as 2^W-1.
	ScaleMaxCode ScaleConvention = iota
	// ScaleUnit quantizes with round(sin*2^W); the value 1.0 maps to 2^W,
	// which does not fit in W bits and must be handled by an overflow policy.
	ScaleUnit
)

// OverflowPolicy decides what happens when the quantized value reaches 2^W.
type OverflowPolicy int

const (
	// OverflowNone performs no handling; only valid when the scale
	// convention guarantees in-range results.
	OverflowNone OverflowPolicy = iota
	// OverflowSaturate clamps to 2^W-1.
	OverflowSaturate
	// OverflowWrap aliases 2^W to 0, treating the code as a value modulo 1.0.
	OverflowWrap
)

// Default table geometry shared by the 16-bit presets.
const (
	defaultEntries = 256
	defaultWidth   = 16
	defaultPerLine = 8
)

// Preset table specs. Each one reproduces a distinct quantization convention;
// they are deliberately not interchangeable.
var (
	// VariantA samples the descending quarter with 2^W-1 as full scale.
	VariantA = TableSpec{
		Entries:  defaultEntries,
		Width:    defaultWidth,
		PerLine:  defaultPerLine,
		Quadrant: QuadrantDescending,
		Scale:    ScaleMaxCode,
		Overflow: OverflowNone,
	}

	// VariantB samples the ascending quarter with 2^W as one unit,
	// saturating where sin rounds to exactly 1.0.
	VariantB = TableSpec{
		Entries:  defaultEntries,
		Width:    defaultWidth,
		PerLine:  defaultPerLine,
		Quadrant: QuadrantAscending,
		Scale:    ScaleUnit,
		Overflow: OverflowSaturate,
	}

	// VariantC is VariantB with wrap-to-zero overflow, for consumers that
	// treat the stored code as a value modulo 1.0.
	VariantC = TableSpec{
		Entries:  defaultEntries,
		Width:    defaultWidth,
		PerLine:  defaultPerLine,
		Quadrant: QuadrantAscending,
		Scale:    ScaleUnit,
		Overflow: OverflowWrap,
	}

	// VariantD is the high resolution descending table: 1024 entries, 22 bits.
	VariantD = TableSpec{
		Entries:  1024,
		Width:    22,
		PerLine:  defaultPerLine,
		Quadrant: QuadrantDescending,
		Scale:    ScaleMaxCode,
		Overflow: OverflowNone,
	}
)

// VariantByName resolves a preset tag as given on the command line.
func VariantByName(name string) (TableSpec, error) {
	switch name {
	case "A", "a":
		return VariantA, nil
	case "B", "b":
		return VariantB, nil
	case "C", "c":
		return VariantC, nil
	case "D", "d":
		return VariantD, nil
	}
	return TableSpec{}, fmt.Errorf("unknown table variant %q (want A, B, C or D)", name)
}
