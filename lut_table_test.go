// lut_table_test.go - Table generation and formatting tests

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

// parseTableOutput splits emitted text into per-line slices of values.
func parseTableOutput(t *testing.T, out string) [][]uint64 {
	t.Helper()

	var lines [][]uint64
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		var vals []uint64
		for _, tok := range strings.Split(line, ", ") {
			if tok == "" {
				continue
			}
			if !strings.HasPrefix(tok, "0x") {
				t.Fatalf("literal %q missing 0x prefix", tok)
			}
			v, err := strconv.ParseUint(strings.TrimPrefix(tok, "0x"), 16, 64)
			if err != nil {
				t.Fatalf("unparseable literal %q: %v", tok, err)
			}
			vals = append(vals, v)
		}
		lines = append(lines, vals)
	}
	return lines
}

func TestVariantDFirstEntry(t *testing.T) {
	samples, err := VariantD.Build()
	if err != nil {
		t.Fatal(err)
	}
	// phi(0) = pi/2, sin = 1, round(1*(2^22-1)) = 0x3FFFFF
	if samples[0] != 0x3FFFFF {
		t.Errorf("variant D first sample = 0x%X, want 0x3FFFFF", samples[0])
	}

	out, err := VariantD.FormatTable()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "0x3FFFFF, ") {
		t.Errorf("variant D output starts %q, want literal 0x3FFFFF, ", out[:16])
	}
}

func TestVariantBMidpoint(t *testing.T) {
	samples, err := VariantB.Build()
	if err != nil {
		t.Fatal(err)
	}
	// phi(128) = pi/4, round(sin(pi/4)*2^16) = 46341 = 0xB505
	if samples[128] != 0xB505 {
		t.Errorf("variant B midpoint = 0x%X, want 0xB505", samples[128])
	}
}

func TestVariantCMatchesReferenceTable(t *testing.T) {
	samples, err := VariantC.Build()
	if err != nil {
		t.Fatal(err)
	}

	// Spot values from the reference UQ0.16 quarter wave table.
	want := map[int]uint32{
		0:   0x0000,
		1:   0x0192,
		64:  0x61F8,
		128: 0xB505,
		192: 0xEC83,
		255: 0xFFFF,
	}
	for i, v := range want {
		if samples[i] != v {
			t.Errorf("variant C sample[%d] = 0x%04X, want 0x%04X", i, samples[i], v)
		}
	}
}

func TestVariantAEndpoints(t *testing.T) {
	samples, err := VariantA.Build()
	if err != nil {
		t.Fatal(err)
	}
	if samples[0] != 0xFFFF {
		t.Errorf("variant A first sample = 0x%X, want 0xFFFF", samples[0])
	}
	// phi(255) = pi - pi/512, round(sin*65535) = 402
	if samples[255] != 0x0192 {
		t.Errorf("variant A last sample = 0x%X, want 0x0192", samples[255])
	}
}

func TestMonotonicity(t *testing.T) {
	cases := []struct {
		name   string
		spec   TableSpec
		rising bool
	}{
		{"A", VariantA, false},
		{"B", VariantB, true},
		{"C", VariantC, true},
		{"D", VariantD, false},
	}
	for _, tc := range cases {
		samples, err := tc.spec.Build()
		if err != nil {
			t.Fatalf("variant %s: %v", tc.name, err)
		}
		for i := 1; i < len(samples); i++ {
			if tc.rising && samples[i] < samples[i-1] {
				t.Fatalf("variant %s not non-decreasing at %d: 0x%X < 0x%X", tc.name, i, samples[i], samples[i-1])
			}
			if !tc.rising && samples[i] > samples[i-1] {
				t.Fatalf("variant %s not non-increasing at %d: 0x%X > 0x%X", tc.name, i, samples[i], samples[i-1])
			}
		}
	}
}

func TestLineStructure(t *testing.T) {
	out, err := VariantB.FormatTable()
	if err != nil {
		t.Fatal(err)
	}
	lines := parseTableOutput(t, out)
	if len(lines) != 32 {
		t.Fatalf("variant B emitted %d lines, want 32", len(lines))
	}
	total := 0
	for i, vals := range lines {
		if len(vals) != 8 {
			t.Errorf("line %d has %d entries, want 8", i, len(vals))
		}
		total += len(vals)
	}
	if total != VariantB.Entries {
		t.Errorf("emitted %d entries, want %d", total, VariantB.Entries)
	}

	// A ragged final line when N is not a multiple of L.
	spec := TableSpec{Entries: 10, Width: 8, PerLine: 8, Quadrant: QuadrantAscending, Scale: ScaleMaxCode}
	out, err = spec.FormatTable()
	if err != nil {
		t.Fatal(err)
	}
	lines = parseTableOutput(t, out)
	if len(lines) != 2 {
		t.Fatalf("ragged table emitted %d lines, want 2", len(lines))
	}
	if len(lines[0]) != 8 || len(lines[1]) != 2 {
		t.Errorf("ragged table line sizes %d/%d, want 8/2", len(lines[0]), len(lines[1]))
	}
}

func TestTrailingCommaSpace(t *testing.T) {
	out, err := VariantA.FormatTable()
	if err != nil {
		t.Fatal(err)
	}
	for i, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if !strings.HasSuffix(line, ", ") {
			t.Errorf("line %d does not end with comma-space: %q", i, line)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, spec := range []TableSpec{VariantA, VariantB, VariantC, VariantD} {
		samples, err := spec.Build()
		if err != nil {
			t.Fatal(err)
		}
		out, err := spec.FormatTable()
		if err != nil {
			t.Fatal(err)
		}

		limit := uint64(1) << uint(spec.Width)
		i := 0
		for _, vals := range parseTableOutput(t, out) {
			for _, v := range vals {
				if v >= limit {
					t.Fatalf("entry %d = 0x%X exceeds %d bits", i, v, spec.Width)
				}
				if v != uint64(samples[i]) {
					t.Fatalf("entry %d round-trips to 0x%X, built 0x%X", i, v, samples[i])
				}
				i++
			}
		}
		if i != spec.Entries {
			t.Errorf("round-tripped %d entries, want %d", i, spec.Entries)
		}
	}
}

// For N=256, W=16 no index rounds sin up to exactly 1.0, so saturate and
// wrap never fire and variants B and C must agree everywhere.
func TestWrapBranchUnreachableAt256x16(t *testing.T) {
	b, err := VariantB.Build()
	if err != nil {
		t.Fatal(err)
	}
	c, err := VariantC.Build()
	if err != nil {
		t.Fatal(err)
	}
	for i := range b {
		if b[i] != c[i] {
			t.Fatalf("saturate/wrap diverge at %d: 0x%X vs 0x%X", i, b[i], c[i])
		}
	}
}

// Forcing phi(0) = pi/2 with the 2^W unit scale makes sin round to exactly
// 2^W, exercising both overflow branches.
func TestSyntheticOverflow(t *testing.T) {
	spec := TableSpec{
		Entries:  4,
		Width:    16,
		PerLine:  4,
		Quadrant: QuadrantDescending,
		Scale:    ScaleUnit,
		Overflow: OverflowWrap,
	}
	samples, err := spec.Build()
	if err != nil {
		t.Fatal(err)
	}
	if samples[0] != 0 {
		t.Errorf("wrap policy: sample[0] = 0x%X, want 0 (1.0 aliased to 0.0)", samples[0])
	}

	spec.Overflow = OverflowSaturate
	samples, err = spec.Build()
	if err != nil {
		t.Fatal(err)
	}
	if samples[0] != 0xFFFF {
		t.Errorf("saturate policy: sample[0] = 0x%X, want 0xFFFF", samples[0])
	}
}

func TestValidate(t *testing.T) {
	bad := []TableSpec{
		{Entries: 0, Width: 16, PerLine: 8},
		{Entries: -4, Width: 16, PerLine: 8},
		{Entries: 256, Width: 0, PerLine: 8},
		{Entries: 256, Width: 33, PerLine: 8},
		{Entries: 256, Width: 16, PerLine: 0},
		{Entries: 4, Width: 16, PerLine: 8},
	}
	for i, spec := range bad {
		if _, err := spec.Build(); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("case %d: got %v, want ErrInvalidParameter", i, err)
		}
	}

	if err := VariantD.Validate(); err != nil {
		t.Errorf("variant D should validate, got %v", err)
	}
}

func TestHexDigits(t *testing.T) {
	cases := []struct{ width, digits int }{
		{16, 4}, {22, 6}, {8, 2}, {1, 1}, {32, 8},
	}
	for _, tc := range cases {
		spec := TableSpec{Width: tc.width}
		if got := spec.HexDigits(); got != tc.digits {
			t.Errorf("width %d: %d hex digits, want %d", tc.width, got, tc.digits)
		}
	}
}

func TestVariantByName(t *testing.T) {
	for _, name := range []string{"A", "b", "C", "d"} {
		if _, err := VariantByName(name); err != nil {
			t.Errorf("variant %q rejected: %v", name, err)
		}
	}
	if _, err := VariantByName("E"); err == nil {
		t.Error("variant E accepted, want error")
	}
}
