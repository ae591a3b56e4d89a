// fixed_point.go - Fixed point container types and conversions

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

// Fixed point notation: SQm.n is signed with 1 sign bit, m integer bits and
// n fractional bits; UQm.n is unsigned with m integer bits and n fractional
// bits. All types here have zero integer bits, so they cover [0; 1) unsigned
// and [-1; +1) signed. Each type is carried in the narrowest host integer
// that fits it; for the 22-bit types the unused high container bits are kept
// zero (unsigned) or propagate the sign (signed).
type (
	// UQ016 holds an unsigned fraction in [0; 1-1/2^16], resolution 1/2^16.
	UQ016 uint16
	// SQ015 holds a signed fraction in [-1; 1-1/2^15], resolution 1/2^15.
	SQ015 int16
	// UQ022 holds an unsigned fraction in [0; 1-1/2^22], resolution 1/2^22.
	UQ022 uint32
	// SQ021 holds a signed fraction in [-1; 1-1/2^21], resolution 1/2^21.
	SQ021 int32
)

// Fractional bit counts.
const (
	uq016Frac = 16
	sq015Frac = 15
	uq022Frac = 22
	sq021Frac = 21
)

// Width conversions preserve signedness. Widening shifts left and pads with
// zero bits on the right; narrowing shifts right, dropping the low bits.

// UQ022FromUQ016 widens a UQ0.16 value to UQ0.22.
func UQ022FromUQ016(x UQ016) UQ022 {
	return UQ022(x) << (uq022Frac - uq016Frac)
}

// UQ016FromUQ022 narrows a UQ0.22 value to UQ0.16, truncating.
func UQ016FromUQ022(x UQ022) UQ016 {
	return UQ016(x >> (uq022Frac - uq016Frac))
}

// SQ021FromSQ015 widens an SQ0.15 value to SQ0.21.
func SQ021FromSQ015(x SQ015) SQ021 {
	return SQ021(x) << (sq021Frac - sq015Frac)
}

// SQ015FromSQ021 narrows an SQ0.21 value to SQ0.15, truncating towards
// negative infinity (arithmetic shift).
func SQ015FromSQ021(x SQ021) SQ015 {
	return SQ015(x >> (sq021Frac - sq015Frac))
}

// Signedness conversions preserve the total width, trading one numeric bit
// for the sign bit.

// UQ016FromSQ015 converts a nonnegative SQ0.15 value to UQ0.16. The sign
// bit is rejected and one zero bit is padded on the right. Negative inputs
// are not representable and must not be passed.
func UQ016FromSQ015(x SQ015) UQ016 {
	return UQ016(x) << (uq016Frac - sq015Frac)
}

// SQ015FromUQ016 converts a UQ0.16 value to SQ0.15, dropping the least
// significant bit and halving the resolution.
func SQ015FromUQ016(x UQ016) SQ015 {
	return SQ015(x >> (uq016Frac - sq015Frac))
}

// UQ022FromSQ021 converts a nonnegative SQ0.21 value to UQ0.22.
func UQ022FromSQ021(x SQ021) UQ022 {
	return UQ022(x) << (uq022Frac - sq021Frac)
}

// SQ021FromUQ022 converts a UQ0.22 value to SQ0.21, dropping the least
// significant bit.
func SQ021FromUQ022(x UQ022) SQ021 {
	return SQ021(x >> (uq022Frac - sq021Frac))
}

// MulUQ016 returns the product of two UQ0.16 values, truncated towards zero
// to UQ0.16 resolution.
func MulUQ016(a, b UQ016) UQ016 {
	return UQ016((uint32(a) * uint32(b)) >> uq016Frac)
}
