// fixed_trig.go - LUT based sine on fixed point phase

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

// Phase landmarks as UQ0.16 codes. The full circle [0; 2*pi) maps onto
// [0.0; 1.0), so pi/2 is the code for 0.25 and so on.
const (
	phasePi2  UQ016 = 0x4000
	phasePi   UQ016 = 0x8000
	phase3Pi2 UQ016 = 0xC000
)

const (
	quarterLUTRank = 8                   // log2 of the LUT entry count
	quarterLUTSize = 1 << quarterLUTRank // 256 entries over [0; pi/2)
	// Number of distinct first-quadrant phase codes between adjacent knots.
	quarterCoefBits = uq016Frac - 2 - quarterLUTRank
	quarterCoefMask = 1<<quarterCoefBits - 1
)

// quarterLUT holds sin(phi) for phi swept over the first quadrant, stored as
// UQ0.16 with 2^16 as one unit (1.0 aliases to 0, which the ascending
// quarter never produces). Populated from the wrap-policy table preset so
// the LUT generator and the trig path share one quantization.
var quarterLUT [quarterLUTSize]UQ016

func init() {
	samples, err := VariantC.Build()
	if err != nil {
		panic(err)
	}
	for i, v := range samples {
		quarterLUT[i] = UQ016(v)
	}
}

// sinQuarterUQ016 returns sin(phi) for phi in the first quadrant, i.e. a
// UQ0.16 phase code below 0x4000 covering [0; pi/2) radians. The result is
// UQ0.16 in [0; 1) with linear interpolation between LUT knots. The virtual
// knot at index 256 is sin(pi/2) = 1.0 = 0x0000 modulo 1.0; multiplying by
// 1.0 degenerates to taking the interpolation coefficient itself.
func sinQuarterUQ016(phi UQ016) UQ016 {
	key0 := uint8(phi >> quarterCoefBits)
	coef := (phi & quarterCoefMask) << (uq016Frac - quarterCoefBits)

	if coef == 0 {
		return quarterLUT[key0]
	}

	key1 := key0 + 1 // wraps to 0 past the last knot
	var val1 UQ016
	if key1 == 0 {
		val1 = coef
	} else {
		val1 = MulUQ016(quarterLUT[key1], coef)
	}
	val0 := MulUQ016(quarterLUT[key0], -coef) // -coef is 1.0-coef modulo 1.0
	return val0 + val1
}

// modSin returns sin(phi) attenuated by (1-att), as SQ0.15. The phase code
// covers the whole circle; quadrant folding reduces it to the LUT domain.
// When round is set the UQ0.16 magnitude is rounded to nearest while
// narrowing to SQ0.15, otherwise the low bit is truncated away.
func modSin(phi, att UQ016, round bool) SQ015 {
	const onePos = SQ015(0x7FFF) // +1.0 - 1/2^15
	const oneNeg = SQ015(-0x8000)

	switch phi {
	case phasePi2:
		if att == 0 {
			return onePos
		}
		return SQ015FromUQ016(-att) // 1.0 - att modulo 1.0
	case phase3Pi2:
		if att == 0 {
			return oneNeg
		}
		return -SQ015FromUQ016(-att)
	}

	phi1 := phi
	neg := false
	if phi >= phasePi {
		phi1 -= phasePi
		neg = true
	}
	if phi1 > phasePi2 {
		phi1 = phasePi - phi1
	}

	usin := sinQuarterUQ016(phi1)
	if att > 0 {
		usin = MulUQ016(usin, -att)
	}

	lsb := usin&1 == 1
	ssin := SQ015FromUQ016(usin)
	if round && lsb && ssin < onePos {
		ssin++
	}

	if neg {
		return -ssin
	}
	return ssin
}

// ModSinSQ015 returns sin(phi) attenuated by (1-att) with round-to-nearest
// narrowing, matching the generator's postprocessed output path.
func ModSinSQ015(phi, att UQ016) SQ015 {
	return modSin(phi, att, true)
}
