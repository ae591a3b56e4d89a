//go:build headless

// scope_backend_headless.go - Scope stub for headless builds

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import "errors"

// RunScope is unavailable without a display backend.
func RunScope(samples []float32, title string, out SoundOutput, freq uint32, att UQ016) error {
	return errors.New("scope not available in headless build")
}
