//go:build headless

// clipboard_export_headless.go - Clipboard stub for headless builds

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import "errors"

func copyToClipboard(text string) error {
	return errors.New("clipboard not available in headless build")
}
