//go:build !headless

// clipboard_export.go - System clipboard export of the emitted table

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import (
	"errors"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

// copyToClipboard puts the exact table text on the system clipboard so it
// can be pasted into the consumer's array literal without re-running the
// tool. Init is attempted once; on systems without a clipboard (no display,
// missing X11) it degrades to an error.
func copyToClipboard(text string) error {
	clipboardOnce.Do(func() {
		clipboardOK = clipboard.Init() == nil
	})
	if !clipboardOK {
		return errors.New("clipboard unavailable")
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
