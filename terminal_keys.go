// terminal_keys.go - Raw mode key input for interactive audition

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// KeyReader puts stdin into raw mode and delivers single key bytes on a
// channel. Only instantiated for interactive audition — never in tests.
type KeyReader struct {
	keys         chan byte
	stopped      sync.Once
	fd           int
	oldTermState *term.State
}

// NewKeyReader switches stdin to raw mode and starts the reader goroutine.
// Callers must Stop it to restore the terminal.
func NewKeyReader() (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	kr := &KeyReader{
		keys:         make(chan byte, 8),
		fd:           fd,
		oldTermState: oldState,
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(kr.keys)
				return
			}
			if n > 0 {
				b := buf[0]
				// Raw mode sends CR for Enter.
				if b == '\r' {
					b = '\n'
				}
				kr.keys <- b
			}
		}
	}()

	return kr, nil
}

// Keys returns the channel of key bytes.
func (kr *KeyReader) Keys() <-chan byte {
	return kr.keys
}

// Stop restores the terminal state. The reader goroutine exits with the
// process; stdin has no portable interruptible read.
func (kr *KeyReader) Stop() {
	kr.stopped.Do(func() {
		if kr.oldTermState != nil {
			_ = term.Restore(kr.fd, kr.oldTermState)
		}
	})
}
