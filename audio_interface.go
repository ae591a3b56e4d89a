// audio_interface.go - Audio output abstraction

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

// SoundOutput streams a SineGen to an audio device. The concrete backend is
// chosen at build time: oto for normal builds, a null sink under the
// headless tag.
type SoundOutput interface {
	// SetGenerator attaches the generator the stream pulls samples from.
	SetGenerator(g *SineGen)
	// Start begins playback. Safe to call more than once.
	Start() error
	// Stop ends playback; the output may be started again.
	Stop()
	// Close releases the device.
	Close()
	// IsStarted reports whether playback is running.
	IsStarted() bool
	// SetFreq forwards a frequency change to the attached generator under
	// the stream lock.
	SetFreq(k uint32) error
}
