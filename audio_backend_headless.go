//go:build headless

// audio_backend_headless.go - Null audio output for headless builds

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import "sync"

// HeadlessPlayer satisfies SoundOutput without touching any audio device.
// Frequency control still reaches the attached generator.
type HeadlessPlayer struct {
	gen     *SineGen
	started bool
	mutex   sync.Mutex
}

// NewSoundOutput returns the null audio backend.
func NewSoundOutput() (SoundOutput, error) {
	return &HeadlessPlayer{}, nil
}

func (hp *HeadlessPlayer) SetGenerator(g *SineGen) {
	hp.mutex.Lock()
	defer hp.mutex.Unlock()
	hp.gen = g
}

func (hp *HeadlessPlayer) SetFreq(k uint32) error {
	hp.mutex.Lock()
	defer hp.mutex.Unlock()

	if hp.gen == nil {
		return ErrInvalidParameter
	}
	return hp.gen.SetFreq(k)
}

func (hp *HeadlessPlayer) Start() error {
	hp.mutex.Lock()
	defer hp.mutex.Unlock()
	hp.started = true
	return nil
}

func (hp *HeadlessPlayer) Stop() {
	hp.mutex.Lock()
	defer hp.mutex.Unlock()
	hp.started = false
}

func (hp *HeadlessPlayer) Close() {
	hp.Stop()
}

func (hp *HeadlessPlayer) IsStarted() bool {
	hp.mutex.Lock()
	defer hp.mutex.Unlock()
	return hp.started
}
