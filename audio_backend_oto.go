//go:build !headless

// audio_backend_oto.go - OTO v3 audio output implementation

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer streams generator samples to the default audio device as
// float32 mono. The generator is single threaded, so the oto reader
// goroutine and control calls share a mutex.
type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	gen     *SineGen
	started bool
	mutex   sync.Mutex
}

// NewSoundOutput opens the audio device at the generator sample rate.
func NewSoundOutput() (SoundOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRateHz,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{ctx: ctx}, nil
}

func (op *OtoPlayer) SetGenerator(g *SineGen) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.gen = g
	if op.player == nil {
		op.player = op.ctx.NewPlayer(op)
	}
}

// Read fills p with little-endian float32 samples pulled from the
// generator. Called by oto from its own goroutine.
func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.gen == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numSamples := len(p) / 4
	for i := 0; i < numSamples; i++ {
		s := float32(op.gen.Next()) / float32(1<<sq015Frac)
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return numSamples * 4, nil
}

func (op *OtoPlayer) SetFreq(k uint32) error {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.gen == nil {
		return ErrInvalidParameter
	}
	return op.gen.SetFreq(k)
}

func (op *OtoPlayer) Start() error {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
	return nil
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Pause()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
