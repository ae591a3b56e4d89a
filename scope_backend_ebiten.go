//go:build !headless

// scope_backend_ebiten.go - Ebiten waveform scope window

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	scopeWidth  = 640
	scopeHeight = 480
)

var (
	scopeTraceColor = color.RGBA{0x00, 0xE0, 0x40, 0xFF}
	scopeAxisColor  = color.RGBA{0x40, 0x40, 0x40, 0xFF}
	scopeTextColor  = color.RGBA{0xE0, 0xE0, 0xE0, 0xFF}
)

// ScopeWindow plots a normalized sample trace in [-1; 1]. When a sound
// output is attached the arrow keys double/halve the generator frequency
// and the trace is rebuilt from the new period. Q or Escape closes it.
type ScopeWindow struct {
	samples []float32
	title   string
	output  SoundOutput
	freq    uint32
	att     UQ016
}

func (sw *ScopeWindow) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if sw.output != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			sw.adjustFreq(sw.freq * 2)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			sw.adjustFreq(sw.freq / 2)
		}
	}
	return nil
}

func (sw *ScopeWindow) adjustFreq(k uint32) {
	if k < FreqMin || k > FreqMax {
		return
	}
	if err := sw.output.SetFreq(k); err != nil {
		return
	}
	sw.freq = k
	sw.samples = tracePeriod(k, sw.att)
}

func (sw *ScopeWindow) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	mid := float64(scopeHeight) / 2
	ebitenutil.DrawLine(screen, 0, mid, scopeWidth, mid, scopeAxisColor)

	if n := len(sw.samples); n > 1 {
		for i := 1; i < n; i++ {
			x0 := float64(i-1) * scopeWidth / float64(n-1)
			x1 := float64(i) * scopeWidth / float64(n-1)
			y0 := mid - float64(sw.samples[i-1])*(mid-20)
			y1 := mid - float64(sw.samples[i])*(mid-20)
			ebitenutil.DrawLine(screen, x0, y0, x1, y1, scopeTraceColor)
		}
	}

	label := sw.title
	if sw.output != nil {
		label = fmt.Sprintf("%s | %d Hz | arrows: octave, q: quit", sw.title, sw.freq<<FreqStepOrder)
	}
	text.Draw(screen, label, basicfont.Face7x13, 8, 16, scopeTextColor)
}

func (sw *ScopeWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scopeWidth, scopeHeight
}

// RunScope opens the scope window and blocks until it is closed. Must be
// called from the main goroutine.
func RunScope(samples []float32, title string, out SoundOutput, freq uint32, att UQ016) error {
	sw := &ScopeWindow{
		samples: samples,
		title:   title,
		output:  out,
		freq:    freq,
		att:     att,
	}
	ebiten.SetWindowSize(scopeWidth, scopeHeight)
	ebiten.SetWindowTitle("sinetable scope")
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(sw)
}
