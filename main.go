// main.go - Command line entry point

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"os"
)

func usage() {
	fmt.Fprintf(os.Stderr, "sinetable - quarter wave sine LUT generator and fixed point sine synth\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  sinetable [flags]                 print the quantized table to stdout\n")
	fmt.Fprintf(os.Stderr, "  sinetable -csv FILE [flags]       trace two generators to a CSV file\n")
	fmt.Fprintf(os.Stderr, "  sinetable -play [-scope] [flags]  audition the generator\n\n")
	flag.PrintDefaults()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "sinetable: %v\n", err)
	os.Exit(1)
}

func main() {
	var (
		variantFlag  = flag.String("variant", "A", "table preset: A, B, C or D")
		entriesFlag  = flag.Int("entries", 0, "override entry count N (0 = preset)")
		widthFlag    = flag.Int("width", 0, "override sample width W in bits (0 = preset)")
		perLineFlag  = flag.Int("perline", 0, "override samples per printed line (0 = preset)")
		quadrantFlag = flag.String("quadrant", "", "override quadrant: asc or desc")
		scaleFlag    = flag.String("scale", "", "override scale convention: max (2^W-1) or unit (2^W)")
		overflowFlag = flag.String("overflow", "", "override overflow policy: none, saturate or wrap")
		outFlag      = flag.String("out", "", "write the table to a file instead of stdout")
		copyFlag     = flag.Bool("copy", false, "also place the table text on the system clipboard")
		csvFlag      = flag.String("csv", "", "write a dual generator CSV trace to this file")
		cyclesFlag   = flag.Int("cycles", 1, "number of full periods to trace with -csv")
		freqFlag     = flag.Uint("freq", 440, "generator frequency multiple k (Fo = k Hz)")
		attFlag      = flag.Uint("att", 0, "generator attenuation as a UQ0.16 code")
		playFlag     = flag.Bool("play", false, "audition the generator on the default audio device")
		scopeFlag    = flag.Bool("scope", false, "open a waveform scope window")
	)
	flag.Usage = usage
	flag.Parse()

	spec, err := VariantByName(*variantFlag)
	if err != nil {
		fatal(err)
	}
	if *entriesFlag > 0 {
		spec.Entries = *entriesFlag
	}
	if *widthFlag > 0 {
		spec.Width = *widthFlag
	}
	if *perLineFlag > 0 {
		spec.PerLine = *perLineFlag
	}
	if err := applyOverrides(&spec, *quadrantFlag, *scaleFlag, *overflowFlag); err != nil {
		fatal(err)
	}
	if *attFlag > 0xFFFF {
		fatal(fmt.Errorf("%w: attenuation %d exceeds UQ0.16 range", ErrInvalidParameter, *attFlag))
	}
	att := UQ016(*attFlag)

	switch {
	case *csvFlag != "":
		if err := runCSV(*csvFlag, uint32(*freqFlag), att, *cyclesFlag); err != nil {
			fatal(err)
		}
	case *playFlag || *scopeFlag:
		if err := runAudition(spec, uint32(*freqFlag), att, *playFlag, *scopeFlag); err != nil {
			fatal(err)
		}
	default:
		if err := runTable(spec, *outFlag, *copyFlag); err != nil {
			fatal(err)
		}
	}
}

// applyOverrides maps the textual override flags onto the spec.
func applyOverrides(spec *TableSpec, quadrant, scale, overflow string) error {
	switch quadrant {
	case "":
	case "asc":
		spec.Quadrant = QuadrantAscending
	case "desc":
		spec.Quadrant = QuadrantDescending
	default:
		return fmt.Errorf("unknown quadrant %q (want asc or desc)", quadrant)
	}

	switch scale {
	case "":
	case "max":
		spec.Scale = ScaleMaxCode
	case "unit":
		spec.Scale = ScaleUnit
	default:
		return fmt.Errorf("unknown scale convention %q (want max or unit)", scale)
	}

	switch overflow {
	case "":
	case "none":
		spec.Overflow = OverflowNone
	case "saturate":
		spec.Overflow = OverflowSaturate
	case "wrap":
		spec.Overflow = OverflowWrap
	default:
		return fmt.Errorf("unknown overflow policy %q (want none, saturate or wrap)", overflow)
	}
	return nil
}

// runTable prints the table to stdout or a file, optionally mirroring the
// text to the clipboard.
func runTable(spec TableSpec, outPath string, toClipboard bool) error {
	text, err := spec.FormatTable()
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			return err
		}
	} else {
		if _, err := os.Stdout.WriteString(text); err != nil {
			return err
		}
	}

	if toClipboard {
		if err := copyToClipboard(text); err != nil {
			return err
		}
	}
	return nil
}

// runCSV traces a raw and a postprocessed generator side by side, the way
// the table consumers verify the rounding step.
func runCSV(path string, freq uint32, att UQ016, cycles int) error {
	gen1, err := NewSineGen(freq)
	if err != nil {
		return err
	}
	gen1.SetAtt(att)

	gen2, err := NewSineGen(freq)
	if err != nil {
		return err
	}
	gen2.SetAtt(att)
	gen2.SetPostproc(true)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteSineCSV(f, gen1, gen2, cycles)
}

// runAudition plays the generator and/or shows the scope. With -play but no
// -scope the terminal keys control frequency; with -scope the window does.
func runAudition(spec TableSpec, freq uint32, att UQ016, play, scope bool) error {
	var out SoundOutput
	if play {
		var err error
		out, err = NewSoundOutput()
		if err != nil {
			return err
		}
		defer out.Close()

		gen, err := NewSineGen(freq)
		if err != nil {
			return err
		}
		gen.SetAtt(att)
		gen.SetPostproc(true)
		out.SetGenerator(gen)
		if err := out.Start(); err != nil {
			return err
		}
	}

	if scope {
		var trace []float32
		title := "generator"
		if !play {
			samples, err := spec.Build()
			if err != nil {
				return err
			}
			trace = tableTrace(samples, spec.Width)
			title = fmt.Sprintf("table %dx%d-bit", spec.Entries, spec.Width)
		} else {
			trace = tracePeriod(freq, att)
		}
		return RunScope(trace, title, out, freq, att)
	}

	return keyLoop(out, freq)
}

// keyLoop runs the terminal frequency controls until q or Ctrl-C.
func keyLoop(out SoundOutput, freq uint32) error {
	kr, err := NewKeyReader()
	if err != nil {
		return err
	}
	defer kr.Stop()

	fmt.Fprintf(os.Stderr, "playing %d Hz  [+/- octave, q quits]\r\n", freq<<FreqStepOrder)
	for b := range kr.Keys() {
		switch b {
		case '+', '=':
			if freq*2 <= FreqMax {
				freq *= 2
				_ = out.SetFreq(freq)
				fmt.Fprintf(os.Stderr, "%d Hz\r\n", freq<<FreqStepOrder)
			}
		case '-', '_':
			if freq/2 >= FreqMin {
				freq /= 2
				_ = out.SetFreq(freq)
				fmt.Fprintf(os.Stderr, "%d Hz\r\n", freq<<FreqStepOrder)
			}
		case 'q', 0x03:
			return nil
		}
	}
	return nil
}
