// csv_dump.go - Dual generator CSV trace

/*
sinetable - quarter wave sine LUT generation and fixed point synthesis

(c) 2026 The sinetable authors
https://github.com/fixdsp/sinetable
License: GPLv3 or later
*/

package main

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSineCSV runs two generators in lockstep for the given number of full
// periods of gen1 and writes one row per tick: "phase; out1; out2". The
// phase column is gen1's UQ0.16 phase code; the output columns are SQ0.15
// amplitude codes. Typically gen2 mirrors gen1's settings with
// postprocessing enabled, so the trace exposes the rounding difference.
func WriteSineCSV(w io.Writer, gen1, gen2 *SineGen, cycles int) error {
	if gen1 == nil || gen2 == nil || cycles <= 0 {
		return fmt.Errorf("%w: need two generators and a positive cycle count", ErrInvalidParameter)
	}

	bw := bufio.NewWriter(w)
	cnt := 0
	for cnt < cycles {
		phi := gen1.Phase()
		if _, err := fmt.Fprintf(bw, "%d; %d; %d\n", phi, gen1.Output(), gen2.Output()); err != nil {
			return err
		}
		gen1.Step()
		gen2.Step()
		if gen1.Phase() < phi { // wrapped: one period done
			cnt++
			if err := bw.Flush(); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
