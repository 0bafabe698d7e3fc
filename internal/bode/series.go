// Package bode loads frequency-response sweeps from circuit-simulator and
// oscilloscope exports and aligns them onto a common frequency grid.
package bode

// Series holds one Bode sweep as three parallel slices. Entries keep the
// order in which valid records appeared in the source file; no sorting or
// deduplication is performed. A Series is built once by a parser and is
// read-only afterwards.
type Series struct {
	Freq     []float64 // Hz
	MagDB    []float64 // dB
	PhaseDeg []float64 // degrees
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.Freq) }
