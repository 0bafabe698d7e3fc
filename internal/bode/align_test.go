package bode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleIdentity(t *testing.T) {
	freq := []float64{10, 100, 1000, 10000, 100000}
	mag := []float64{0.0, -0.5, -3.01, -20.0, -40.0}

	got := Resample(freq, freq, mag)

	assert.Equal(t, mag, got)
}

func TestResampleMidpoint(t *testing.T) {
	srcFreq := []float64{100, 200}
	srcMag := []float64{-10, -20}

	got := Resample([]float64{150}, srcFreq, srcMag)

	require.Len(t, got, 1)
	assert.InDelta(t, -15.0, got[0], 1e-12)
}

func TestResampleClampsOutsideRange(t *testing.T) {
	srcFreq := []float64{100, 1000}
	srcMag := []float64{-1.0, -7.0}

	got := Resample([]float64{10, 100, 1000, 50000}, srcFreq, srcMag)

	assert.Equal(t, []float64{-1.0, -1.0, -7.0, -7.0}, got)
}

func TestResampleExactKnot(t *testing.T) {
	srcFreq := []float64{100, 200, 400}
	srcMag := []float64{-1, -2, -4}

	got := Resample([]float64{200}, srcFreq, srcMag)

	assert.Equal(t, []float64{-2.0}, got)
}

func TestResampleEmptySource(t *testing.T) {
	got := Resample([]float64{10, 20}, nil, nil)

	assert.Equal(t, []float64{0, 0}, got)
}

func TestRejectionRatioSinglePoint(t *testing.T) {
	diff := &Series{Freq: []float64{1000.0}, MagDB: []float64{0.0}}
	cm := &Series{Freq: []float64{1000.0}, MagDB: []float64{-40.0}}

	got := RejectionRatio(diff, cm)

	assert.Equal(t, []float64{40.0}, got)
}

func TestRejectionRatioResamplesCommonMode(t *testing.T) {
	// Common-mode sweep on a coarser grid than the differential one.
	diff := &Series{
		Freq:  []float64{100, 150, 200},
		MagDB: []float64{0.0, 0.0, 0.0},
	}
	cm := &Series{
		Freq:  []float64{100, 200},
		MagDB: []float64{-40.0, -60.0},
	}

	got := RejectionRatio(diff, cm)

	require.Len(t, got, 3)
	assert.InDelta(t, 40.0, got[0], 1e-12)
	assert.InDelta(t, 50.0, got[1], 1e-12)
	assert.InDelta(t, 60.0, got[2], 1e-12)
}
