package bode

import "sort"

// Resample evaluates the piecewise-linear curve (srcFreq, srcMag) at each
// destination frequency and returns a slice of len(dstFreq).
//
// Interpolation runs on raw linear frequency values even though sweeps are
// log-spaced. That is a modeling simplification carried over from the
// measurement workflow: with densely log-spaced source points the error is
// negligible, and switching to log-domain interpolation would change the
// numbers on sparse data.
//
// srcFreq must be sorted ascending and non-empty; this is a precondition,
// not checked here. Destination frequencies outside the source range clamp
// to the boundary magnitude, no extrapolation.
func Resample(dstFreq, srcFreq, srcMag []float64) []float64 {
	out := make([]float64, len(dstFreq))
	if len(srcFreq) == 0 {
		return out
	}
	for i, f := range dstFreq {
		out[i] = interp(f, srcFreq, srcMag)
	}
	return out
}

func interp(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	// Smallest j with xs[j] >= x; x > xs[0] guarantees j >= 1.
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		return ys[j]
	}
	t := (x - xs[j-1]) / (xs[j] - xs[j-1])
	return ys[j-1] + t*(ys[j]-ys[j-1])
}

// RejectionRatio derives the common-mode rejection ratio on the
// differential sweep's frequency grid: the common-mode magnitude curve is
// resampled onto diff.Freq and subtracted pointwise from diff.MagDB.
func RejectionRatio(diff, commonMode *Series) []float64 {
	cm := Resample(diff.Freq, commonMode.Freq, commonMode.MagDB)
	out := make([]float64, len(diff.Freq))
	for i := range out {
		out[i] = diff.MagDB[i] - cm[i]
	}
	return out
}
