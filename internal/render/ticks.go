package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// hzTicks marks powers of ten with engineering-unit labels and the
// intermediate multiples as unlabeled minor ticks.
type hzTicks struct{}

func (hzTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max <= min {
		return nil
	}
	var ticks []plot.Tick
	lo := math.Floor(math.Log10(min))
	hi := math.Ceil(math.Log10(max))
	for e := lo; e <= hi; e++ {
		decade := math.Pow(10, e)
		if decade >= min && decade <= max {
			ticks = append(ticks, plot.Tick{Value: decade, Label: formatHz(decade)})
		}
		for m := 2.0; m < 10; m++ {
			v := m * decade
			if v < min || v > max {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

func formatHz(f float64) string {
	switch {
	case f >= 1e9:
		return fmt.Sprintf("%g GHz", f/1e9)
	case f >= 1e6:
		return fmt.Sprintf("%g MHz", f/1e6)
	case f >= 1e3:
		return fmt.Sprintf("%g kHz", f/1e3)
	default:
		return fmt.Sprintf("%g Hz", f)
	}
}
