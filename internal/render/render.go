// Package render draws Bode comparison figures as PNG files.
package render

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"bodeview/internal/bode"
)

// Options controls figure geometry and the frequency axis range.
// Zero values fall back to the defaults below.
type Options struct {
	FreqMin float64 // Hz
	FreqMax float64 // Hz
	Width   float64 // inches
	Height  float64 // inches
}

const (
	defaultFreqMin = 10.0
	defaultFreqMax = 120e6
	defaultWidth   = 8.0
	defaultHeight  = 6.0
)

func (o Options) withDefaults() Options {
	if o.FreqMin <= 0 {
		o.FreqMin = defaultFreqMin
	}
	if o.FreqMax <= o.FreqMin {
		o.FreqMax = defaultFreqMax
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	return o
}

// Curve is one line on a panel.
type Curve struct {
	Label  string
	Freq   []float64
	Values []float64
	Dashed bool
}

var curveColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
}

// Gain writes the two-panel gain figure: magnitude over frequency on top,
// phase over frequency below, simulation solid and measurement dashed,
// sharing a logarithmic frequency axis.
func Gain(path, title string, sim, meas *bode.Series, opt Options) error {
	opt = opt.withDefaults()

	mag, err := panel(opt, "Magnitude (dB)",
		Curve{Label: "Simulation", Freq: sim.Freq, Values: sim.MagDB},
		Curve{Label: "Measurement", Freq: meas.Freq, Values: meas.MagDB, Dashed: true},
	)
	if err != nil {
		return err
	}
	mag.Title.Text = title

	phase, err := panel(opt, "Phase (deg)",
		Curve{Label: "Simulation", Freq: sim.Freq, Values: sim.PhaseDeg},
		Curve{Label: "Measurement", Freq: meas.Freq, Values: meas.PhaseDeg, Dashed: true},
	)
	if err != nil {
		return err
	}
	phase.X.Label.Text = "Frequency (Hz)"

	return writeStack(path, opt, mag, phase)
}

// Rejection writes the single-panel CMRR figure with one curve per source.
func Rejection(path, title string, sim, meas Curve, opt Options) error {
	opt = opt.withDefaults()

	p, err := panel(opt, "CMRR (dB)", sim, meas)
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"

	return p.Save(vg.Length(opt.Width)*vg.Inch, vg.Length(opt.Height/2)*vg.Inch, path)
}

func panel(opt Options, ylabel string, curves ...Curve) (*plot.Plot, error) {
	p := plot.New()
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = hzTicks{}
	p.X.Min = opt.FreqMin
	p.X.Max = opt.FreqMax
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	for i, c := range curves {
		line, err := plotter.NewLine(logSafeXYs(c.Freq, c.Values))
		if err != nil {
			return nil, fmt.Errorf("render: build %q curve: %w", c.Label, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.Color = curveColors[i%len(curveColors)]
		if c.Dashed {
			line.Dashes = []vg.Length{vg.Points(5), vg.Points(2)}
		}
		p.Add(line)
		p.Legend.Add(c.Label, line)
	}
	p.Legend.Top = true

	return p, nil
}

// logSafeXYs pairs frequencies with values, dropping non-positive
// frequencies, which a log axis cannot place. The parsed series itself
// keeps such points.
func logSafeXYs(freq, values []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(freq))
	for i, f := range freq {
		if f <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: f, Y: values[i]})
	}
	return pts
}

// writeStack tiles the panels vertically into one PNG.
func writeStack(path string, opt Options, panels ...*plot.Plot) error {
	img := vgimg.New(vg.Length(opt.Width)*vg.Inch, vg.Length(opt.Height)*vg.Inch)
	dc := draw.New(img)

	rows := make([][]*plot.Plot, len(panels))
	for i, p := range panels {
		rows[i] = []*plot.Plot{p}
	}
	canvases := plot.Align(rows, draw.Tiles{Rows: len(panels), Cols: 1}, dc)
	for i, p := range panels {
		p.Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create plot file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("render: encode plot: %w", err)
	}
	return f.Close()
}
