// Package render draws the overlap frequency distribution and CDF as a
// pair of stacked panels sharing an x axis, and writes the image as PNG.
package render

import (
	"fmt"
	"image/color"
	"os"

	"coocviz/dist"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// Config controls figure layout. Zero fields fall back to defaults.
type Config struct {
	Title  string
	XLabel string
	Width  float64 // inches
	Height float64 // inches
	DPI    int
}

func DefaultConfig() Config {
	return Config{
		Title:  "Overlap (Cooccurrence) Values Distribution and CDF",
		XLabel: "Overlap Value in Nanoseconds (log scale)",
		Width:  10,
		Height: 8,
		DPI:    300,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.XLabel == "" {
		c.XLabel = d.XLabel
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.DPI <= 0 {
		c.DPI = d.DPI
	}
	return c
}

func points(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}

func logScale(p *plot.Plot) {
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
}

func panel(title, ylabel, xlabel string, logX bool, xs, ys []float64, c color.RGBA) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	p.X.Label.Text = xlabel
	if logX {
		logScale(p)
	}
	p.Add(plotter.NewGrid())

	line, pts, e := plotter.NewLinePoints(points(xs, ys))
	if e != nil {
		return nil, e
	}
	line.Color = c
	pts.Color = c
	p.Add(line, pts)

	return p, nil
}

// Render draws the frequency panel above the CDF panel and writes the
// figure to outpath as PNG. A log x axis cannot hold values <= 0; when
// the distribution contains any, both panels fall back to a linear axis.
func Render(d *dist.Distribution, outpath string, cfg Config) (err error) {
	h := handle("Render: %w")
	if len(d.Values) == 0 {
		return h(dist.ErrEmptyInput)
	}
	cfg = cfg.withDefaults()

	logX := d.Values[0] > 0 // Values are sorted ascending

	freqs := make([]float64, len(d.Freqs))
	for i, f := range d.Freqs {
		freqs[i] = float64(f)
	}

	top, e := panel(cfg.Title, "Frequency", "", logX, d.Values, freqs, color.RGBA{B: 255, A: 255})
	if e != nil {
		return h(e)
	}
	bottom, e := panel("", "Cumulative Probability", cfg.XLabel, logX, d.Values, d.CumProbs, color.RGBA{R: 255, A: 255})
	if e != nil {
		return h(e)
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch),
		vgimg.UseDPI(cfg.DPI),
	)
	dc := draw.New(img)

	plots := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(plots, draw.Tiles{Rows: 2, Cols: 1}, dc)
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])

	w, e := os.Create(outpath)
	if e != nil {
		return h(e)
	}
	defer func() {
		if ce := w.Close(); err == nil {
			err = ce
		}
	}()

	png := vgimg.PngCanvas{Canvas: img}
	if _, e := png.WriteTo(w); e != nil {
		return h(e)
	}
	return nil
}
