// Package render draws labeling results and timing sweeps.
//
// PNG charts use gonum/plot; TimingsHTML writes an interactive go-echarts page.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/cellseg/centroid"
)

// ErrNoSeries is returned when a chart has nothing to draw.
var ErrNoSeries = errors.New("render: no series")

// Series is one named curve.
type Series struct {
	Name string
	X, Y []float64
}

var palette = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
	color.RGBA{R: 214, G: 39, B: 40, A: 255},
}

// Timings plots average time per pixel against pixel count and saves the
// chart to path (format from the extension: .png, .svg, .pdf...).
func Timings(path string, series ...Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	p := plot.New()
	p.Title.Text = "Labeling cost"
	p.X.Label.Text = "Number of pixels"
	p.Y.Label.Text = "Average elapsed time per pixel (s)"
	p.Legend.Top = true

	for i, s := range series {
		pts := make(plotter.XYs, len(s.X))
		for k := range s.X {
			pts[k] = plotter.XY{X: s.X[k], Y: s.Y[k]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("render: series %s: %w", s.Name, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// TimingsHTML writes the same chart as an interactive HTML page. The x axis is
// taken from the first series.
func TimingsHTML(w io.Writer, series ...Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "cellseg timings", Width: "900px", Height: "540px"}),
		charts.WithTitleOpts(opts.Title{Title: "Labeling cost", Subtitle: "average elapsed time per pixel"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "pixels", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "s / pixel"}),
	)

	xs := make([]string, len(series[0].X))
	for i, x := range series[0].X {
		xs[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}
	line.SetXAxis(xs)
	for _, s := range series {
		data := make([]opts.LineData, len(s.Y))
		for i, y := range s.Y {
			data[i] = opts.LineData{Value: y}
		}
		line.AddSeries(s.Name, data)
	}
	return line.Render(w)
}

// Centers draws bg and marks every centroid except the leading placeholder.
// Points are given in image coordinates (X = column, Y = row, origin top-left).
func Centers(path string, bg image.Image, centers []centroid.Point) error {
	b := bg.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	p := plot.New()
	p.HideAxes()
	p.X.Min, p.X.Max = 0, w
	p.Y.Min, p.Y.Max = 0, h
	p.Add(plotter.NewImage(bg, 0, 0, w, h))

	if len(centers) > 1 {
		pts := make(plotter.XYs, 0, len(centers)-1)
		for _, c := range centers[1:] {
			// plot y grows upward; image rows grow downward
			pts = append(pts, plotter.XY{X: c.X + 0.5, Y: h - (c.Y + 0.5)})
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("render: centers: %w", err)
		}
		sc.GlyphStyle.Color = palette[2]
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
	}

	side := 6 * vg.Inch
	long := max(w, h)
	if err := p.Save(side*vg.Length(w/long), side*vg.Length(h/long), path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
