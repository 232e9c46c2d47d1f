package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/user/plant_plotter_go/internal/analysis"
	"github.com/user/plant_plotter_go/internal/parser"
)

const (
	ChartTitle = "Height and Thrust vs. Time"
	XAxisLabel = "Time Step"
	YAxisLabel = "Value"

	FigureWidth  = 10 * vg.Inch
	FigureHeight = 6 * vg.Inch
	FigureDPI    = 100
)

// Default matplotlib color cycle.
var seriesColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255},
	color.RGBA{R: 255, G: 127, B: 14, A: 255},
	color.RGBA{R: 44, G: 160, B: 44, A: 255},
}

// finiteRuns places values at x = 0..n-1 and splits them at NaN and
// infinite values, which are left as gaps.
func finiteRuns(values []float64) []plotter.XYs {
	var runs []plotter.XYs
	var cur plotter.XYs
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(i), Y: v})
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// ChartSeries is one legend entry and the line segments drawn for it.
type ChartSeries struct {
	Label    string
	Segments []*plotter.Line
}

// Chart is a built figure plus handles to its series, in legend order.
type Chart struct {
	Plot   *plot.Plot
	Series []ChartSeries
}

// NewLineChart builds the height/thrust/setpoint chart. Mismatched series
// lengths are rejected rather than truncated.
func NewLineChart(s *parser.Series) (*Chart, error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "cannot chart series")
	}

	p := plot.New()
	p.Title.Text = ChartTitle
	p.X.Label.Text = XAxisLabel
	p.Y.Label.Text = YAxisLabel
	p.Add(plotter.NewGrid())

	chart := &Chart{Plot: p}
	lines := []struct {
		Label  string
		Values []float64
	}{
		{analysis.HeightLabel, s.Height},
		{analysis.ThrustLabel, s.Thrust},
		{analysis.SetpointLabel, s.Setpoint},
	}
	drawn := 0
	for i, l := range lines {
		style := plotter.DefaultLineStyle
		style.Color = seriesColors[i%len(seriesColors)]
		style.Width = vg.Points(1.5)

		cs := ChartSeries{Label: l.Label}
		for _, run := range finiteRuns(l.Values) {
			seg, err := plotter.NewLine(run)
			if err != nil {
				return nil, fmt.Errorf("failed to create line for %s: %v", l.Label, err)
			}
			seg.LineStyle = style
			p.Add(seg)
			cs.Segments = append(cs.Segments, seg)
			drawn += len(run)
		}

		// The legend swatch carries the style even when nothing is drawn.
		swatch := &plotter.Line{LineStyle: style}
		p.Legend.Add(l.Label, swatch)
		chart.Series = append(chart.Series, cs)
	}

	if drawn == 0 {
		p.X.Min, p.X.Max = 0, math.Max(1, float64(s.Len()-1))
		p.Y.Min, p.Y.Max = 0, 1
	}

	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)
	p.Legend.YOffs = -vg.Points(10)
	return chart, nil
}

func drawCanvas(p *plot.Plot) (*vgimg.Canvas, error) {
	if p == nil {
		return nil, errors.New("nil plot")
	}
	c := vgimg.NewWith(vgimg.UseWH(FigureWidth, FigureHeight), vgimg.UseDPI(FigureDPI))
	p.Draw(draw.New(c))
	return c, nil
}

// RenderImage rasterizes p at the figure size.
func RenderImage(p *plot.Plot) (image.Image, error) {
	c, err := drawCanvas(p)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// RenderPNG encodes p as PNG at the figure size.
func RenderPNG(p *plot.Plot) ([]byte, error) {
	c, err := drawCanvas(p)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}
	return buf.Bytes(), nil
}

// SavePNG writes pngBytes to path, creating parent directories.
func SavePNG(path string, pngBytes []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "cannot create directory for %s", path)
	}
	if err := os.WriteFile(path, pngBytes, 0o644); err != nil {
		return errors.Wrapf(err, "cannot write %s", path)
	}
	return nil
}
