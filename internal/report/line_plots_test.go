package report

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/user/plant_plotter_go/internal/analysis"
	"github.com/user/plant_plotter_go/internal/parser"
)

func sampleSeries() *parser.Series {
	return &parser.Series{
		Height:   []float64{0, 2.5, 6, 9.5, 10},
		Thrust:   []float64{9.81, 15, 12, 9, 9.81},
		Setpoint: []float64{10, 10, 10, 10, 10},
	}
}

func TestNewLineChartLabels(t *testing.T) {
	c, err := NewLineChart(sampleSeries())
	if err != nil {
		t.Fatalf("NewLineChart() error: %v", err)
	}
	p := c.Plot
	if p.Title.Text != "Height and Thrust vs. Time" {
		t.Fatalf("Title = %q", p.Title.Text)
	}
	if p.X.Label.Text != "Time Step" || p.Y.Label.Text != "Value" {
		t.Fatalf("axis labels = %q/%q, want Time Step/Value", p.X.Label.Text, p.Y.Label.Text)
	}
	var labels []string
	for _, cs := range c.Series {
		labels = append(labels, cs.Label)
	}
	want := []string{"Height (m)", "Thrust (N)", "Height Setpoint (m)"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
}

func TestNewLineChartLines(t *testing.T) {
	s := sampleSeries()
	c, err := NewLineChart(s)
	if err != nil {
		t.Fatalf("NewLineChart() error: %v", err)
	}
	if len(c.Series) != 3 {
		t.Fatalf("got %d series, want 3", len(c.Series))
	}
	for si, cs := range c.Series {
		if len(cs.Segments) != 1 {
			t.Fatalf("series %d has %d segments, want 1", si, len(cs.Segments))
		}
		l := cs.Segments[0]
		if l.XYs.Len() != s.Len() {
			t.Fatalf("series %d has %d points, want %d", si, l.XYs.Len(), s.Len())
		}
		for i := 0; i < l.XYs.Len(); i++ {
			if x, _ := l.XYs.XY(i); x != float64(i) {
				t.Fatalf("series %d point %d has x = %v, want %d", si, i, x, i)
			}
		}
	}
	for i, want := range [][]float64{s.Height, s.Thrust, s.Setpoint} {
		if _, y := c.Series[i].Segments[0].XYs.XY(3); y != want[3] {
			t.Fatalf("series %d point 3 y = %v, want %v", i, y, want[3])
		}
	}
}

func TestNewLineChartNonFiniteGaps(t *testing.T) {
	s := &parser.Series{
		Height:   []float64{1, math.NaN(), 3, 4},
		Thrust:   []float64{5, 6, math.Inf(1), 8},
		Setpoint: []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()},
	}
	c, err := NewLineChart(s)
	if err != nil {
		t.Fatalf("NewLineChart() error: %v", err)
	}

	height := c.Series[0].Segments
	if len(height) != 2 || height[0].XYs.Len() != 1 || height[1].XYs.Len() != 2 {
		t.Fatalf("height segments = %d, want [x=0] and [x=2,3]", len(height))
	}
	if x, y := height[1].XYs.XY(0); x != 2 || y != 3 {
		t.Fatalf("height gap resumes at (%v, %v), want (2, 3)", x, y)
	}
	if thrust := c.Series[1].Segments; len(thrust) != 2 {
		t.Fatalf("thrust has %d segments, want 2", len(thrust))
	}
	if n := len(c.Series[2].Segments); n != 0 {
		t.Fatalf("all-NaN setpoint has %d segments, want 0", n)
	}
	if _, err := RenderPNG(c.Plot); err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
}

func TestNewLineChartLengthMismatch(t *testing.T) {
	s := sampleSeries()
	s.Thrust = s.Thrust[:2]
	if _, err := NewLineChart(s); !errors.Is(err, parser.ErrLengthMismatch) {
		t.Fatalf("NewLineChart() error = %v, want ErrLengthMismatch", err)
	}
}

func TestRenderEmptySeries(t *testing.T) {
	c, err := NewLineChart(parser.NewSeries(0))
	if err != nil {
		t.Fatalf("NewLineChart(empty) error: %v", err)
	}
	if len(c.Series) != 3 {
		t.Fatalf("got %d series for empty input, want 3", len(c.Series))
	}
	img, err := RenderImage(c.Plot)
	if err != nil {
		t.Fatalf("RenderImage(empty) error: %v", err)
	}
	if img.Bounds().Dx() != 1000 || img.Bounds().Dy() != 600 {
		t.Fatalf("image size = %v, want 1000x600", img.Bounds())
	}
}

func TestRenderPNG(t *testing.T) {
	c, err := NewLineChart(sampleSeries())
	if err != nil {
		t.Fatalf("NewLineChart() error: %v", err)
	}
	data, err := RenderPNG(c.Plot)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.DecodeConfig() error: %v", err)
	}
	if cfg.Width != 1000 || cfg.Height != 600 {
		t.Fatalf("PNG size = %dx%d, want 1000x600", cfg.Width, cfg.Height)
	}

	path := filepath.Join(t.TempDir(), "charts", "output.png")
	if err := SavePNG(path, data); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() != int64(len(data)) {
		t.Fatalf("saved PNG stat = %v, %v", fi, err)
	}
}

func TestBuildPDFReport(t *testing.T) {
	s := sampleSeries()
	c, err := NewLineChart(s)
	if err != nil {
		t.Fatalf("NewLineChart() error: %v", err)
	}
	chart, err := RenderPNG(c.Plot)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	summary, err := analysis.Summarize(s)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := BuildPDFReport(path, "output.csv", summary, chart); err != nil {
		t.Fatalf("BuildPDFReport() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("report does not start with a PDF header")
	}
}

func TestBuildPDFReportEmpty(t *testing.T) {
	summary, err := analysis.Summarize(parser.NewSeries(0))
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := BuildPDFReport(path, "plant.csv", summary, nil); err != nil {
		t.Fatalf("BuildPDFReport(empty) error: %v", err)
	}
}
