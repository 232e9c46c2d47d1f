// Package config binds an input file and its column layout to a run of the
// plotter. The two presets reproduce the fixed bindings of the simulation
// outputs; flags override individual fields.
package config

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/user/plant_plotter_go/internal/logging"
	"github.com/user/plant_plotter_go/internal/parser"
)

// Viewer names.
const (
	ViewerWindow  = "window"
	ViewerWebview = "webview"
	ViewerNone    = "none"
)

const DefaultVariant = "output"

// Config is one run of the plotter.
type Config struct {
	Variant   string
	InputPath string
	Columns   parser.Columns
	Viewer    string
	PNGPath   string // optional chart export
	PDFPath   string // optional report export
	Log       logging.Config
}

var presets = map[string]Config{
	"output": {Variant: "output", InputPath: "output.csv", Columns: parser.OutputColumns, Viewer: ViewerWindow},
	"plant":  {Variant: "plant", InputPath: "plant.csv", Columns: parser.PlantColumns, Viewer: ViewerWindow},
}

// Variants lists the preset names.
func Variants() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named preset.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown variant %q (want one of %s)", name, strings.Join(Variants(), ", "))
	}
	return cfg, nil
}

// Validate checks the fields a run depends on.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path is empty")
	}
	if err := c.Columns.Validate(); err != nil {
		return errors.Wrap(err, "invalid columns")
	}
	switch c.Viewer {
	case ViewerWindow, ViewerWebview, ViewerNone:
	default:
		return fmt.Errorf("unknown viewer %q", c.Viewer)
	}
	return nil
}

// Parse builds a Config from command-line arguments (without the program
// name). env seeds the log settings; flags win over both env and preset.
func Parse(args []string, env logging.Config) (Config, error) {
	fs := flag.NewFlagSet("plant_plotter", flag.ContinueOnError)
	variant := fs.String("variant", DefaultVariant, "column preset: "+strings.Join(Variants(), " or "))
	input := fs.String("input", "", "CSV file to plot (default: the variant's file)")
	columns := fs.String("columns", "", "height,thrust,setpoint field indices (default: the variant's)")
	viewer := fs.String("viewer", "", "display: window, webview or none")
	pngPath := fs.String("png", "", "also write the chart to this PNG file")
	pdfPath := fs.String("pdf", "", "also write a PDF report to this file")
	logLevel := fs.String("log-level", env.Level, "debug, info, warn or error")
	logFormat := fs.String("log-format", env.Format, "text or json")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := Preset(*variant)
	if err != nil {
		return Config{}, err
	}
	if *input != "" {
		cfg.InputPath = *input
	}
	if *columns != "" {
		cols, err := parser.ParseColumns(*columns)
		if err != nil {
			return Config{}, errors.Wrap(err, "invalid -columns")
		}
		cfg.Columns = cols
	}
	if *viewer != "" {
		cfg.Viewer = *viewer
	}
	cfg.PNGPath = *pngPath
	cfg.PDFPath = *pdfPath
	cfg.Log = logging.Config{Level: *logLevel, Format: *logFormat}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
