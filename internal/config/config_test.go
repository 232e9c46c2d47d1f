package config

import (
	"testing"

	"github.com/user/plant_plotter_go/internal/logging"
	"github.com/user/plant_plotter_go/internal/parser"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, logging.Config{})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.InputPath != "output.csv" || cfg.Columns != parser.OutputColumns {
		t.Fatalf("default config = %+v, want output.csv with columns 1,2,3", cfg)
	}
	if cfg.Viewer != ViewerWindow {
		t.Fatalf("Viewer = %q, want %q", cfg.Viewer, ViewerWindow)
	}
}

func TestParsePlantVariant(t *testing.T) {
	cfg, err := Parse([]string{"-variant", "plant"}, logging.Config{})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.InputPath != "plant.csv" || cfg.Columns != parser.PlantColumns {
		t.Fatalf("plant config = %+v, want plant.csv with columns 2,3,4", cfg)
	}
}

func TestParseOverrides(t *testing.T) {
	args := []string{
		"-variant", "plant",
		"-input", "runs/a.csv",
		"-columns", "3,4,5",
		"-viewer", "none",
		"-png", "out/chart.png",
		"-pdf", "out/report.pdf",
		"-log-level", "debug",
	}
	cfg, err := Parse(args, logging.Config{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := Config{
		Variant:   "plant",
		InputPath: "runs/a.csv",
		Columns:   parser.Columns{Height: 3, Thrust: 4, Setpoint: 5},
		Viewer:    ViewerNone,
		PNGPath:   "out/chart.png",
		PDFPath:   "out/report.pdf",
		Log:       logging.Config{Level: "debug", Format: "json"},
	}
	if cfg != want {
		t.Fatalf("Parse() = %+v, want %+v", cfg, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string][]string{
		"unknown variant": {"-variant", "nope"},
		"bad columns":     {"-columns", "1,1,2"},
		"unknown viewer":  {"-viewer", "tty"},
		"positional":      {"extra.csv"},
		"unknown flag":    {"-zoom"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(args, logging.Config{}); err == nil {
				t.Fatalf("Parse(%v) expected error", args)
			}
		})
	}
}

func TestVariants(t *testing.T) {
	got := Variants()
	if len(got) != 2 || got[0] != "output" || got[1] != "plant" {
		t.Fatalf("Variants() = %v, want [output plant]", got)
	}
}
