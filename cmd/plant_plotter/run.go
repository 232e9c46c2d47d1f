package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/user/plant_plotter_go/internal/analysis"
	"github.com/user/plant_plotter_go/internal/config"
	"github.com/user/plant_plotter_go/internal/logging"
	"github.com/user/plant_plotter_go/internal/parser"
	"github.com/user/plant_plotter_go/internal/report"
	"github.com/user/plant_plotter_go/internal/viewer"
)

// run loads cfg.InputPath, renders the chart, writes any requested exports
// and hands the chart to v. Steps run strictly in that order.
func run(ctx context.Context, cfg config.Config, log logging.Logger, v viewer.Viewer) error {
	log = log.With(logging.String("input", cfg.InputPath), logging.String("columns", cfg.Columns.String()))

	start := time.Now()
	series, err := parser.LoadSeries(cfg.InputPath, cfg.Columns)
	if err != nil {
		return err
	}
	log.Info(ctx, "loaded series",
		logging.Int("steps", series.Len()),
		logging.Any("elapsed", time.Since(start)))

	summary, err := analysis.Summarize(series)
	if err != nil {
		return err
	}
	for _, st := range summary.Stats() {
		log.Debug(ctx, "series stats",
			logging.String("series", st.Name),
			logging.Float("min", st.Min),
			logging.Float("max", st.Max),
			logging.Float("mean", st.Mean),
			logging.Float("final", st.Final))
	}

	chart, err := report.NewLineChart(series)
	if err != nil {
		return err
	}

	if cfg.PNGPath != "" || cfg.PDFPath != "" {
		pngBytes, err := report.RenderPNG(chart.Plot)
		if err != nil {
			return errors.Wrap(err, "failed to render chart")
		}
		if cfg.PNGPath != "" {
			if err := report.SavePNG(cfg.PNGPath, pngBytes); err != nil {
				return err
			}
			log.Info(ctx, "wrote chart", logging.String("path", cfg.PNGPath))
		}
		if cfg.PDFPath != "" {
			if err := report.BuildPDFReport(cfg.PDFPath, cfg.InputPath, summary, pngBytes); err != nil {
				return err
			}
			log.Info(ctx, "wrote report", logging.String("path", cfg.PDFPath))
		}
	}

	img, err := report.RenderImage(chart.Plot)
	if err != nil {
		return errors.Wrap(err, "failed to render chart")
	}
	if c, ok := v.(viewer.Captioner); ok {
		c.SetCaption(captionLines(cfg, summary))
	}
	if err := v.Show(ctx, report.ChartTitle, img); err != nil {
		return errors.Wrap(err, "failed to display chart")
	}
	return nil
}

func captionLines(cfg config.Config, summary *analysis.Summary) []string {
	lines := []string{fmt.Sprintf("%s: %d time steps (columns %s)", cfg.InputPath, summary.Steps, cfg.Columns)}
	for _, st := range summary.Stats() {
		lines = append(lines, fmt.Sprintf("%s: min %.3f, max %.3f, final %.3f", st.Name, st.Min, st.Max, st.Final))
	}
	lines = append(lines, fmt.Sprintf("Height tracking RMS error: %.3f m", summary.Tracking.RMSError))
	return lines
}
