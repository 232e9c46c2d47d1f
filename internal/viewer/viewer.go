// Package viewer puts a rendered chart in front of the user.
package viewer

import (
	"context"
	"image"

	"github.com/pkg/errors"

	"github.com/user/plant_plotter_go/internal/logging"
)

// Viewer displays img and blocks until the user dismisses it or ctx is done.
type Viewer interface {
	Show(ctx context.Context, title string, img image.Image) error
}

// Captioner is implemented by viewers that can show text next to the chart.
type Captioner interface {
	SetCaption(lines []string)
}

// Func adapts a function to Viewer.
type Func func(ctx context.Context, title string, img image.Image) error

func (f Func) Show(ctx context.Context, title string, img image.Image) error {
	return f(ctx, title, img)
}

// Headless logs that a chart was produced and returns without displaying it.
type Headless struct {
	Logger logging.Logger
}

func (h Headless) Show(ctx context.Context, title string, img image.Image) error {
	if img == nil {
		return errors.New("no image to show")
	}
	if h.Logger != nil {
		b := img.Bounds()
		h.Logger.Info(ctx, "display skipped",
			logging.String("title", title),
			logging.Int("width", b.Dx()),
			logging.Int("height", b.Dy()))
	}
	return ctx.Err()
}
