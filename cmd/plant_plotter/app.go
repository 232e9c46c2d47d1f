package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/pkg/errors"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/user/plant_plotter_go/internal/logging"
)

// App struct. Its exported methods are bound to the frontend.
type App struct {
	ctx     context.Context
	log     logging.Logger
	title   string
	chart   string // PNG data URI
	caption []string
}

// NewApp creates a new App application struct
func NewApp(log logging.Logger) *App {
	return &App{log: log}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, a.title)
}

// ChartImage returns the rendered chart as a PNG data URI.
func (a *App) ChartImage() string {
	return a.chart
}

// Caption returns the summary lines shown under the chart.
func (a *App) Caption() []string {
	return a.caption
}

// FrontendReady is called by the page once the chart is on screen.
func (a *App) FrontendReady() {
	a.sendStatus("Chart displayed. Close the window to exit.")
}

func (a *App) sendStatus(message string) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	a.log.Info(context.Background(), message)
}

// webview shows the chart in a wails window.
type webview struct {
	app *App
}

func newWebview(log logging.Logger) *webview {
	return &webview{app: NewApp(log)}
}

func (w *webview) SetCaption(lines []string) {
	w.app.caption = lines
}

// Show blocks until the window is closed or ctx is done.
func (w *webview) Show(ctx context.Context, title string, img image.Image) error {
	if img == nil {
		return errors.New("no image to show")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(err, "failed to encode chart")
	}
	w.app.title = title
	w.app.chart = "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	done := make(chan struct{})
	defer close(done)
	startup := func(wctx context.Context) {
		w.app.Startup(wctx)
		go func() {
			select {
			case <-ctx.Done():
				runtime.Quit(wctx)
			case <-done:
			}
		}()
	}

	b := img.Bounds()
	err := wails.Run(&options.App{
		Title:  title,
		Width:  b.Dx() + 40,
		Height: b.Dy() + 180,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		OnStartup:        startup,
		Bind: []interface{}{
			w.app,
		},
	})
	if err != nil {
		return errors.Wrap(err, "error running webview")
	}
	return ctx.Err()
}
