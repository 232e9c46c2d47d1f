// Package window shows a chart image in a native desktop window.
package window

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Viewer opens one window per Show call. Ebiten allows a single game loop per
// process, so Show must not be called twice.
type Viewer struct{}

// New returns a window viewer.
func New() *Viewer {
	return &Viewer{}
}

// Show blocks until the window is closed or ctx is done.
func (v *Viewer) Show(ctx context.Context, title string, img image.Image) error {
	if img == nil {
		return errors.New("no image to show")
	}
	b := img.Bounds()
	g := &chartGame{ctx: ctx, src: img, width: b.Dx(), height: b.Dy()}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "chart window failed")
	}
	return ctx.Err()
}

type chartGame struct {
	ctx    context.Context
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func (g *chartGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *chartGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

// Layout keeps the chart at its rendered resolution; ebiten scales it to the window.
func (g *chartGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
