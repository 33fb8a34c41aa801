package stickyscroll

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// game adapts a ScrollView to the ebiten.Game interface.
type game struct {
	view *ScrollView
	fps  *Node
}

func (g *game) Update() error {
	if g.fps != nil {
		if g.fps.OnUpdate != nil {
			g.fps.OnUpdate(1.0 / float64(ebiten.TPS()))
		}
	}
	return g.view.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
	if g.fps != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(g.fps.X, g.fps.Y)
		screen.DrawImage(g.fps.Image, &op)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run creates a window and runs the game loop for a single scroll view.
// Blocks until the window is closed. For multi-view applications,
// implement ebiten.Game yourself and call Update/Draw directly.
func Run(view *ScrollView, cfg RunConfig) error {
	w := cfg.Width
	h := cfg.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)

	g := &game{view: view}
	if cfg.ShowFPS {
		g.fps = NewFPSWidget()
	}
	return ebiten.RunGame(g)
}
