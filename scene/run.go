package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Background    color.Color
	// OnUpdate, if set, runs before every Scene.Update. Returning an error
	// ends the game loop; return ebiten.Termination for a clean exit.
	OnUpdate func() error
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
	skip  bool
}

func (g *game) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.skip = !g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.skip {
		return
	}
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	g.scene.Draw(screen)
}

func (g *game) Layout(w, h int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the scene until the window closes or
// OnUpdate returns an error. The scene is closed as a surface on return, so
// trackers bound to it stop.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	// A vetoed pass keeps the previous frame on screen.
	ebiten.SetScreenClearedEveryFrame(false)
	defer s.Close()
	return ebiten.RunGame(&game{scene: s, cfg: cfg})
}
