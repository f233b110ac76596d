package cli

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tether"
	"github.com/phanxgames/tether/scene"
)

// windowCommand opens the Ebitengine demo.
func (c *CLI) windowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open a window with a badge tracking a moving target",
		Long: `Open a window with a badge tracking a moving target.

The target wanders around the window while the badge stays attached using
the configured rule. Press space to cycle rules and escape to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			if cfg.Debug {
				scene.SetLogger(logger.WithPrefix("scene"))
			}

			d, err := newWindowDemo(cfg)
			if err != nil {
				return err
			}
			logger.Info("window demo", "rule", d.tracker.Rule(), "tracker", d.tracker.ID())

			err = scene.Run(d.scene, scene.RunConfig{
				Title:      cfg.Window.Title,
				Width:      cfg.Window.Width,
				Height:     cfg.Window.Height,
				Background: color.RGBA{0x18, 0x18, 0x20, 0xff},
				OnUpdate:   d.input,
			})
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		},
	}
}

// windowDemo is the scene behind the window command.
type windowDemo struct {
	scene   *scene.Scene
	target  *scene.Node
	badge   *scene.Node
	tracker *tether.Tracker

	width, height float64
	leg           int
}

func newWindowDemo(cfg Config) (*windowDemo, error) {
	s := scene.NewScene()
	s.SetDebugMode(cfg.Debug)

	t := cfg.Target
	target := scene.NewNode("target", float64(t.Width), float64(t.Height))
	target.SetPosition(float64(t.X), float64(t.Y))
	target.Color = scene.Color{R: 0.3, G: 0.5, B: 0.9, A: 1}

	// The badge lives in an offset layer so parent-space placement matters.
	hud := scene.NewContainer("hud")
	hud.SetPosition(8, 8)
	hud.ZIndex = 1
	badge := scene.NewNode(cfg.Source.Label, float64(cfg.Source.Width), float64(cfg.Source.Height))
	badge.Color = scene.Color{R: 0.95, G: 0.35, B: 0.3, A: 1}

	s.Root().AddChild(target)
	s.Root().AddChild(hud)
	hud.AddChild(badge)

	tr, err := cfg.newTracker()
	if err != nil {
		return nil, err
	}
	tr.SetSource(badge.Handle())
	tr.SetTarget(target.Handle())
	tr.SetCallback(tether.OnUpdateFunc(func(u tether.Update) {
		// Parent-space positions are relative to the hud, absolute ones to
		// the window.
		p := u.Position()
		if u.Parent == nil {
			p = p.Sub(tether.Point{X: 8, Y: 8})
		}
		badge.PlaceAt(p)
	}))
	tr.SetSurface(s.SurfaceHandle())
	if !tr.Start() {
		return nil, errors.New("window demo: tracker did not start")
	}

	d := &windowDemo{
		scene:   s,
		target:  target,
		badge:   badge,
		tracker: tr,
		width:   float64(cfg.Window.Width),
		height:  float64(cfg.Window.Height),
	}
	d.wander()
	return d, nil
}

// wander sends the target to the next corner of a loop around the window.
func (d *windowDemo) wander() {
	w, h := d.target.Width, d.target.Height
	stops := [4][2]float64{
		{d.width * 0.15, d.height * 0.2},
		{d.width*0.85 - w, d.height * 0.2},
		{d.width*0.85 - w, d.height*0.8 - h},
		{d.width * 0.15, d.height*0.8 - h},
	}
	p := stops[d.leg%len(stops)]
	d.leg++
	d.scene.Animate(scene.TweenPosition(d.target, p[0], p[1], 2, ease.InOutCubic))
}

// input runs before every scene update.
func (d *windowDemo) input() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.nextRule()
	}
	if d.scene.NumTweens() == 0 {
		d.wander()
	}
	return nil
}

// nextRule switches the tracker to the following rule, wrapping around.
func (d *windowDemo) nextRule() tether.Rule {
	next := nextRule(d.tracker.Rule())
	if err := d.tracker.SetRule(next); err == nil {
		d.tracker.Update()
	}
	return next
}

func nextRule(r tether.Rule) tether.Rule {
	rules := tether.Rules()
	for i, x := range rules {
		if x == r {
			return rules[(i+1)%len(rules)]
		}
	}
	return rules[0]
}
