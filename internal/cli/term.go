package cli

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tether"
	"github.com/phanxgames/tether/termhost"
)

// termCommand runs the demo on the terminal.
func (c *CLI) termCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Track a badge on the terminal",
		Long: `Track a badge on the terminal.

Move the target with the arrow keys, press r to cycle rules and escape to
quit. Sizes from the config are in cells; the defaults are scaled down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if c.configPath == "" {
				cfg.Target = RectConfig{X: 20, Y: 6, Width: 24, Height: 7}
				cfg.Source.Width, cfg.Source.Height = len(cfg.Source.Label)+2, 1
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}

			d, err := newTermDemo(screen, cfg)
			if err != nil {
				screen.Fini()
				return err
			}
			defer d.host.Close()

			// Logging to stderr would tear the screen; keep it quiet until exit.
			logger := loggerFromContext(cmd.Context())
			err = d.host.Run(cmd.Context())
			logger.Info("term demo finished", "rule", d.tracker.Rule(), "tracker", d.tracker.ID())
			return err
		},
	}
}

// termDemo is the host behind the term command.
type termDemo struct {
	host    *termhost.Host
	target  *termhost.Box
	badge   *termhost.Box
	status  *termhost.Box
	tracker *tether.Tracker
}

func newTermDemo(screen tcell.Screen, cfg Config) (*termDemo, error) {
	h := termhost.NewHost(screen)

	target := termhost.NewBox("target", cfg.Target.X, cfg.Target.Y, cfg.Target.Width, cfg.Target.Height)
	target.Style = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	badge := termhost.NewBox(" "+cfg.Source.Label+" ", 0, 0, cfg.Source.Width, cfg.Source.Height)
	badge.Style = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite).Bold(true)
	status := termhost.NewBox("", 0, 0, 60, 1)
	status.Style = tcell.StyleDefault.Foreground(tcell.ColorGray)

	h.Add(target)
	h.Add(badge)
	h.Add(status)

	tr, err := cfg.newTracker()
	if err != nil {
		return nil, err
	}
	tr.SetSource(badge.Handle())
	tr.SetTarget(target.Handle())
	tr.SetCallback(tether.OnUpdateFunc(func(u tether.Update) {
		badge.PlaceAt(u.Position())
	}))
	tr.SetSurface(h.SurfaceHandle())

	d := &termDemo{host: h, target: target, badge: badge, status: status, tracker: tr}
	d.refreshStatus()
	h.OnKey = d.key
	if !tr.Start() {
		return nil, errors.New("term demo: tracker did not start")
	}
	return d, nil
}

// key moves the target or switches rules. It never ends the run itself.
func (d *termDemo) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		d.target.Rect.X--
	case tcell.KeyRight:
		d.target.Rect.X++
	case tcell.KeyUp:
		d.target.Rect.Y--
	case tcell.KeyDown:
		d.target.Rect.Y++
	case tcell.KeyRune:
		if ev.Rune() == 'r' {
			if err := d.tracker.SetRule(nextRule(d.tracker.Rule())); err == nil {
				d.refreshStatus()
			}
		}
	}
	d.host.Frame()
	return true
}

func (d *termDemo) refreshStatus() {
	d.status.Label = fmt.Sprintf("rule %s  arrows move  r next rule  esc quit", d.tracker.Rule())
}
