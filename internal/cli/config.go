package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/tether"
)

// Config is the demo settings file. The tracker settings sit at the top
// level:
//
//	rule = "BottomOutsideCenter"
//	margin_x = 0
//	margin_y = 4
//	space = "absolute"
//	debug = true
//
//	[target]
//	x = 100
//	y = 50
//	width = 80
//	height = 40
//
//	[source]
//	label = "new"
//	width = 20
//	height = 10
//
//	[window]
//	title = "tether"
//	width = 640
//	height = 480
type Config struct {
	tether.Config

	Debug  bool         `toml:"debug"`
	Target RectConfig   `toml:"target"`
	Source SourceConfig `toml:"source"`
	Window WindowConfig `toml:"window"`
}

// RectConfig is a rectangle in cells or pixels.
type RectConfig struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Rect converts to a tether.Rect.
func (r RectConfig) Rect() tether.Rect {
	return tether.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// SourceConfig describes the tracked element.
type SourceConfig struct {
	Label  string `toml:"label"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// WindowConfig sizes the window demo.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Config: tether.Config{Rule: tether.DefaultRule},
		Target: RectConfig{X: 100, Y: 50, Width: 80, Height: 40},
		Source: SourceConfig{Label: "new", Width: 20, Height: 10},
		Window: WindowConfig{Title: appName, Width: 640, Height: 480},
	}
}

// LoadConfig decodes a TOML file over DefaultConfig. Unknown keys are an
// error so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Rule == tether.RuleNone {
		return fmt.Errorf("rule: %w", tether.ErrInvalidRule)
	}
	if c.Target.Width < 0 || c.Target.Height < 0 {
		return fmt.Errorf("target size %dx%d is negative", c.Target.Width, c.Target.Height)
	}
	if c.Source.Width < 0 || c.Source.Height < 0 {
		return fmt.Errorf("source size %dx%d is negative", c.Source.Width, c.Source.Height)
	}
	return nil
}

// newTracker builds a tracker configured from c.
func (c Config) newTracker() (*tether.Tracker, error) {
	tr := tether.NewTracker()
	if err := tr.Apply(c.Config); err != nil {
		return nil, err
	}
	tr.SetDebug(c.Debug)
	return tr, nil
}
