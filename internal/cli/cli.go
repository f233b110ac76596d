// Package cli implements the tetherdemo command-line interface.
//
// # Commands
//
//   - rules: print every placement rule and where it puts a sample source
//   - resolve: compute one placement from flags or a config file
//   - window: open an Ebitengine window with a tracked badge
//   - term: the same demo on the terminal through tcell
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on tracker debug output. Loggers are passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tether"
)

const appName = "tetherdemo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the tether engine
// logs through the same logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		tether.SetLogger(c.Logger.WithPrefix("tether"))
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Tetherdemo shows tether placement rules in action",
		Long:         `Tetherdemo exercises the tether position tracker: it lists the placement rules, resolves single placements and runs live demos in a window or on the terminal.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML file with demo settings")

	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.windowCommand())
	root.AddCommand(c.termCommand())

	return root
}

// loadConfig reads the --config file, or returns the defaults without one.
func (c *CLI) loadConfig() (Config, error) {
	if c.configPath == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(c.configPath)
}
