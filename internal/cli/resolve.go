package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tether"
)

// resolveCommand computes one placement.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		rule   string
		target []int
		source []int
		margin []int
		origin []int
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Compute where a rule places the source",
		Long: `Compute where a rule places the source.

Values come from the config file and are overridden by flags:

  tetherdemo resolve --rule BottomOutsideCenter --target 100,50,80,40 --source 20,10 --margin 0,4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if rule != "" {
				r, err := tether.ParseRule(rule)
				if err != nil {
					return err
				}
				cfg.Rule = r
			}
			flags := cmd.Flags()
			if flags.Changed("target") {
				if cfg.Target, err = rectFlag("target", target); err != nil {
					return err
				}
			}
			if flags.Changed("source") {
				if cfg.Source.Width, cfg.Source.Height, err = pairFlag("source", source); err != nil {
					return err
				}
			}
			if flags.Changed("margin") {
				if cfg.MarginX, cfg.MarginY, err = pairFlag("margin", margin); err != nil {
					return err
				}
			}
			var o tether.Point
			if flags.Changed("origin") {
				if o.X, o.Y, err = pairFlag("origin", origin); err != nil {
					return err
				}
			}
			return c.runResolve(cmd, cfg, o)
		},
	}

	cmd.Flags().StringVarP(&rule, "rule", "r", "", "placement rule, e.g. TopRight or bottom-outside-center")
	cmd.Flags().IntSliceVarP(&target, "target", "t", nil, "target rectangle as x,y,width,height")
	cmd.Flags().IntSliceVarP(&source, "source", "s", nil, "source size as width,height")
	cmd.Flags().IntSliceVarP(&margin, "margin", "m", nil, "fixed margin as x,y")
	cmd.Flags().IntSliceVar(&origin, "origin", nil, "origin of the shared space as x,y")

	return cmd
}

// runResolve drives a tracker once through its callback, the way a host
// would, and prints the reported position.
func (c *CLI) runResolve(cmd *cobra.Command, cfg Config, origin tether.Point) error {
	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)

	tr, err := cfg.newTracker()
	if err != nil {
		return err
	}
	src := &rectElement{tether.Rect{Width: cfg.Source.Width, Height: cfg.Source.Height}}
	dst := &rectElement{cfg.Target.Rect()}
	tr.SetSource(tether.Strong(src))
	tr.SetTarget(tether.Strong(dst))
	tr.SetOrigin(origin)

	var got tether.Update
	tr.SetCallback(tether.OnUpdateFunc(func(u tether.Update) { got = u }))
	if !tr.Update() {
		return fmt.Errorf("resolve: tracker did not update")
	}
	logger.Debug("resolved", "tracker", tr.ID(), "rule", got.Rule, "position", got.Position())
	p.done("Resolved placement")

	printResult(cmd.OutOrStdout(), cfg, got)
	return nil
}

func printResult(w io.Writer, cfg Config, u tether.Update) {
	printKeyValue(w, "rule", u.Rule.String())
	printKeyValue(w, "target", cfg.Target.Rect().String())
	printKeyValue(w, "source", fmt.Sprintf("%dx%d", cfg.Source.Width, cfg.Source.Height))
	printKeyValue(w, "margin", fmt.Sprintf("%d,%d", cfg.MarginX, cfg.MarginY))
	printKeyValue(w, "position", StyleNumber.Render(u.Position().String()))
	if u.Rule.SingleAxis() {
		printDetail(w, "single-axis rule: the other coordinate keeps the source's own")
	}
}

// rectElement is a fixed rectangle.
type rectElement struct {
	r tether.Rect
}

func (e *rectElement) Bounds() tether.Rect { return e.r }

// pairFlag checks that a comma-list flag holds exactly two values.
func pairFlag(name string, vals []int) (int, int, error) {
	if len(vals) != 2 {
		return 0, 0, fmt.Errorf("--%s: want 2 values, got %d", name, len(vals))
	}
	return vals[0], vals[1], nil
}

// rectFlag checks that a comma-list flag holds x,y,width,height.
func rectFlag(name string, vals []int) (RectConfig, error) {
	if len(vals) != 4 {
		return RectConfig{}, fmt.Errorf("--%s: want x,y,width,height, got %d values", name, len(vals))
	}
	return RectConfig{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
