package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tether"
)

// rulesCommand lists every placement rule with a sample result.
func (c *CLI) rulesCommand() *cobra.Command {
	var target, source []int

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List placement rules and where each puts the source",
		Long: `List every placement rule.

Each row shows where the source's top-left corner lands for the configured
target and source size, ignoring margins. The configured rule is highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("target") {
				if cfg.Target, err = rectFlag("target", target); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("source") {
				if cfg.Source.Width, cfg.Source.Height, err = pairFlag("source", source); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			target := cfg.Target.Rect()
			source := tether.Rect{Width: cfg.Source.Width, Height: cfg.Source.Height}

			printTitle(out, "target %s, source %dx%d", target, source.Width, source.Height)
			fmt.Fprintln(out, renderTable(
				[]string{"Rule", "X", "Y", "Axes"},
				ruleRows(source, target),
				cfg.Rule.String()))
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&target, "target", "t", nil, "target rectangle as x,y,width,height")
	cmd.Flags().IntSliceVarP(&source, "source", "s", nil, "source size as width,height")

	return cmd
}

// ruleRows resolves every rule for the table.
func ruleRows(source, target tether.Rect) [][]string {
	var rows [][]string
	for _, r := range tether.Rules() {
		p := tether.Resolve(source, target, r)
		x, y := fmt.Sprint(p.X), fmt.Sprint(p.Y)
		axes := "x, y"
		if r.SingleAxis() {
			switch r {
			case tether.Left, tether.Right:
				axes, y = "x", "-"
			default:
				axes, x = "y", "-"
			}
		}
		rows = append(rows, []string{r.String(), x, y, axes})
	}
	return rows
}
