package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		out    string
		clicks []string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChart()
			if err != nil {
				return err
			}
			for _, s := range clicks {
				x, y, err := parsePoint(s)
				if err != nil {
					return err
				}
				if !c.Click(x, y) {
					fmt.Fprintf(cmd.OutOrStdout(), "click %s: nothing hit\n", s)
				}
			}
			if err := c.SavePNG(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d layouts)\n", out, c.Layouts())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "breaks.png", "output PNG path")
	cmd.Flags().StringArrayVar(&clicks, "click", nil, "click at x,y before rendering (repeatable)")
	return cmd
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q: want x,y", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return x, y, nil
}
