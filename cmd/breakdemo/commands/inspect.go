package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/scene"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the breaks and the break-area shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChart()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			p := c.PlotRect()
			fmt.Fprintf(w, "plot\t%g,%g %gx%g\n", p.X, p.Y, p.Width, p.Height)
			for _, b := range c.Scale().Breaks() {
				state := "collapsed"
				if b.Expanded {
					state = "expanded"
				}
				fmt.Fprintf(w, "break\t[%g, %g]\tgap %g\t%s\n", b.Start, b.End, b.Gap, state)
			}
			for _, n := range c.AxisGroup().Shapes() {
				fmt.Fprintf(w, "shape\t%s\t%s\n", shapeKind(n.Shape), formatRect(n.Bounds()))
			}
			return w.Flush()
		},
	}
}

func shapeKind(s scene.Shape) string {
	switch s.(type) {
	case *scene.RectShape:
		return "rect"
	case *scene.PolygonShape:
		return "sawtooth"
	default:
		return "shape"
	}
}

func formatRect(r scene.Rect) string {
	return fmt.Sprintf("%.1f,%.1f %.1fx%.1f", r.X, r.Y, r.Width, r.Height)
}
