// Package breakarea draws collapsed axis breaks and expands them on click.
//
// Three pieces cooperate:
//
//   - RectFor maps a break to the screen rectangle it covers in the plot.
//   - Renderer.BuildClipGroup builds one shape per collapsed break: a plain
//     rectangle on horizontal axes, a sawtooth polygon on vertical axes,
//     all clipped to the plot rectangle.
//   - Renderer paints either set of shapes into an axis group with the
//     break-area style and wires clicks to Scale.ExpandBreak followed by an
//     action.AxisBreakExpand notification.
//
// The renderer never redraws on its own. Whoever handles the
// notification is expected to relayout and rebuild the axis group, which
// drops the shape of the expanded break.
package breakarea
