// Package ggchart renders axis breaks for charts drawn on a retained 2D
// scene.
//
// # Overview
//
// An axis break is a sub-range of an axis domain that is collapsed out of
// the plot area. ggchart draws collapsed breaks either as plain
// rectangles or, on vertical axes, as sawtooth ("torn paper") polygons,
// and expands a break when its shape is clicked.
//
// The root package holds the paint vocabulary shared by the sub-packages:
// colors, brushes, item styles, decal patterns and the logger.
//
// # Packages
//
//   - scene: retained visual nodes with click bindings and clip paths
//   - axis: break bookkeeping and the axis coordinate contract
//   - breakarea: break geometry, sawtooth clip groups and the renderer
//   - action: the action pipeline that receives expansion requests
//   - render: software rasterizer for scenes
//   - config: chart options loaded from TOML or YAML
//   - chart: ties the pieces together into a redrawable chart
//
// # Coordinate System
//
// Screen coordinates: origin at top-left, X increases right, Y increases
// down. Vertical value axes therefore usually map increasing data values
// to decreasing Y.
package ggchart
