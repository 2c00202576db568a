// Package stroke expands stroked polylines into filled outlines.
//
// A stroke is built from two offset paths running half the line width
// either side of the centerline:
//  1. the forward path, kept in order
//  2. an end cap joining forward to backward
//  3. the backward path, reversed
//  4. a start cap closing the outline
//
// Closed polylines produce two rings instead, the outer and inner offset
// paths, with opposite orientation so a nonzero fill leaves the middle
// empty.
//
// # Line Caps
//
//   - LineCapButt: flat cap ending exactly at the endpoint
//   - LineCapRound: semicircle of radius width/2
//   - LineCapSquare: square extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, falling back to bevel past the miter
//     limit
//   - LineJoinRound: circular arc around the corner
//   - LineJoinBevel: straight cut across the corner
//
// Round caps and joins are flattened to line segments within the
// expander tolerance, so every ring can be fed straight to a polygon
// rasterizer.
package stroke
