// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints a retained scene into an *image.RGBA.
//
// Shapes are rasterized into anti-aliased coverage masks with
// golang.org/x/image/vector and composited with the Over operator. Each
// shape paints, in order, its fill, its decal pattern and its border.
// Group clip paths are rasterized the same way and multiplied into the
// coverage of every shape underneath them.
//
// # Usage
//
//	img := render.NewCanvas(640, 480, ggchart.White)
//	render.Draw(img, root)
package render
