// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates vertex and index data for simple flat
// shapes in the z = 0 plane, wound counter-clockwise as seen from +z.
package shape

import (
	"github.com/chewxy/math32"
	"github.com/genesis-engine/genesis/gpu"
)

// Polygon returns a regular polygon with the given number of sides
// centered at (cx, cy), with its first vertex straight up, as a
// triangle fan around that vertex. It returns nil for fewer than
// 3 sides.
func Polygon(sides int, cx, cy, radius float32, color [4]float32) (gpu.ColorVertices, []uint16) {
	if sides < 3 {
		return nil, nil
	}
	verts := make(gpu.ColorVertices, sides)
	for i := range verts {
		ang := math32.Pi/2 + 2*math32.Pi*float32(i)/float32(sides)
		verts[i] = gpu.ColorVertex{
			Position: [3]float32{cx + radius*math32.Cos(ang), cy + radius*math32.Sin(ang), 0},
			Color:    color,
		}
	}
	indices := make([]uint16, 0, 3*(sides-2))
	for i := 1; i < sides-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return verts, indices
}

// Quad returns a textured rectangle from (x0, y0) to (x1, y1), with
// texture coordinates (0, 0) at the top left.
func Quad(x0, y0, x1, y1 float32) (gpu.TexVertices, []uint16) {
	verts := gpu.TexVertices{
		{Position: [3]float32{x0, y1, 0}, TexCoords: [2]float32{0, 0}},
		{Position: [3]float32{x0, y0, 0}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{x1, y0, 0}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{x1, y1, 0}, TexCoords: [2]float32{1, 0}},
	}
	return verts, []uint16{0, 1, 2, 0, 2, 3}
}

// Triangle returns an upward triangle centered at (cx, cy) with a red,
// green and blue corner, for non-indexed drawing.
func Triangle(cx, cy, size float32) gpu.ColorVertices {
	h := size / 2
	return gpu.ColorVertices{
		{Position: [3]float32{cx, cy + h, 0}, Color: [4]float32{1, 0, 0, 1}},
		{Position: [3]float32{cx - h, cy - h, 0}, Color: [4]float32{0, 1, 0, 1}},
		{Position: [3]float32{cx + h, cy - h, 0}, Color: [4]float32{0, 0, 1, 1}},
	}
}
