package main

import "github.com/go-gl/mathgl/mgl32"

// Triangle is three corners in window pixel coordinates, y pointing down.
type Triangle [3]mgl32.Vec2

// Per-corner colors, in corner order.
var vertexColors = [3]mgl32.Vec3{
	{0.0, 0.0, 1.0}, // blue
	{1.0, 0.0, 0.0}, // red
	{0.0, 1.0, 0.0}, // green
}

// floats per vertex: position (3) + color (3)
const vertexStride = 6

// Vertices returns the interleaved buffer for one triangle: three vertices of
// x, y, 0 followed by the corner color.
func (t Triangle) Vertices() []float32 {
	vertices := make([]float32, 0, 3*vertexStride)
	for i, p := range t {
		c := vertexColors[i]
		vertices = append(vertices, p.X(), p.Y(), 0.0, c.X(), c.Y(), c.Z())
	}
	return vertices
}

var defaultLayout = []Triangle{
	{{100, 100}, {150, 50}, {200, 100}},  // bottom left
	{{300, 150}, {350, 50}, {400, 150}},  // bottom center
	{{500, 100}, {550, 50}, {600, 100}},  // bottom right
	{{200, 300}, {250, 250}, {300, 300}}, // middle left
	{{500, 300}, {550, 250}, {600, 300}}, // middle right
}
