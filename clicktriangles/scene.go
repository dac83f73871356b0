package main

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape shared by every spawned triangle, in normalized device coordinates
// around its position.
var triangleVertices = []float32{
	-0.1, -0.1, 0.0,
	0.1, -0.1, 0.0,
	0.0, 0.1, 0.0,
}

// AddTriangle asks for a new triangle under the window pixel X, Y.
type AddTriangle struct {
	X, Y float64
}

type Triangle struct {
	Position mgl32.Vec2
	Color    mgl32.Vec3
}

// Scene holds every triangle spawned so far, oldest first. Triangles are
// only ever appended.
type Scene struct {
	Width, Height int
	Triangles     []Triangle
	rng           *rand.Rand
}

func NewScene(width, height int, seed uint64) *Scene {
	return &Scene{
		Width:  width,
		Height: height,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// ToNDC converts a window pixel position (origin top left, y down) to
// normalized device coordinates.
func ToNDC(x, y float64, width, height int) mgl32.Vec2 {
	normX := (float32(x)/float32(width))*2.0 - 1.0
	normY := 1.0 - (float32(y)/float32(height))*2.0
	return mgl32.Vec2{normX, normY}
}

func (s *Scene) randomColor() mgl32.Vec3 {
	return mgl32.Vec3{s.rng.Float32(), s.rng.Float32(), s.rng.Float32()}
}

// Apply appends one triangle at the command's position and returns it.
func (s *Scene) Apply(cmd AddTriangle) Triangle {
	tri := Triangle{
		Position: ToNDC(cmd.X, cmd.Y, s.Width, s.Height),
		Color:    s.randomColor(),
	}
	s.Triangles = append(s.Triangles, tri)
	return tri
}
