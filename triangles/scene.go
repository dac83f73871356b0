package main

import "github.com/go-gl/mathgl/mgl32"

// Translate moves the whole triangle set so the window center follows the
// cursor at X, Y (window pixels).
type Translate struct {
	X, Y float64
}

// Scene is the render state: the pixel-space projection and the single
// transform shared by every triangle.
type Scene struct {
	Width, Height int
	Projection    mgl32.Mat4
	Transform     mgl32.Mat4
}

func NewScene(width, height int) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		Projection: mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1),
		Transform:  mgl32.Ident4(),
	}
}

// TranslationFor returns the transform for a cursor at x, y: a translation
// by the cursor's offset from the window center.
func TranslationFor(x, y float64, width, height int) mgl32.Mat4 {
	dx := x - float64(width)/2
	dy := y - float64(height)/2
	return mgl32.Translate3D(float32(dx), float32(dy), 0)
}

// Apply replaces the shared transform; translations do not accumulate.
func (s *Scene) Apply(cmd Translate) {
	s.Transform = TranslationFor(cmd.X, cmd.Y, s.Width, s.Height)
}
