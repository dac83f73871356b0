package main

import (
	"github.com/braheezy/cg-exercises/gfx"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	quadVertices = []float32{
		// pos      // tex
		-0.5, -0.5, 0.0, 0.0,
		0.5, -0.5, 1.0, 0.0,
		0.5, 0.5, 1.0, 1.0,
		-0.5, 0.5, 0.0, 1.0,
	}
	quadIndices = []uint32{
		0, 1, 2, // first triangle
		2, 3, 0, // second triangle
	}
)

// Sprite is one textured quad with a fixed placement.
type Sprite struct {
	shader   *gfx.Shader
	quad     *gfx.VertexArray
	texture  *gfx.Texture2D
	position mgl32.Vec2
	scale    mgl32.Vec2
	// radians, counter-clockwise around z
	rotation float32
}

// NewSprite uploads a unit quad and loads its texture. A texture that fails
// to load is logged and the sprite draws blank.
func NewSprite(shader *gfx.Shader, imagePath string, position, scale mgl32.Vec2, rotation float32) *Sprite {
	return &Sprite{
		shader:   shader,
		quad:     gfx.NewVertexArray(quadVertices, quadIndices, 2, 2),
		texture:  gfx.LoadTexture(imagePath),
		position: position,
		scale:    scale,
		rotation: rotation,
	}
}

// Model is translate(position) * rotateZ(rotation) * scale(scale).
func (s *Sprite) Model() mgl32.Mat4 {
	model := mgl32.Ident4()
	model = model.Mul4(mgl32.Translate3D(s.position.X(), s.position.Y(), 0.0))
	model = model.Mul4(mgl32.HomogRotate3DZ(s.rotation))
	model = model.Mul4(mgl32.Scale3D(s.scale.X(), s.scale.Y(), 1.0))
	return model
}

func (s *Sprite) Draw(projection mgl32.Mat4) {
	s.shader.Use()
	s.shader.SetMat4("model", s.Model())
	s.shader.SetMat4("projection", projection)

	gl.ActiveTexture(gl.TEXTURE0)
	s.texture.Bind()
	s.quad.Draw()
}

func (s *Sprite) Delete() {
	s.quad.Delete()
	s.texture.Delete()
}
