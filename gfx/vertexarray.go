package gfx

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = int32(unsafe.Sizeof(float32(0)))

// VertexArray owns a VAO with one interleaved float VBO and an optional EBO.
type VertexArray struct {
	VAO, VBO, EBO uint32
	vertexCount   int32
	indexCount    int32
}

// Stride returns the number of floats per vertex for the given attribute sizes.
func Stride(components ...int32) int32 {
	var stride int32
	for _, c := range components {
		stride += c
	}
	return stride
}

// NewVertexArray uploads interleaved vertex data once with STATIC_DRAW.
// Attribute i is bound to location i and spans components[i] floats.
// Passing nil indices makes Draw use glDrawArrays.
func NewVertexArray(vertices []float32, indices []uint32, components ...int32) *VertexArray {
	stride := Stride(components...)
	va := &VertexArray{
		vertexCount: int32(len(vertices)) / stride,
		indexCount:  int32(len(indices)),
	}

	gl.GenVertexArrays(1, &va.VAO)
	gl.GenBuffers(1, &va.VBO)

	// Bind VAO first, then bind VBO(s) and attribute pointers
	gl.BindVertexArray(va.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(floatSize), gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &va.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(indices[0])), gl.Ptr(indices), gl.STATIC_DRAW)
	}

	var offset int32
	for i, c := range components {
		gl.VertexAttribPointer(uint32(i), c, gl.FLOAT, false, stride*floatSize, gl.PtrOffset(int(offset*floatSize)))
		gl.EnableVertexAttribArray(uint32(i))
		offset += c
	}

	// The EBO binding is VAO state, so only the array buffer is unbound.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	Logger().Debug("vertex array uploaded", "vao", va.VAO, "vertices", va.vertexCount, "indices", va.indexCount)
	return va
}

func (va *VertexArray) VertexCount() int32 { return va.vertexCount }

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.VAO)
}

// Draw issues one draw call for the whole buffer as triangles.
func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.VAO)
	if va.indexCount > 0 {
		gl.DrawElements(gl.TRIANGLES, va.indexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, va.vertexCount)
	}
}

func (va *VertexArray) Delete() {
	if va.EBO != 0 {
		gl.DeleteBuffers(1, &va.EBO)
	}
	gl.DeleteBuffers(1, &va.VBO)
	gl.DeleteVertexArrays(1, &va.VAO)
}
