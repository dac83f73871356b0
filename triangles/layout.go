package main

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

var (
	errEmptyLayout = errors.New("layout has no triangles")
	// gwob drops face indices that point past the vertex list, which leaves
	// a face with fewer than three corners.
	errInvalidFaces = errors.New("layout has faces referencing missing vertices")
)

// LoadLayout reads a Wavefront OBJ file and returns one Triangle per face.
// Only the x and y of each vertex position are used.
func LoadLayout(path string) ([]Triangle, error) {
	options := &gwob.ObjParserOptions{}
	obj, err := gwob.NewObjFromFile(path, options)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	triangles, err := trianglesFromObj(obj)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return triangles, nil
}

func trianglesFromObj(obj *gwob.Obj) ([]Triangle, error) {
	if len(obj.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w (%d indices left after parsing)", errInvalidFaces, len(obj.Indices))
	}
	if len(obj.Indices) == 0 {
		return nil, errEmptyLayout
	}

	// Coord is interleaved; StrideSize and the offsets are in bytes.
	floatStride := obj.StrideSize / 4
	positionOffset := obj.StrideOffsetPosition / 4

	triangles := make([]Triangle, 0, len(obj.Indices)/3)
	for i := 0; i < len(obj.Indices); i += 3 {
		var t Triangle
		for corner := 0; corner < 3; corner++ {
			off := obj.Indices[i+corner]*floatStride + positionOffset
			if off+1 >= len(obj.Coord) {
				return nil, fmt.Errorf("%w: vertex index %d out of range", errInvalidFaces, obj.Indices[i+corner])
			}
			t[corner] = mgl32.Vec2{obj.Coord[off], obj.Coord[off+1]}
		}
		triangles = append(triangles, t)
	}
	return triangles, nil
}
