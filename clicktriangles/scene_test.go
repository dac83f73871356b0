package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestToNDC(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want mgl32.Vec2
	}{
		{"center", 400, 300, mgl32.Vec2{0, 0}},
		{"top left", 0, 0, mgl32.Vec2{-1, 1}},
		{"bottom right", 800, 600, mgl32.Vec2{1, -1}},
		{"quarter", 200, 150, mgl32.Vec2{-0.5, 0.5}},
		{"three quarters", 600, 450, mgl32.Vec2{0.5, -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNDC(tt.x, tt.y, 800, 600); !got.ApproxEqual(tt.want) {
				t.Errorf("ToNDC(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestApplyAppendsOneTriangle(t *testing.T) {
	s := NewScene(800, 600, 1)

	clicks := []AddTriangle{{400, 300}, {0, 0}, {800, 600}}
	for i, c := range clicks {
		before := len(s.Triangles)
		tri := s.Apply(c)
		if got := len(s.Triangles); got != before+1 {
			t.Fatalf("click %d: len = %d, want %d", i, got, before+1)
		}
		if s.Triangles[len(s.Triangles)-1] != tri {
			t.Errorf("click %d: returned triangle is not the last one stored", i)
		}
		if want := ToNDC(c.X, c.Y, 800, 600); !tri.Position.ApproxEqual(want) {
			t.Errorf("click %d: position = %v, want %v", i, tri.Position, want)
		}
	}

	// Earlier triangles are left untouched.
	if !s.Triangles[0].Position.ApproxEqual(mgl32.Vec2{0, 0}) {
		t.Errorf("first triangle moved to %v", s.Triangles[0].Position)
	}
}

func TestClickAtCenterSpawnsAtOrigin(t *testing.T) {
	s := NewScene(800, 600, 42)
	tri := s.Apply(AddTriangle{X: 400, Y: 300})
	if !tri.Position.ApproxEqual(mgl32.Vec2{0.0, 0.0}) {
		t.Errorf("position = %v, want (0, 0)", tri.Position)
	}
}

func TestRandomColorsInUnitRange(t *testing.T) {
	s := NewScene(800, 600, 7)
	for i := 0; i < 100; i++ {
		c := s.Apply(AddTriangle{X: 10, Y: 10}).Color
		for j := 0; j < 3; j++ {
			if c[j] < 0 || c[j] >= 1 {
				t.Fatalf("triangle %d color component %d = %v, want [0, 1)", i, j, c[j])
			}
		}
	}
}

func TestSeedReproducesColors(t *testing.T) {
	a := NewScene(800, 600, 99)
	b := NewScene(800, 600, 99)
	for i := 0; i < 5; i++ {
		ca := a.Apply(AddTriangle{X: 1, Y: 1}).Color
		cb := b.Apply(AddTriangle{X: 1, Y: 1}).Color
		if ca != cb {
			t.Fatalf("triangle %d: colors %v and %v differ for the same seed", i, ca, cb)
		}
	}
}

func TestTriangleShape(t *testing.T) {
	if got := len(triangleVertices); got != 9 {
		t.Fatalf("len(triangleVertices) = %d, want 9 (3 vertices of xyz)", got)
	}
}
