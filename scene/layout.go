package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed scene.yaml
var defaultSceneYAML []byte

// Placement describes one sprite of the scene.
type Placement struct {
	Image    string     `yaml:"image"`
	Position [2]float32 `yaml:"position"`
	Scale    [2]float32 `yaml:"scale"`
	// degrees
	Rotation float32 `yaml:"rotation"`
}

func (p Placement) PositionVec() mgl32.Vec2 { return mgl32.Vec2(p.Position) }
func (p Placement) ScaleVec() mgl32.Vec2    { return mgl32.Vec2(p.Scale) }
func (p Placement) Radians() float32        { return mgl32.DegToRad(p.Rotation) }

// Layout is the background followed by the foreground sprites, drawn in
// that order.
type Layout struct {
	Background Placement   `yaml:"background"`
	Sprites    []Placement `yaml:"sprites"`
}

// All returns the background first, then the sprites.
func (l *Layout) All() []Placement {
	return append([]Placement{l.Background}, l.Sprites...)
}

// DecodeLayout reads a YAML scene description.
func DecodeLayout(r io.Reader) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("scene description is empty")
		}
		return nil, fmt.Errorf("parse scene description: %w", err)
	}
	if l.Background.Image == "" {
		return nil, errors.New("scene description has no background image")
	}
	for i, p := range l.Sprites {
		if p.Image == "" {
			return nil, fmt.Errorf("sprite %d has no image", i)
		}
	}
	for _, p := range l.All() {
		if p.Scale[0] == 0 || p.Scale[1] == 0 {
			return nil, fmt.Errorf("%s: scale %v collapses the sprite", p.Image, p.Scale)
		}
	}
	return &l, nil
}

// LoadLayout reads the scene description at path, or the built-in scene
// when path is empty.
func LoadLayout(path string) (*Layout, error) {
	if path == "" {
		return DecodeLayout(bytes.NewReader(defaultSceneYAML))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := DecodeLayout(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Rebase joins every relative image path onto dir. Absolute paths and an
// empty dir are left alone.
func (l *Layout) Rebase(dir string) {
	if dir == "" {
		return
	}
	rebase := func(p *Placement) {
		if !filepath.IsAbs(p.Image) {
			p.Image = filepath.Join(dir, p.Image)
		}
	}
	rebase(&l.Background)
	for i := range l.Sprites {
		rebase(&l.Sprites[i])
	}
}
