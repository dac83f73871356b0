package gfx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
)

func encodePNG(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return &buf
}

func TestDecodePixelsFlipsRows(t *testing.T) {
	// 2x2: top row red/green, bottom row blue/half-transparent white.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 128})

	pix, w, h, err := DecodePixels(encodePNG(t, img))
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if w != 2 || h != 2 {
		t.Fatalf("size = %dx%d, want 2x2", w, h)
	}
	want := []byte{
		0, 0, 255, 255, 255, 255, 255, 128, // bottom row first
		255, 0, 0, 255, 0, 255, 0, 255,
	}
	if !bytes.Equal(pix, want) {
		t.Errorf("pixels = %v, want %v", pix, want)
	}
}

func TestDecodePixelsOpaqueRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	for x := 0; x < 3; x++ {
		img.Set(x, 0, color.RGBA{10, 20, 30, 255})
	}

	pix, w, h, err := DecodePixels(encodePNG(t, img))
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if len(pix) != w*h*4 {
		t.Fatalf("len(pix) = %d, want %d", len(pix), w*h*4)
	}
	for i := 0; i < len(pix); i += 4 {
		if got := pix[i : i+4]; !bytes.Equal(got, []byte{10, 20, 30, 255}) {
			t.Errorf("pixel %d = %v", i/4, got)
		}
	}
}

func TestDecodePixelsRejectsGarbage(t *testing.T) {
	_, _, _, err := DecodePixels(strings.NewReader("definitely not an image"))
	if err == nil {
		t.Fatal("expected an error for undecodable input")
	}
}

func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestDecodePixelsHDRKeepsHue(t *testing.T) {
	img := hdr.NewRGB(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, hdrcolor.RGB{R: 4, G: 0, B: 0})
	img.Set(1, 0, hdrcolor.RGB{R: 0.1, G: 0.1, B: 0.1})

	var buf bytes.Buffer
	if err := rgbe.Encode(&buf, img); err != nil {
		t.Fatalf("rgbe.Encode: %v", err)
	}

	pix, w, h, err := DecodePixels(&buf)
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if w != 2 || h != 1 {
		t.Fatalf("size = %dx%d, want 2x1", w, h)
	}

	red, grey := pix[0:4], pix[4:8]
	if red[0] <= red[1] || red[0] <= red[2] {
		t.Errorf("red texel = %v, want red to dominate", red)
	}
	if absDiff(grey[0], grey[1]) > 2 || absDiff(grey[1], grey[2]) > 2 {
		t.Errorf("grey texel = %v, want equal channels", grey)
	}
	if red[3] != 255 || grey[3] != 255 {
		t.Errorf("alpha = %d, %d, want opaque", red[3], grey[3])
	}
}
