package gfx

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/tmo"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

type Texture2D struct {
	// holds the ID of the texture object, used for all texture operations to reference to this particular texture
	ID uint32
	// width and height of loaded image in pixels, zero while blank
	Width, Height int32
	// wrapping mode on S and T axis
	WrapS, WrapT int32
	// filtering mode if texture pixels < screen pixels
	FilterMin int32
	// filtering mode if texture pixels > screen pixels
	FilterMax int32
}

// NewTexture generates a blank texture object with clamp-to-edge wrapping and
// linear filtering.
func NewTexture() *Texture2D {
	t := Texture2D{
		WrapS:     gl.CLAMP_TO_EDGE,
		WrapT:     gl.CLAMP_TO_EDGE,
		FilterMin: gl.LINEAR,
		FilterMax: gl.LINEAR,
	}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	t.applyParameters()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &t
}

func (tex *Texture2D) applyParameters() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, tex.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, tex.WrapT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, tex.FilterMin)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, tex.FilterMax)
}

// Generate uploads tightly packed RGBA pixel data and builds mipmaps.
func (tex *Texture2D) Generate(width, height int32, pixelData []byte) {
	tex.Width = width
	tex.Height = height

	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixelData))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	tex.applyParameters()
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (tex *Texture2D) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
}

func (tex *Texture2D) Delete() {
	gl.DeleteTextures(1, &tex.ID)
}

// LoadTexture creates a texture from an image file. A file that cannot be
// read or decoded is logged and leaves the texture blank; the returned
// texture is always a valid GL object.
func LoadTexture(path string) *Texture2D {
	tex := NewTexture()

	f, err := os.Open(path)
	if err != nil {
		Logger().Warn("failed to load texture", "path", path, "err", err)
		return tex
	}
	defer f.Close()

	pixelData, width, height, err := DecodePixels(f)
	if err != nil {
		Logger().Warn("failed to load texture", "path", path, "err", err)
		return tex
	}
	tex.Generate(int32(width), int32(height), pixelData)
	Logger().Debug("texture loaded", "path", path, "id", tex.ID, "width", width, "height", height)
	return tex
}

// DecodePixels decodes an image into non-premultiplied RGBA bytes, four per
// pixel, with the bottom row first as OpenGL expects. High dynamic range
// images are tone mapped first.
func DecodePixels(r io.Reader) ([]byte, int, int, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}
	if hdrImage, ok := img.(hdr.Image); ok {
		// Reinhard05 maps luminance, so hue survives the compression.
		img = tmo.NewDefaultReinhard05(hdrImage).Perform()
		Logger().Debug("tone mapped hdr image", "format", format)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, 0, 0, fmt.Errorf("decode image: empty %s image", format)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	// Flip vertically: texture coordinate v=0 is the bottom of the image.
	rowSize := width * 4
	pixelData := make([]byte, rowSize*height)
	for y := 0; y < height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+rowSize]
		copy(pixelData[(height-1-y)*rowSize:], src)
	}
	return pixelData, width, height, nil
}
