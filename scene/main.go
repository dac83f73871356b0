// Command scene composes a textured background and foreground sprites, each
// placed by its own model transform.
package main

import (
	_ "embed"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/braheezy/cg-exercises/gfx"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed shaders/sprite.vs
	vertexShaderSource string
	//go:embed shaders/sprite.fs
	fragmentShaderSource string
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	runtime.LockOSThread()
}

func main() {
	scenePath := flag.String("scene", "", "YAML scene `file` (default: built-in scene)")
	assetsDir := flag.String("assets", "", "`directory` relative image paths are resolved against")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := gfx.NewTextLogger(os.Stderr, *verbose)
	gfx.SetLogger(logger)

	layout, err := LoadLayout(*scenePath)
	if err != nil {
		log.Fatal(err)
	}
	layout.Rebase(*assetsDir)

	cfg := gfx.DefaultWindowConfig("Composite Scene")
	window, err := gfx.OpenWindow(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	//* OpenGL configuration
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	shader, err := gfx.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Fatal(err)
	}
	defer shader.Delete()
	shader.Use().SetInt("texture1", 0)

	// Origin bottom left, one unit per pixel.
	projection := mgl32.Ortho(0, float32(cfg.Width), 0, float32(cfg.Height), -1, 1)

	placements := layout.All()
	sprites := make([]*Sprite, 0, len(placements))
	for _, p := range placements {
		sprites = append(sprites, NewSprite(shader, p.Image, p.PositionVec(), p.ScaleVec(), p.Radians()))
	}
	defer func() {
		for _, s := range sprites {
			s.Delete()
		}
	}()
	logger.Info("scene loaded", "sprites", len(sprites))

	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// background first, then the foreground in order
		for _, s := range sprites {
			s.Draw(projection)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
