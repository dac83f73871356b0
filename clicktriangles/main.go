// Command clicktriangles spawns a randomly colored triangle wherever the
// window is left-clicked.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/braheezy/cg-exercises/gfx"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const windowTitle = "Triangles"

var (
	//go:embed shaders/triangle.vs
	vertexShaderSource string
	//go:embed shaders/triangle.fs
	fragmentShaderSource string
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	runtime.LockOSThread()
}

func main() {
	seedFlag := flag.Uint64("seed", 0, "color generator seed (default: current time)")
	mute := flag.Bool("mute", false, "do not play a sound when a triangle spawns")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := gfx.NewTextLogger(os.Stderr, *verbose)
	gfx.SetLogger(logger)

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	seed := resolveSeed(*seedFlag, seedSet, time.Now())

	cfg := gfx.DefaultWindowConfig(windowTitle)
	window, err := gfx.OpenWindow(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	var commands gfx.Queue[AddTriangle]
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Press {
			x, y := w.GetCursorPos()
			commands.Push(AddTriangle{X: x, Y: y})
		}
	})

	var pop *Sound
	if !*mute {
		pop, err = NewSound("sounds/pop.qoa")
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		}
	}

	shader, err := gfx.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Fatal(err)
	}
	defer shader.Delete()

	triangleVAO := gfx.NewVertexArray(triangleVertices, nil, 3)
	defer triangleVAO.Delete()

	scene := NewScene(cfg.Width, cfg.Height, seed)
	logger.Debug("scene ready", "seed", seed)

	for !window.ShouldClose() {
		glfw.PollEvents()

		//* apply clicks collected by the callback, in order
		if commands.Len() > 0 {
			commands.Drain(func(cmd AddTriangle) {
				tri := scene.Apply(cmd)
				logger.Debug("triangle added", "x", cmd.X, "y", cmd.Y, "ndc", tri.Position, "color", tri.Color)
				pop.Play()
			})
			window.SetTitle(fmt.Sprintf("%s (%d)", windowTitle, len(scene.Triangles)))
		}

		//* render
		gl.ClearColor(0.2, 0.25, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.Use()
		triangleVAO.Bind()
		for _, tri := range scene.Triangles {
			shader.SetVec2("uPosition", tri.Position)
			shader.SetVec3("uColor", tri.Color)
			gl.DrawArrays(gl.TRIANGLES, 0, triangleVAO.VertexCount())
		}
		gl.BindVertexArray(0)

		window.SwapBuffers()
	}
	logger.Debug("closing", "triangles", len(scene.Triangles))
}

// resolveSeed keeps an explicitly given seed, zero included, and otherwise
// derives one from now.
func resolveSeed(seed uint64, set bool, now time.Time) uint64 {
	if set {
		return seed
	}
	return uint64(now.UnixNano())
}
