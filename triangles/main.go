// Command triangles draws five colored triangles in pixel space. Holding the
// left mouse button drags the whole set along with the cursor; Escape quits.
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
)

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
	layoutPath := flag.String("layout", "", "Wavefront OBJ `file` with the triangles to draw (default: built-in five)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	gfx.SetLogger(gfx.NewTextLogger(os.Stderr, *verbose))

	triangles := defaultLayout
	if *layoutPath != "" {
		var err error
		triangles, err = LoadLayout(*layoutPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	//* GLFW init, window creation and GL loading
	cfg := gfx.DefaultWindowConfig("5 Triangles")
	cfg.Resizable = true
	cfg.Samples = 4
	window, err := gfx.OpenWindow(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	shader, err := gfx.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Fatal(err)
	}
	defer shader.Delete()

	// One VAO per triangle, uploaded once.
	vaos := make([]*gfx.VertexArray, 0, len(triangles))
	for _, t := range triangles {
		vaos = append(vaos, gfx.NewVertexArray(t.Vertices(), nil, 3, 3))
	}
	defer func() {
		for _, vao := range vaos {
			vao.Delete()
		}
	}()

	scene := NewScene(cfg.Width, cfg.Height)
	var commands gfx.Queue[Translate]

	for !window.ShouldClose() {
		glfw.PollEvents()

		//* manage user input
		processInput(window, &commands)
		commands.Drain(scene.Apply)

		//* render
		gl.ClearColor(0.4, 0.65, 0.8, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		width, height := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))

		shader.Use()
		shader.SetMat4("proj", scene.Projection)
		shader.SetMat4("matrix", scene.Transform)
		for _, vao := range vaos {
			vao.Draw()
		}
		gl.BindVertexArray(0)

		window.SwapBuffers()
	}
}

// processInput turns the held left button into a Translate command and
// closes the window on Escape.
func processInput(w *glfw.Window, commands *gfx.Queue[Translate]) {
	if w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
		x, y := w.GetCursorPos()
		commands.Push(Translate{X: x, Y: y})
	}
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}
