// Package gfx holds the GL plumbing the exercises share: window bring-up,
// shader compilation, texture loading and vertex upload.
package gfx

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	// ErrWindowCreate is returned when GLFW cannot initialize or open a window.
	ErrWindowCreate = errors.New("gfx: failed to create GLFW window")
	// ErrLoaderInit is returned when OpenGL function pointers cannot be loaded.
	ErrLoaderInit = errors.New("gfx: failed to load OpenGL functions")
)

type WindowConfig struct {
	Title         string
	Width, Height int
	// requested OpenGL context version
	Major, Minor int
	ForwardCompat bool
	Resizable     bool
	// MSAA samples, 0 leaves the GLFW default
	Samples int
}

// DefaultWindowConfig is the 800x600 core-profile window every exercise uses.
func DefaultWindowConfig(title string) WindowConfig {
	return WindowConfig{
		Title:         title,
		Width:         800,
		Height:        600,
		Major:         4,
		Minor:         1,
		ForwardCompat: true,
	}
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// OpenWindow initializes GLFW, creates a window with the given hints, makes
// its context current and loads OpenGL. The caller owns glfw.Terminate once
// OpenWindow returns without error; on error GLFW is already terminated.
//
// Must be called from the main OS thread.
func OpenWindow(cfg WindowConfig) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(cfg.ForwardCompat))
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	if cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, cfg.Samples)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	window.MakeContextCurrent()

	// Load OS-specific OpenGL function pointers
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrLoaderInit, err)
	}

	Logger().Info("window ready",
		"title", cfg.Title,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	return window, nil
}
