package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileError carries the driver's info log for a shader stage that failed
// to compile, or for a program that failed to link.
type CompileError struct {
	// "vertex", "fragment" or "program"
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	verb := "compile"
	if e.Stage == "program" {
		verb = "link"
	}
	return fmt.Sprintf("failed to %s %s shader: %s", verb, e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

type Shader struct {
	id uint32
}

// NewShader compiles a vertex and fragment stage and links them into a program.
func NewShader(vertexShaderSource, fragmentShaderSource string) (*Shader, error) {
	vertexShader, err := compileStage(gl.VERTEX_SHADER, vertexShaderSource, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileStage(gl.FRAGMENT_SHADER, fragmentShaderSource, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	// Link all shaders together to form a shader program, which is used during rendering.
	ID := gl.CreateProgram()
	gl.AttachShader(ID, vertexShader)
	gl.AttachShader(ID, fragmentShader)
	gl.LinkProgram(ID)

	var success int32
	gl.GetProgramiv(ID, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(ID, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(ID, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(ID)
		return nil, &CompileError{Stage: "program", Log: infoLog}
	}

	Logger().Debug("shader program linked", "id", ID)
	return &Shader{id: ID}, nil
}

func compileStage(kind uint32, source, stage string) (uint32, error) {
	shader := gl.CreateShader(kind)
	// The source must be a null-terminated C string.
	sourceString, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, sourceString, nil)
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

func (s *Shader) ID() uint32 { return s.id }

func (s *Shader) Use() *Shader {
	gl.UseProgram(s.id)
	return s
}

func (s *Shader) Delete() {
	gl.DeleteProgram(s.id)
}

// Uniform locations are looked up on every call.
func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.id, gl.Str(name+"\x00"))
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2fv(s.location(name), 1, &value[0])
}

func (s *Shader) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &value[0])
}

func (s *Shader) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}
