package gfx

import (
	"errors"
	"fmt"
	"testing"
)

func TestCompileErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *CompileError
		want string
	}{
		{
			"vertex stage",
			&CompileError{Stage: "vertex", Log: "0:3: syntax error\n\x00"},
			"failed to compile vertex shader: 0:3: syntax error",
		},
		{
			"fragment stage",
			&CompileError{Stage: "fragment", Log: "undeclared identifier 'uColr'"},
			"failed to compile fragment shader: undeclared identifier 'uColr'",
		},
		{
			"link",
			&CompileError{Stage: "program", Log: "vertex output 'color' not read\x00\x00"},
			"failed to link program shader: vertex output 'color' not read",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompileErrorUnwrapsWithAs(t *testing.T) {
	err := fmt.Errorf("scene shader: %w", &CompileError{Stage: "fragment", Log: "oops"})

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As should find the *CompileError")
	}
	if ce.Stage != "fragment" {
		t.Errorf("Stage = %q, want fragment", ce.Stage)
	}
}
