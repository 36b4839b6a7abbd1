package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Shader struct {
	id uint32
}

func NewShader(vertexPath string, fragmentPath string) (*Shader, error) {
	// Read shader programs from disk.
	data, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not open shader file: %w", err)
	}
	vertexShaderSource := string(data)
	data, err = os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not open shader file: %w", err)
	}
	fragmentShaderSource := string(data)

	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexShaderSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	// Link both stages into the program used during rendering.
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
		return nil, fmt.Errorf("failed to link shader program: %v", infoLog)
	}

	return &Shader{id: ID}, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	// The source must be a null-terminated string in C flavor.
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

		name := "fragment"
		if shaderType == gl.VERTEX_SHADER {
			name = "vertex"
		}
		return 0, fmt.Errorf("failed to compile %v shader: %v", name, infoLog)
	}
	return shader, nil
}

func (s *Shader) use() *Shader {
	gl.UseProgram(s.id)
	return s
}

func (s *Shader) delete() {
	gl.DeleteProgram(s.id)
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.id, gl.Str(name+"\x00"))
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &value[0])
}

func (s *Shader) SetMat3(name string, value mgl32.Mat3) {
	gl.UniformMatrix3fv(s.location(name), 1, false, &value[0])
}

func (s *Shader) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}
