package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
	StageLink     Stage = "link"
)

// ShaderError is returned on a failed compile or link, Log is the driver info log
type ShaderError struct {
	Stage Stage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == StageLink {
		return fmt.Sprintf("linker error: %s", e.Log)
	}
	return fmt.Sprintf("%s shader error: %s", e.Stage, e.Log)
}

func (s Stage) glType() uint32 {
	if s == StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func compileShader(stage Stage, source string) (uint32, error) {
	shader := gl.CreateShader(stage.glType())

	csources, free := gl.Strs(terminate(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		info := make([]byte, length+1)
		gl.GetShaderInfoLog(shader, length, nil, &info[0])

		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: cleanInfoLog(info)}
	}

	return shader, nil
}

func linkProgram(shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		info := make([]byte, length+1)
		gl.GetProgramInfoLog(program, length, nil, &info[0])

		gl.DeleteProgram(program)
		return 0, &ShaderError{Stage: StageLink, Log: cleanInfoLog(info)}
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}

	return program, nil
}

// gl expects null terminated sources
func terminate(source string) string {
	if strings.HasSuffix(source, "\x00") {
		return source
	}
	return source + "\x00"
}

func cleanInfoLog(info []byte) string {
	if i := strings.IndexByte(string(info), 0); i >= 0 {
		info = info[:i]
	}
	s := strings.TrimSpace(string(info))
	if s == "" {
		return "no info log"
	}
	return s
}
