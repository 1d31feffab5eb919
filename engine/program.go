package engine

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

type Program struct {
	program uint32
}

// NewProgram compiles and links a vertex and a fragment shader source,
// the shader objects are deleted again in any case
func NewProgram(vertex, fragment string) (*Program, error) {
	// vertex shader
	vshader, err := compileShader(StageVertex, vertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vshader)

	// fragment shader
	fshader, err := compileShader(StageFragment, fragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fshader)

	// program
	prg, err := linkProgram(vshader, fshader)
	if err != nil {
		return nil, err
	}

	return &Program{program: prg}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Dispose() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
