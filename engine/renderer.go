package engine

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Drawable interface {
	Program() *Program
	Mesh() *Mesh
}

// binder issues the state changes and draws of a frame, nil unbinds
type binder interface {
	clear()
	useProgram(p *Program)
	bindMesh(m *Mesh)
	draw(m *Mesh)
}

type glBinder struct{}

func (glBinder) clear() { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (glBinder) useProgram(p *Program) {
	if p == nil {
		gl.UseProgram(0)
		return
	}
	p.Use()
}

func (glBinder) bindMesh(m *Mesh) {
	if m == nil {
		gl.BindVertexArray(0)
		return
	}
	m.Bind()
}

func (glBinder) draw(m *Mesh) { m.Draw() }

type Renderer struct {
	binder binder

	clearColor mgl32.Vec4
	wireframe  bool

	currentProgram *Program
	currentMesh    *Mesh

	drawCalls, programSwitches int
}

func NewRenderer(clear mgl32.Vec4) *Renderer {
	r := &Renderer{binder: glBinder{}}
	r.SetClearColor(clear)
	return r
}

func (r *Renderer) SetClearColor(c mgl32.Vec4) {
	r.clearColor = c
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (r *Renderer) SetWireframe(w bool) {
	r.wireframe = w
	if w {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// Render clears the color buffer and draws items in order
func (r *Renderer) Render(items ...Drawable) {
	r.drawCalls, r.programSwitches = 0, 0

	r.binder.clear()

	for _, it := range items {
		p, m := it.Program(), it.Mesh()
		if p == nil || m == nil {
			continue
		}

		if p != r.currentProgram {
			r.binder.useProgram(p)
			r.currentProgram = p
			r.programSwitches++
		}
		if m != r.currentMesh {
			r.binder.bindMesh(m)
			r.currentMesh = m
		}

		r.binder.draw(m)
		r.drawCalls++
	}
}

// Reset forgets bound state, call after disposing programs or meshes
func (r *Renderer) Reset() {
	r.currentProgram = nil
	r.currentMesh = nil
	r.binder.useProgram(nil)
	r.binder.bindMesh(nil)
}

// DrawCalls of the last frame
func (r *Renderer) DrawCalls() int {
	return r.drawCalls
}

// ProgramSwitches of the last frame
func (r *Renderer) ProgramSwitches() int {
	return r.programSwitches
}
