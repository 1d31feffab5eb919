package engine

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const floatSize = 4 // float32 - gl.FLOAT

// VertexLayout holds the size in floats of each interleaved attribute,
// the index is the attribute location
type VertexLayout []int

var PositionLayout = VertexLayout{3}

func (l VertexLayout) Components() int {
	var n int
	for _, s := range l {
		n += s
	}
	return n
}

// Stride in bytes
func (l VertexLayout) Stride() int32 {
	return int32(l.Components() * floatSize)
}

// Offsets in bytes
func (l VertexLayout) Offsets() []int {
	offsets := make([]int, len(l))
	var o int
	for i, s := range l {
		offsets[i] = o
		o += s * floatSize
	}
	return offsets
}

// Count returns the number of vertices in data
func (l VertexLayout) Count(data []float32) (int, error) {
	for i, s := range l {
		if s < 1 || s > 4 {
			return 0, fmt.Errorf("attribute %d: invalid size %d", i, s)
		}
	}

	c := l.Components()
	if c == 0 {
		return 0, fmt.Errorf("empty vertex layout")
	}
	if len(data) == 0 || len(data)%c != 0 {
		return 0, fmt.Errorf("%d floats are not a whole number of %d component vertices", len(data), c)
	}
	return len(data) / c, nil
}

type Mesh struct {
	vertexArrayObject uint32
	vertexBuffer      uint32
	count             int32
}

// NewMesh uploads static vertex data
func NewMesh(vertices []float32, layout VertexLayout) (*Mesh, error) {
	n, err := layout.Count(vertices)
	if err != nil {
		return nil, err
	}

	m := &Mesh{count: int32(n)}

	gl.GenVertexArrays(1, &m.vertexArrayObject) // vao
	gl.GenBuffers(1, &m.vertexBuffer)           // vbo

	gl.BindVertexArray(m.vertexArrayObject)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := layout.Stride()
	for i, o := range layout.Offsets() {
		gl.VertexAttribPointer(uint32(i), int32(layout[i]), gl.FLOAT, false, stride, gl.PtrOffset(o))
		gl.EnableVertexAttribArray(uint32(i))
	}

	// the vao keeps the buffer binding
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m, nil
}

func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vertexArrayObject)
}

func (m *Mesh) Draw() {
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

func (m *Mesh) Dispose() {
	if m.vertexBuffer != 0 {
		gl.DeleteBuffers(1, &m.vertexBuffer)
		m.vertexBuffer = 0
	}
	if m.vertexArrayObject != 0 {
		gl.DeleteVertexArrays(1, &m.vertexArrayObject)
		m.vertexArrayObject = 0
	}
}
