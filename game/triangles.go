package game

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Triangle struct {
	Program  string
	Vertices [3]mgl32.Vec3
}

// Triangles side by side, each drawn with its own program
var Triangles = []Triangle{
	{
		Program: "orange",
		Vertices: [3]mgl32.Vec3{
			{-0.9, -0.5, 0.0},
			{0.0, -0.5, 0.0},
			{-0.45, 0.5, 0.0},
		},
	},
	{
		Program: "yellow",
		Vertices: [3]mgl32.Vec3{
			{0.0, -0.5, 0.0},
			{0.9, -0.5, 0.0},
			{0.45, 0.5, 0.0},
		},
	},
}

// Data returns the positions as flat float32 slice
func (t Triangle) Data() []float32 {
	data := make([]float32, 0, len(t.Vertices)*3)
	for _, v := range t.Vertices {
		data = append(data, v[0], v[1], v[2])
	}
	return data
}
