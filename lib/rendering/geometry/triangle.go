package geometry

import "github.com/go-gl/mathgl/mgl32"

const (
	// ComponentsPerVertex is the number of floats describing a single vertex
	ComponentsPerVertex = 2
	// FloatSize is the size of a float32 in bytes
	FloatSize = 4
	// Stride is the distance in bytes between consecutive vertices
	Stride = ComponentsPerVertex * FloatSize
)

// Triangle holds the three clip-space corners: top, bottom left, bottom right
var Triangle = [3]mgl32.Vec2{
	{0, 1},
	{-1, -1},
	{1, -1},
}

// Flatten packs vertices into the interleaved layout uploaded to the GPU
func Flatten(vertices []mgl32.Vec2) []float32 {
	out := make([]float32, 0, len(vertices)*ComponentsPerVertex)
	for _, v := range vertices {
		out = append(out, v.X(), v.Y())
	}
	return out
}

// TriangleVertices is the vertex buffer content for the triangle
func TriangleVertices() []float32 {
	return Flatten(Triangle[:])
}

// VertexCount returns how many vertices a flat buffer describes
func VertexCount(data []float32) int32 {
	return int32(len(data) / ComponentsPerVertex)
}
