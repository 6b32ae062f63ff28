package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTriangleVertices(t *testing.T) {
	data := TriangleVertices()
	assert.Equal(t, []float32{0, 1, -1, -1, 1, -1}, data)
	assert.Equal(t, int32(3), VertexCount(data))
	assert.Equal(t, 24, len(data)*FloatSize)
}

func TestTriangleIsInsideClipSpace(t *testing.T) {
	for _, v := range Triangle {
		assert.LessOrEqual(t, mgl32.Abs(v.X()), float32(1))
		assert.LessOrEqual(t, mgl32.Abs(v.Y()), float32(1))
	}
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Equal(t, int32(0), VertexCount(nil))
}
