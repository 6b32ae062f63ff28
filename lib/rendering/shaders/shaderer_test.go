package shaders

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesAreEmbedded(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"triangle.vert", "triangle.frag"}, s.TemplateNames())
}

func TestDefaultVertexShaderPassesPositionThrough(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource(VertexShader, DefaultShaderData())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(src, "#version 410 core\n"))
	assert.Contains(t, src, "in vec4 position;")
	assert.Contains(t, src, "gl_Position = position;")
}

func TestDefaultFragmentShaderIsOpaqueRed(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource(FragmentShader, DefaultShaderData())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(src, "#version 410 core\n"))
	assert.Contains(t, src, "colour = vec4(1.0, 0.0, 0.0, 1.0);")
}

func TestFillColourGLSL(t *testing.T) {
	d := &ShaderData{FillColour: mgl32.Vec4{0.5, 0.25, 0, 1}}
	assert.Equal(t, "vec4(0.5, 0.25, 0.0, 1.0)", d.FillColourGLSL())
}

func TestUnknownShaderKind(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	_, err = s.GetShaderSource(ShaderKind(7), DefaultShaderData())
	assert.ErrorContains(t, err, "no template for unknown(7) shader")
	assert.Equal(t, "fragment", FragmentShader.String())
	assert.Equal(t, "vertex", VertexShader.String())
}
