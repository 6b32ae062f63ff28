package painter

import (
	"testing"

	"github.com/fosdem/trigl/lib/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestShaderDataDefaultsToRed(t *testing.T) {
	p := New(config.Default())
	data := p.ShaderData()
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, data.FillColour)
	assert.Equal(t, "vec4(1.0, 0.0, 0.0, 1.0)", data.FillColourGLSL())
}

func TestShaderDataFollowsFillColour(t *testing.T) {
	cfg := config.Default()
	cfg.FillColour = "#00ff00ff"
	data := New(cfg).ShaderData()
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, data.FillColour)
}

func TestRequestShutdown(t *testing.T) {
	p := New(config.Default())
	assert.False(t, p.ShutdownRequested())
	p.RequestShutdown()
	assert.True(t, p.ShutdownRequested())
}
