package utils

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#ff0000ff"))
	assert.True(t, ColourValidate("#A0b1C2d3"))
	assert.False(t, ColourValidate("#ff0000"))
	assert.False(t, ColourValidate("ff0000ff"))
	assert.False(t, ColourValidate("#ff0000ff00"))
	assert.False(t, ColourValidate("x#ff0000ff"))
	assert.False(t, ColourValidate("#gg0000ff"))
}

func TestColourParse(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, ColourParse("#ff0000ff"))
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, ColourParse("#12345678"))
}

func TestColourVec(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, ColourVec(ColourParse("#ff0000ff")))
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 0}, ColourVec(color.RGBA{}))
}
