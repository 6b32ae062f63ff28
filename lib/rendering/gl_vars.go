package rendering

import (
	"fmt"

	"github.com/fosdem/trigl/lib/rendering/geometry"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// PositionAttribName is the vertex shader input fed from the vertex buffer
const PositionAttribName = "position"

type GLVars struct {
	Program     uint32
	Vertices    []float32
	VertexCount int32
	ClearColour mgl32.Vec4

	// GL IDs
	VAO            uint32
	VBO            uint32
	PositionAttrib uint32
}

func NewGLVars(program uint32, vertices []float32, clearColour mgl32.Vec4) *GLVars {
	g := &GLVars{}

	g.Program = program
	g.Vertices = vertices
	g.VertexCount = geometry.VertexCount(vertices)
	g.ClearColour = clearColour

	return g
}

func (g *GLVars) Start() error {
	err := g.allocate()
	if err != nil {
		return err
	}
	gl.ClearColor(g.ClearColour[0], g.ClearColour[1], g.ClearColour[2], g.ClearColour[3])
	gl.UseProgram(g.Program)
	return nil
}

// DrawFrame clears the framebuffer and draws the vertex buffer as triangles
func (g *GLVars) DrawFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindVertexArray(g.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, g.VertexCount)
}

// Delete releases the buffer, vertex array and program
func (g *GLVars) Delete() {
	gl.UseProgram(0)
	gl.DeleteBuffers(1, &g.VBO)
	gl.DeleteVertexArrays(1, &g.VAO)
	gl.DeleteProgram(g.Program)
	g.VBO, g.VAO, g.Program = 0, 0, 0
}

func (g *GLVars) allocate() error {
	// core profile refuses to draw without a bound VAO
	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*geometry.FloatSize, gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	location := gl.GetAttribLocation(g.Program, gl.Str(PositionAttribName+"\x00"))
	if location < 0 {
		return fmt.Errorf("program has no active %s attribute", PositionAttribName)
	}
	g.PositionAttrib = uint32(location)
	gl.EnableVertexAttribArray(g.PositionAttrib)
	gl.VertexAttribPointerWithOffset(g.PositionAttrib, geometry.ComponentsPerVertex, gl.FLOAT, false, geometry.Stride, 0)
	return nil
}
