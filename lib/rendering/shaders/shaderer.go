package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const DefaultGLSLVersion = "410 core"

type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// TemplateName is the embedded template providing the source for a stage
func (k ShaderKind) TemplateName() string {
	switch k {
	case VertexShader:
		return "triangle.vert"
	case FragmentShader:
		return "triangle.frag"
	default:
		return ""
	}
}

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	GLSLVersion string
	FillColour  mgl32.Vec4
}

// DefaultShaderData renders an opaque red triangle
func DefaultShaderData() *ShaderData {
	return &ShaderData{
		GLSLVersion: DefaultGLSLVersion,
		FillColour:  mgl32.Vec4{1, 0, 0, 1},
	}
}

// FillColourGLSL renders the fill colour as a vec4 constructor
func (d *ShaderData) FillColourGLSL() string {
	parts := make([]string, len(d.FillColour))
	for i, v := range d.FillColour {
		parts[i] = glslFloat(v)
	}
	return "vec4(" + strings.Join(parts, ", ") + ")"
}

func glslFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (s *Shaderer) GetShaderSource(kind ShaderKind, data *ShaderData) (string, error) {
	name := kind.TemplateName()
	if name == "" {
		return "", fmt.Errorf("no template for %s shader", kind)
	}

	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
