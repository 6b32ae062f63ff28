package rendering

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/trigl/lib/metrics"
	"github.com/fosdem/trigl/lib/rendering/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// BuildGLProgram renders the shader templates and links them into a program.
// When debugDir is set, the rendered sources are written there as well.
func BuildGLProgram(shaderData *shaders.ShaderData, debugDir string) (uint32, error) {
	shaderer, err := shaders.NewShaderer()
	if err != nil {
		return 0, fmt.Errorf("could not get shaders: %w", err)
	}

	vertexShader, err := shaderer.GetShaderSource(shaders.VertexShader, shaderData)
	if err != nil {
		return 0, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := shaderer.GetShaderSource(shaders.FragmentShader, shaderData)
	if err != nil {
		return 0, fmt.Errorf("could not get fragment shader: %w", err)
	}

	if debugDir != "" {
		writeFileDebug(filepath.Join(debugDir, "shader.vert"), vertexShader)
		writeFileDebug(filepath.Join(debugDir, "shader.frag"), fragmentShader)
	}

	program, err := NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return 0, fmt.Errorf("could not init shader: %w", err)
	}

	return program, nil
}

// NewProgram compiles both stages, links them and validates the result.
// The shader objects are released once linked.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := CompileShader(vertexShaderSource, shaders.VertexShader)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := CompileShader(fragmentShaderSource, shaders.FragmentShader)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		logmsg := programInfoLog(program)
		gl.DeleteProgram(program)
		metrics.ShaderBuildFailures.WithLabelValues("link").Inc()

		return 0, fmt.Errorf("failed to link program: %v", logmsg)
	}

	// validation depends on the GL state at the time of the call, so a
	// failure here is only worth a warning
	gl.ValidateProgram(program)
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		slog.Warn("program did not validate", "module", "rendering", "log", programInfoLog(program))
	}

	return program, nil
}

// CompileShader compiles a single stage. On failure the shader object is
// deleted and the compiler log is returned in the error.
func CompileShader(source string, kind shaders.ShaderKind) (uint32, error) {
	shaderType, err := glShaderType(kind)
	if err != nil {
		return 0, err
	}
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
		gl.DeleteShader(shader)
		metrics.ShaderBuildFailures.WithLabelValues(kind.String()).Inc()

		return 0, fmt.Errorf("failed to compile %s shader: %v", kind, strings.TrimRight(clog, "\x00"))
	}

	return shader, nil
}

func glShaderType(kind shaders.ShaderKind) (uint32, error) {
	switch kind {
	case shaders.VertexShader:
		return gl.VERTEX_SHADER, nil
	case shaders.FragmentShader:
		return gl.FRAGMENT_SHADER, nil
	default:
		return 0, fmt.Errorf("unsupported shader kind %s", kind)
	}
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
	return strings.TrimRight(logmsg, "\x00")
}

func writeFileDebug(filename string, content string) {
	err := os.MkdirAll(filepath.Dir(filename), 0o755)
	if err != nil {
		slog.Warn("could not create debug directory", "module", "rendering", "err", err)
		return
	}
	err = os.WriteFile(filename, []byte(content), 0o644)
	if err != nil {
		slog.Warn("could not write debug file", "module", "rendering", "file", filename, "err", err)
		return
	}
	slog.Debug("wrote shader source", "module", "rendering", "file", filename)
}
