package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/trigl/lib/config"
	"github.com/fosdem/trigl/lib/metrics"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSink owns the GLFW window and its GL context
type WindowSink struct {
	cfg    *config.WindowCfg
	logger *slog.Logger
	Window *glfw.Window
}

func New(cfg *config.WindowCfg) *WindowSink {
	return &WindowSink{
		cfg:    cfg,
		logger: slog.With("module", "window"),
	}
}

// Start creates the window and makes its context current on the calling
// thread. It is a no-op when the window already exists.
func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	window, err := w.makeWindow()
	if err != nil {
		return err
	}
	w.Window = window
	metrics.WindowOpen.Set(1)
	return nil
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window == nil || w.Window.ShouldClose()
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

// Close destroys the window and shuts GLFW down
func (w *WindowSink) Close() {
	if w.Window == nil {
		return
	}
	w.Window.Destroy()
	w.Window = nil
	glfw.Terminate()
	metrics.WindowOpen.Set(0)
	w.logger.Info("window closed")
}

func (w *WindowSink) makeWindow() (*glfw.Window, error) {
	w.logger.Debug("initializing window")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(w.cfg.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(*w.cfg.SwapInterval)

	w.logger.Info("window created", "title", w.cfg.Title, "width", w.cfg.Width, "height", w.cfg.Height)

	return window, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
