package painter

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fosdem/trigl/lib/api"
	"github.com/fosdem/trigl/lib/config"
	"github.com/fosdem/trigl/lib/metrics"
	"github.com/fosdem/trigl/lib/rendering"
	"github.com/fosdem/trigl/lib/rendering/geometry"
	"github.com/fosdem/trigl/lib/rendering/shaders"
	"github.com/fosdem/trigl/lib/sink/windowsink"
	"github.com/fosdem/trigl/lib/stats"
	"github.com/fosdem/trigl/lib/utils"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Painter drives the window from setup until it is closed
type Painter struct {
	cfg    *config.Config
	logger *slog.Logger

	shutdownRequested atomic.Bool

	Stats *stats.Stats
}

func New(cfg *config.Config) *Painter {
	return &Painter{
		cfg:    cfg,
		logger: slog.With("module", "painter"),
		Stats:  stats.New(),
	}
}

// RequestShutdown makes the render loop exit after the current frame. It
// may be called from any goroutine.
func (p *Painter) RequestShutdown() {
	p.shutdownRequested.Store(true)
}

func (p *Painter) ShutdownRequested() bool {
	return p.shutdownRequested.Load()
}

// ShaderData derives the template inputs from the config
func (p *Painter) ShaderData() *shaders.ShaderData {
	data := shaders.DefaultShaderData()
	data.FillColour = utils.ColourVec(utils.ColourParse(p.cfg.FillColour))
	return data
}

// MakeWindowAndPaint must be called from the thread that is locked to the
// GL context.
func MakeWindowAndPaint(cfg *config.Config) error {
	return New(cfg).Run()
}

func (p *Painter) Run() error {
	window := windowsink.New(&p.cfg.Window)
	err := window.Start()
	if err != nil {
		return fmt.Errorf("could not open window: %w", err)
	}
	defer window.Close()

	err = rendering.Init()
	if err != nil {
		return fmt.Errorf("could not initialise renderer: %w", err)
	}

	program, err := rendering.BuildGLProgram(p.ShaderData(), string(p.cfg.ShaderDebugDir))
	if err != nil {
		return fmt.Errorf("could not init GL program: %w", err)
	}

	glvars := rendering.NewGLVars(
		program,
		geometry.TriangleVertices(),
		utils.ColourVec(utils.ColourParse(p.cfg.ClearColour)),
	)
	defer glvars.Delete()
	err = glvars.Start()
	if err != nil {
		return fmt.Errorf("could not set up vertex buffer: %w", err)
	}

	theApi := api.ServeInBackground(p.cfg, p.Stats, p)
	if theApi != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := theApi.Shutdown(ctx); err != nil {
				p.logger.Warn("could not stop web server", "err", err)
			}
		}()
	}

	p.logger.Info("entering render loop")

	var deltaTimer utils.DeltaTimer
	for !window.ShouldClose() && !p.ShutdownRequested() {
		glvars.DrawFrame()
		window.SwapBuffers()
		glfw.PollEvents()

		// Maintenance
		dt := deltaTimer.Next()
		if dt > 0 {
			metrics.FrameSeconds.Observe(dt.Seconds())
		}
		metrics.FramesDrawn.Inc()
		p.Stats.Update()
	}

	p.logger.Info("leaving render loop", "frames", p.Stats.Snapshot().Frames)
	return nil
}
