package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trigl_frames_drawn_total",
		Help: "Total number of frames drawn and swapped to the window",
	})
	FrameSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trigl_frame_seconds",
		Help:    "Time between consecutive frames",
		Buckets: []float64{0.001, 0.004, 0.008, 0.016, 0.033, 0.066, 0.1, 0.25, 1},
	})
	ShaderBuildFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trigl_shader_build_failures_total",
		Help: "Total number of shader compile or program link failures",
	}, []string{"stage"})
	WindowOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trigl_window_open",
		Help: "Whether the render window is currently open",
	})
)

func init() {
	for _, stage := range []string{"vertex", "fragment", "link"} {
		ShaderBuildFailures.WithLabelValues(stage).Add(0)
	}
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
