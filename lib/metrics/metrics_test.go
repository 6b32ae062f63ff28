package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestHandlerExposesMetrics(t *testing.T) {
	FramesDrawn.Inc()
	FrameSeconds.Observe(0.016)
	WindowOpen.Set(1)

	body := scrape(t)
	assert.Contains(t, body, "trigl_frames_drawn_total")
	assert.Contains(t, body, "trigl_frame_seconds_bucket")
	assert.Contains(t, body, "trigl_window_open 1")
}

func TestShaderFailureStagesArePreregistered(t *testing.T) {
	body := scrape(t)
	for _, stage := range []string{"vertex", "fragment", "link"} {
		assert.Contains(t, body, `trigl_shader_build_failures_total{stage="`+stage+`"} 0`)
	}
}
