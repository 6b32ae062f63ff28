package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/fosdem/trigl/lib/config"
	"github.com/fosdem/trigl/lib/metrics"
	"github.com/fosdem/trigl/lib/stats"
	"github.com/gorilla/websocket"
)

// Controller is the part of the render loop the api is allowed to poke
type Controller interface {
	RequestShutdown()
}

type Api struct {
	srv    http.Server
	mux    *http.ServeMux
	cfg    *config.ApiCfg
	appCfg *config.Config
	ctl    Controller
	logger *slog.Logger

	Stats *stats.Stats

	wsInterval time.Duration
	wsClients  map[*websocket.Conn]bool
	wsMutex    sync.Mutex
}

func New(cfg *config.ApiCfg, appCfg *config.Config, st *stats.Stats, ctl Controller) *Api {
	a := &Api{}
	a.cfg = cfg
	a.appCfg = appCfg
	a.mux = http.NewServeMux()
	a.ctl = ctl
	a.logger = slog.With("module", "api")
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsInterval = 2 * time.Second
	a.wsClients = make(map[*websocket.Conn]bool)
	a.Stats = st
	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/config", a.handleConfig)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

// @Summary	Record a 10 second CPU profile
// @Router		/prof [get]
// @Tags		debug
// @Produce	octet-stream
// @Success	200
func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Stop rendering and close the window
// @Router		/api/kill [post]
// @Tags		base
// @Produce	json
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.logger.Info("shutting down as per api request")
	a.ctl.RequestShutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.logger.Warn("could not write response", "err", err)
		return
	}
}

// @Summary	Get render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

type Config struct {
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ClearColour string `json:"clear_colour"`
	FillColour  string `json:"fill_colour"`
}

// @Summary	Get the window and colour configuration
// @Router		/api/config [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	result := &Config{
		Title:       a.appCfg.Window.Title,
		Width:       a.appCfg.Window.Width,
		Height:      a.appCfg.Window.Height,
		ClearColour: a.appCfg.ClearColour,
		FillColour:  a.appCfg.FillColour,
	}
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

// ServeInBackground starts the api when it is configured and returns nil
// otherwise
func ServeInBackground(cfg *config.Config, st *stats.Stats, ctl Controller) *Api {
	if cfg.Api == nil {
		return nil
	}
	theApi := New(cfg.Api, cfg, st, ctl)

	theApi.logger.Info("starting web server", "bind", cfg.Api.Bind)
	go func() {
		err := theApi.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			theApi.logger.Error("could not start web server", "err", err)
			os.Exit(1)
		}
	}()
	return theApi
}
