package config

import "fmt"

const (
	DefaultWindowTitle  = "Hello World"
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

type WindowCfg struct {
	Title     string
	Width     int
	Height    int
	Resizable bool

	// SwapInterval is the number of screen refreshes to wait for between
	// buffer swaps. Zero disables vsync.
	SwapInterval *int `yaml:"swap_interval"`
}

func (w *WindowCfg) applyDefaults() {
	if w.Title == "" {
		w.Title = DefaultWindowTitle
	}
	if w.Width == 0 {
		w.Width = DefaultWindowWidth
	}
	if w.Height == 0 {
		w.Height = DefaultWindowHeight
	}
	if w.SwapInterval == nil {
		interval := 1
		w.SwapInterval = &interval
	}
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", w.Width, w.Height)
	}
	if w.SwapInterval != nil && *w.SwapInterval < 0 {
		return fmt.Errorf("swap_interval must be nonnegative")
	}
	return nil
}
