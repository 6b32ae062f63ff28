package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/trigl/lib/config"
	"github.com/fosdem/trigl/lib/log"
	"github.com/fosdem/trigl/lib/painter"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "", "Optional YAML config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log.Setup(level)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Parse(*cfgPath)
		if err != nil {
			slog.Error("could not load config", "err", err)
			os.Exit(1)
		}
	}

	err := painter.MakeWindowAndPaint(cfg)
	if err != nil {
		slog.Error("render failed", "err", err)
		os.Exit(1)
	}
}
