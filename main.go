package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"depthmark/app"
	"depthmark/config"
	"depthmark/debug"
)

func main() {
	cfgPath := flag.String("config", "depthmark.json", "path to the config file")
	framesDir := flag.String("frames", "", "frames directory (overrides config)")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		NewLogger(slog.LevelError).Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}
	if *framesDir != "" {
		cfg.FramesDir = *framesDir
	}
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger)
	}

	application, err := app.NewApp("depthmark", cfg, *cfgPath, logger)
	if err != nil {
		logger.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}
	application.Start()
}
