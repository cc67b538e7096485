// Package main prints the model, view, projection and normal matrices for
// a scene file, and optionally renders a wireframe preview of it.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/glcore/internal/config"
	"github.com/Faultbox/glcore/internal/logger"
	"github.com/Faultbox/glcore/internal/preview"
	"github.com/Faultbox/glcore/internal/scene"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("mvpdump failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	s, err := scene.New(cfg)
	if err != nil {
		return err
	}
	frames := s.Frame()

	if err := writeMatrices(cfg.Output.Matrices, frames); err != nil {
		return err
	}
	logger.Info("matrices written",
		zap.Int("models", len(frames)),
		zap.String("path", outputName(cfg.Output.Matrices)),
	)

	if cfg.Output.Preview == "" {
		return nil
	}
	width := cfg.Output.PreviewSize
	height := int(float32(width) / cfg.Aspect())
	if height < 1 {
		height = 1
	}
	img := preview.Render(frames, preview.DefaultOptions(width, height))
	if err := preview.WriteFile(cfg.Output.Preview, img); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	logger.Info("preview written",
		zap.String("path", cfg.Output.Preview),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return nil
}

func writeMatrices(path string, frames []scene.Frame) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	return scene.Dump(w, frames)
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
