package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"greenfathom.com/mirehollow/config"
	"greenfathom.com/mirehollow/entity"
	"greenfathom.com/mirehollow/geom"
	"greenfathom.com/mirehollow/internal/game"
	"greenfathom.com/mirehollow/mapload"
	"greenfathom.com/mirehollow/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "mirehollow.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	library, err := entity.LoadLibrary(cfg.World.EntityLibrary)
	if err != nil {
		return fmt.Errorf("load entity library: %w", err)
	}

	logAvailableMaps(log, cfg.World.MapPath)

	camera := geom.CameraView{
		Zoom:      cfg.Camera.Zoom,
		ViewportW: float64(cfg.Window.Width),
		ViewportH: float64(cfg.Window.Height),
	}
	sess := session.New(log, camera)
	defer sess.Dispose()

	builder := &mapload.Builder{Library: library}
	rec := session.NewReconciler(log, builder, library, sess)
	rec.OnReady(func(s *session.Session) {
		log.Info("world ready",
			zap.String("map", cfg.World.MapPath),
			zap.Int("entities", len(s.Entities())))
	})
	rec.OnReload(func(s *session.Session) {
		log.Info("world reloaded",
			zap.String("map", cfg.World.MapPath),
			zap.Int("entities", len(s.Entities())))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shell := game.New(log, cfg, sess, rec)
	shell.Start(ctx)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info("starting",
		zap.String("config", *configPath),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))
	return ebiten.RunGame(shell)
}

// logAvailableMaps lists the sibling maps of the configured one, and warns
// when the configured path is not among them.
func logAvailableMaps(log *zap.Logger, mapPath string) {
	maps, err := mapload.ScanMaps(filepath.Dir(mapPath))
	if err != nil {
		log.Warn("scanning maps directory failed", zap.Error(err))
		return
	}

	names := make([]string, 0, len(maps))
	configured := false
	for _, m := range maps {
		names = append(names, m.Name)
		if m.Path == mapPath {
			configured = true
		}
	}
	log.Info("maps available", zap.Strings("maps", names))
	if !configured {
		log.Warn("configured map not found in maps directory",
			zap.String("map", mapPath))
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
