package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rose307/ticket-analysis/internal/baseline"
	"github.com/rose307/ticket-analysis/internal/config"
	"github.com/rose307/ticket-analysis/internal/server"
)

func main() {
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	dev := flag.Bool("dev", false, "run in development mode")
	dataDir := flag.String("dataDir", "", "data directory (overrides config)")
	baselinePath := flag.String("baseline", "", "baseline CSV path (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dev {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *baselinePath != "" {
		cfg.Baseline.Path = *baselinePath
	}

	logger, err := initializeLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initialize logger: %v", err)
	}
	defer logger.Sync()

	src := baseline.NewSource(resolveBaselinePath(cfg.Baseline.Path))
	if err := src.Load(); err != nil {
		logger.Fatal("load baseline figures", zap.Error(err))
	}

	srv, err := server.New(cfg, src, logger)
	if err != nil {
		logger.Fatal("build server", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.Run(addr); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
}

// resolveBaselinePath anchors a relative baseline path at the executable's
// directory, matching how the data directory is resolved.
func resolveBaselinePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	exeDir, err := config.GetExeDir()
	if err != nil {
		return path
	}
	return filepath.Join(exeDir, path)
}

func initializeLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	switch cfg.Format {
	case "", "console":
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	case "json":
		zapConfig.Encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	return zapConfig.Build()
}
