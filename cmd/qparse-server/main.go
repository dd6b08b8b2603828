package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"

	"github.com/quantaserve/qparse/internal/config"
	logpkg "github.com/quantaserve/qparse/internal/logger"
	"github.com/quantaserve/qparse/internal/metrics"
	chiTransport "github.com/quantaserve/qparse/internal/transport/chi"
	"github.com/quantaserve/qparse/internal/version"
	"github.com/quantaserve/qparse/pkg/qparse"
	"github.com/quantaserve/qparse/pkg/qparse/vocab"
)

func main() {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting qparse API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	v := vocab.Default()
	if cfg.Parser.VocabPath != "" {
		v, err = vocab.LoadFile(cfg.Parser.VocabPath)
		if err != nil {
			logger.Fatal("Failed to load vocabulary",
				zap.String("path", cfg.Parser.VocabPath), zap.Error(err))
		}
		logger.Info("Loaded vocabulary overrides", zap.String("path", cfg.Parser.VocabPath))
	}
	engine := qparse.New(v)

	// Register parse metrics explicitly (no init())
	metrics.RegisterParseMetrics()

	server := chiTransport.NewServer(engine, logger).
		WithMaxBodyBytes(cfg.Parser.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use(chiTransport.RecovererMiddleware(logger))
	r.Use(chiTransport.RequestIDMiddleware())
	r.Use(chiTransport.RequestLoggerMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal("Failed to listen", zap.String("addr", addr), zap.Error(err))
	}
	if cfg.HTTP.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.HTTP.MaxConns)
		logger.Info("Connection limit enabled", zap.Int("max_conns", cfg.HTTP.MaxConns))
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
