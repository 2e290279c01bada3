package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/syncromed/syncromed-api/internal/ai"
	"github.com/syncromed/syncromed-api/internal/config"
	v1 "github.com/syncromed/syncromed-api/internal/handler/v1"
	"github.com/syncromed/syncromed-api/internal/store"
	"github.com/syncromed/syncromed-api/pkg/auth"
	"github.com/syncromed/syncromed-api/pkg/logger"
	"github.com/syncromed/syncromed-api/pkg/metrics"
	"github.com/syncromed/syncromed-api/pkg/tracer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		zlog.Fatal("tracer init failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			zlog.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	randomSeed := cfg.Seed.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(randomSeed))

	st := store.New(store.NewSeed(rng), zlog, store.WithRand(rng))
	gateway := ai.NewGateway(cfg.AI, zlog)
	jwtManager := auth.NewJWTManager(cfg.JWT)
	collector := metrics.NewCollector("syncromed")

	handler := v1.New(st, gateway, jwtManager, collector, zlog)
	router := handler.Router(cfg)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Info("server listening",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
