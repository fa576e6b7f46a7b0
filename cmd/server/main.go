package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/praxise/interview-backend/internal/config"
	"github.com/praxise/interview-backend/internal/database"
	"github.com/praxise/interview-backend/internal/engine"
	"github.com/praxise/interview-backend/internal/handler"
	"github.com/praxise/interview-backend/internal/logger"
	"github.com/praxise/interview-backend/internal/repository"
	"github.com/praxise/interview-backend/internal/router"
	"github.com/praxise/interview-backend/internal/service"
	"github.com/praxise/interview-backend/internal/validator"
	"github.com/praxise/interview-backend/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Praxise Interview Backend")

	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	store := repository.NewPostgresSessionStore(pool)
	catalog := service.NewRoleCatalog()
	gen := engine.NewGenerator(engine.NewSeededRand(time.Now().UnixNano()), engine.RandomIDs())
	interviews := service.NewInterviewService(store, catalog, gen, rdb, cfg)

	handlers := &router.Handlers{
		Session:   handler.NewSessionHandler(interviews, catalog),
		Interview: handler.NewInterviewHandler(interviews),
		Live:      handler.NewLiveHandler(interviews, log, cfg.AllowedOrigins),
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	reaper := worker.NewSessionReaper(store, rdb, cfg.SessionIdleTTL, cfg.ReaperInterval, log)
	go reaper.Start(workerCtx)

	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
