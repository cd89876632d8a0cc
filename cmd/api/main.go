package main

import (
	"context"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"reviews-service/internal/adapters/analyzer"
	"reviews-service/internal/adapters/repo"
	httpapi "reviews-service/internal/http"
	"reviews-service/internal/infra/config"
	infralog "reviews-service/internal/infra/log"
	"reviews-service/internal/infra/metrics"
	reviewsusecase "reviews-service/internal/usecase/reviews"
)

func main() {
	cfg := config.Load()
	instanceID := uuid.NewString()
	logger := infralog.NewLogger(cfg.AppEnv).With().Str("instance", instanceID).Logger()

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reviewRepo := repo.NewMemory()
	keyword := analyzer.NewKeyword()
	service := reviewsusecase.NewService(reviewRepo, keyword, cfg.Limits.MaxTextLen)

	api := httpapi.NewServer(service,
		httpapi.WithLogger(logger.With().Str("component", "http").Logger()),
		httpapi.WithInstanceID(instanceID),
	)

	if cfg.Metrics.Enabled {
		metrics.StartServer(ctx, logger.With().Str("component", "metrics").Logger(), cfg.Metrics.Addr)
	}

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      api.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("api: старт")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("api: сервер остановлен")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("api: остановка")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
