package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"reviews-service/internal/domain"
)

var (
	ReviewsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reviews_created_total",
		Help: "Количество созданных отзывов по тональностям",
	}, []string{"sentiment"})

	ReviewsDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reviews_deleted_total",
		Help: "Количество удалённых отзывов",
	})

	ReviewsStored = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "reviews_stored",
		Help: "Текущее количество отзывов в памяти",
	})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Длительность обработки HTTP запросов",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// MustRegister регистрирует метрики.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		ReviewsCreatedTotal,
		ReviewsDeletedTotal,
		ReviewsStored,
		HTTPRequestDuration,
	)
}

// StartServer запускает HTTP сервер с эндпоинтом /metrics.
func StartServer(ctx context.Context, logger zerolog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	shutdownCtx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-ctx.Done():
		case <-shutdownCtx.Done():
		}
		shutdownTimeout, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer timeoutCancel()
		if err := srv.Shutdown(shutdownTimeout); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: graceful shutdown failed")
		}
	}()

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics: server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: server stopped")
		}
		cancel()
	}()
}

// IncReviewCreated увеличивает счётчик созданных отзывов.
func IncReviewCreated(sentiment domain.Sentiment) {
	ReviewsCreatedTotal.WithLabelValues(string(sentiment)).Inc()
	ReviewsStored.Inc()
}

// IncReviewDeleted увеличивает счётчик удалённых отзывов.
func IncReviewDeleted() {
	ReviewsDeletedTotal.Inc()
	ReviewsStored.Dec()
}

// ObserveHTTPRequest записывает длительность обработки HTTP запроса.
func ObserveHTTPRequest(method, route string, status int, start time.Time) {
	if route == "" {
		route = "unknown"
	}
	duration := time.Since(start).Seconds()
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration)
}
