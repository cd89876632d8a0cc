package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"reviews-service/internal/domain"
	"reviews-service/internal/infra/metrics"
	reviewsusecase "reviews-service/internal/usecase/reviews"
)

// Server обслуживает HTTP API отзывов.
type Server struct {
	reviews  *reviewsusecase.Service
	log      zerolog.Logger
	instance string
}

type Option func(*Server)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func WithInstanceID(id string) Option {
	return func(s *Server) {
		s.instance = id
	}
}

type createReviewRequest struct {
	Text string `json:"text"`
}

type deleteReviewResponse struct {
	Message   string `json:"message"`
	DeletedID int64  `json:"deleted_id"`
}

type errorResponse struct {
	Error       string `json:"error"`
	RequestedID int64  `json:"requested_id,omitempty"`
}

func NewServer(reviews *reviewsusecase.Service, opts ...Option) *Server {
	srv := &Server{reviews: reviews, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}

// Router собирает маршруты с базовыми middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(observeRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", s.handleCreateReview)
		r.Get("/", s.handleListReviews)
		r.Get("/stats", s.handleStats)
		r.Delete("/{id}", s.handleDeleteReview)
	})

	return r
}

// observeRequests пишет длительность запроса в прометеевскую гистограмму.
// Шаблон маршрута известен только после того, как chi его сматчил.
func observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		metrics.ObserveHTTPRequest(r.Method, route, ww.Status(), start)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"instance": s.instance,
	})
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	review, err := s.reviews.Create(req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyText):
			writeError(w, http.StatusBadRequest, "field 'text' is required and must be non-empty")
		case errors.Is(err, domain.ErrTextTooLong):
			writeError(w, http.StatusBadRequest, "review text exceeds the allowed length")
		default:
			s.log.Error().Err(err).Msg("создание отзыва")
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	s.log.Info().
		Int64("review_id", review.ID).
		Str("sentiment", string(review.Sentiment)).
		Msg("отзыв создан")
	writeJSON(w, http.StatusCreated, review)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	filter := domain.Sentiment(r.URL.Query().Get("sentiment"))
	writeJSON(w, http.StatusOK, s.reviews.List(filter))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reviews.Stats())
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "review id must be a positive integer")
		return
	}
	if err := s.reviews.Delete(id); err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			s.log.Warn().Int64("review_id", id).Msg("отзыв для удаления не найден")
			writeJSON(w, http.StatusNotFound, errorResponse{
				Error:       fmt.Sprintf("review with id %d not found", id),
				RequestedID: id,
			})
			return
		}
		s.log.Error().Err(err).Int64("review_id", id).Msg("удаление отзыва")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	s.log.Info().Int64("review_id", id).Msg("отзыв удалён")
	writeJSON(w, http.StatusOK, deleteReviewResponse{
		Message:   fmt.Sprintf("review with id %d deleted successfully", id),
		DeletedID: id,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
