package reviews

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"reviews-service/internal/domain"
	"reviews-service/internal/infra/metrics"
)

// Service реализует бизнес-логику отзывов: валидацию текста, классификацию
// тональности и операции над хранилищем.
type Service struct {
	repo       domain.ReviewRepo
	analyzer   domain.Analyzer
	maxTextLen int
}

// Stats содержит количество отзывов по тональностям.
type Stats struct {
	Total       int                      `json:"total"`
	BySentiment map[domain.Sentiment]int `json:"by_sentiment"`
}

// NewService создаёт сервис отзывов. maxTextLen <= 0 отключает лимит длины.
func NewService(repo domain.ReviewRepo, analyzer domain.Analyzer, maxTextLen int) *Service {
	return &Service{repo: repo, analyzer: analyzer, maxTextLen: maxTextLen}
}

// Create классифицирует текст и сохраняет отзыв.
func (s *Service) Create(text string) (domain.Review, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Review{}, domain.ErrEmptyText
	}
	if s.maxTextLen > 0 && utf8.RuneCountInString(text) > s.maxTextLen {
		return domain.Review{}, domain.ErrTextTooLong
	}
	sentiment := s.analyzer.Analyze(text)
	review := s.repo.Create(text, sentiment)
	metrics.IncReviewCreated(sentiment)
	return review, nil
}

// List возвращает отзывы в порядке создания. Пустой фильтр — все отзывы.
func (s *Service) List(filter domain.Sentiment) []domain.Review {
	reviews := []domain.Review{}
	for review := range s.repo.List(filter) {
		reviews = append(reviews, review)
	}
	return reviews
}

// Stats считает отзывы по тональностям.
func (s *Service) Stats() Stats {
	stats := Stats{BySentiment: map[domain.Sentiment]int{
		domain.SentimentPositive: 0,
		domain.SentimentNegative: 0,
		domain.SentimentNeutral:  0,
	}}
	for review := range s.repo.List("") {
		stats.BySentiment[review.Sentiment]++
		stats.Total++
	}
	return stats
}

// Delete удаляет отзыв по id.
func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("удаление отзыва %d: %w", id, err)
	}
	metrics.IncReviewDeleted()
	return nil
}
