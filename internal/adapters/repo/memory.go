package repo

import (
	"iter"
	"sync"
	"time"

	"reviews-service/internal/domain"
)

// Memory хранит отзывы в памяти процесса в порядке вставки. Id выдаются
// последовательно начиная с 1 и не переиспользуются после удаления.
type Memory struct {
	mu      sync.RWMutex
	reviews []domain.Review
	nextID  int64
}

var _ domain.ReviewRepo = (*Memory)(nil)

// NewMemory создаёт пустое хранилище.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// Create сохраняет отзыв и присваивает ему следующий id.
func (m *Memory) Create(text string, sentiment domain.Sentiment) domain.Review {
	m.mu.Lock()
	defer m.mu.Unlock()

	review := domain.Review{
		ID:        m.nextID,
		Text:      text,
		Sentiment: sentiment,
		CreatedAt: time.Now().UTC(),
	}
	m.nextID++
	m.reviews = append(m.reviews, review)
	return review
}

// List возвращает перезапускаемую последовательность отзывов в порядке
// вставки. Пустой фильтр означает все отзывы, неизвестный фильтр даёт
// пустую последовательность.
func (m *Memory) List(filter domain.Sentiment) iter.Seq[domain.Review] {
	return func(yield func(domain.Review) bool) {
		m.mu.RLock()
		snapshot := make([]domain.Review, len(m.reviews))
		copy(snapshot, m.reviews)
		m.mu.RUnlock()

		for _, review := range snapshot {
			if filter != "" && review.Sentiment != filter {
				continue
			}
			if !yield(review) {
				return
			}
		}
	}
}

// Delete удаляет отзыв по id.
func (m *Memory) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, review := range m.reviews {
		if review.ID == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return domain.ErrReviewNotFound
}
