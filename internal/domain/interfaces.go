package domain

import "iter"

// Analyzer определяет тональность текста отзыва.
type Analyzer interface {
	Analyze(text string) Sentiment
}

// ReviewRepo управляет отзывами в хранилище.
type ReviewRepo interface {
	Create(text string, sentiment Sentiment) Review
	List(filter Sentiment) iter.Seq[Review]
	Delete(id int64) error
}
