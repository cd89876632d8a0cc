package domain

import "time"

// Sentiment обозначает тональность отзыва.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Review представляет сохранённый отзыв. Тональность вычисляется один раз
// при создании и далее не меняется.
type Review struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sentiment Sentiment `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}
