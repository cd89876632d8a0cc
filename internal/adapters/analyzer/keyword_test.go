package analyzer

import (
	"testing"

	"reviews-service/internal/domain"
)

func TestAnalyzePositive(t *testing.T) {
	a := NewKeyword()
	for _, text := range []string{
		"Это отличный продукт!",
		"Мне очень нравится",
		"Восхитительное качество",
		"Отличное качество!",
	} {
		if got := a.Analyze(text); got != domain.SentimentPositive {
			t.Fatalf("ожидали positive для %q, получили %s", text, got)
		}
	}
}

func TestAnalyzeNegative(t *testing.T) {
	a := NewKeyword()
	for _, text := range []string{
		"Это ужасный продукт!",
		"Отвратительное качество",
		"Ужасный сервис",
	} {
		if got := a.Analyze(text); got != domain.SentimentNegative {
			t.Fatalf("ожидали negative для %q, получили %s", text, got)
		}
	}
}

func TestAnalyzeNegationPhraseBeatsPositiveWord(t *testing.T) {
	a := NewKeyword()
	// "не нравится" содержит позитивную основу "нравится",
	// но фраза с отрицанием важнее.
	for _, text := range []string{
		"Мне очень не нравится",
		"Не люблю этот магазин",
		"Больше не хочу сюда возвращаться",
	} {
		if got := a.Analyze(text); got != domain.SentimentNegative {
			t.Fatalf("ожидали negative для %q, получили %s", text, got)
		}
	}
}

func TestAnalyzeNeutral(t *testing.T) {
	a := NewKeyword()
	for _, text := range []string{
		"Это обычный продукт",
		"Тестовый отзыв",
		"",
		"   ",
		"123",
	} {
		if got := a.Analyze(text); got != domain.SentimentNeutral {
			t.Fatalf("ожидали neutral для %q, получили %s", text, got)
		}
	}
}

func TestAnalyzeMixedIsNeutral(t *testing.T) {
	a := NewKeyword()
	text := "Хороший товар, но ужасная доставка"
	if got := a.Analyze(text); got != domain.SentimentNeutral {
		t.Fatalf("ожидали neutral при смешанных основах, получили %s", got)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewKeyword()
	text := "Рекомендую всем, прекрасный сервис"
	first := a.Analyze(text)
	for i := 0; i < 10; i++ {
		if got := a.Analyze(text); got != first {
			t.Fatalf("ожидали одинаковый результат, получили %s и %s", first, got)
		}
	}
}
