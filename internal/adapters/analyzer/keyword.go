package analyzer

import (
	"strings"

	"reviews-service/internal/domain"
)

// Словари содержат основы слов: совпадение ищется по подстроке, поэтому
// "отличн" покрывает "отличный", "отличное", "отлично" и т.д.
var positiveWords = []string{
	"хорош", "хорошо", "отличн", "прекрасн", "люблю",
	"нравится", "супер", "класс", "восхитительн", "лучш",
	"замечательн", "превосходн", "удобн", "рекомендую", "доволен",
	"великолепн", "безупречн", "идеальн", "прекрасно", "отлично",
}

var negativeWords = []string{
	"плох", "плохо", "ужасн", "ненавиж", "отвратительн",
	"кошмар", "разочарован", "неудобн", "худш", "недостаток",
	"проблем", "недостат", "недоволен", "некачествен", "ужасно",
	"недоволь", "отвратно", "отвратительно", "мерзост", "неприятн", "не нравится",
}

// Фразы с отрицанием проверяются до словарей: "не нравится" содержит
// позитивную основу "нравится".
var negationPhrases = []string{"не нравится", "не люблю", "не хочу"}

// KeywordAnalyzer реализует domain.Analyzer словарной эвристикой.
type KeywordAnalyzer struct {
	positive []string
	negative []string
	negation []string
}

var _ domain.Analyzer = (*KeywordAnalyzer)(nil)

// NewKeyword создаёт анализатор со встроенными словарями.
func NewKeyword() *KeywordAnalyzer {
	return &KeywordAnalyzer{
		positive: positiveWords,
		negative: negativeWords,
		negation: negationPhrases,
	}
}

// Analyze возвращает тональность текста. Пустой текст нейтрален; если в
// тексте есть и позитивные, и негативные основы, результат тоже нейтрален.
func (a *KeywordAnalyzer) Analyze(text string) domain.Sentiment {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return domain.SentimentNeutral
	}
	if containsAny(lowered, a.negation) {
		return domain.SentimentNegative
	}
	hasPositive := containsAny(lowered, a.positive)
	hasNegative := containsAny(lowered, a.negative)
	switch {
	case hasPositive && !hasNegative:
		return domain.SentimentPositive
	case hasNegative && !hasPositive:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
