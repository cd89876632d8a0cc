package domain

import "errors"

// ErrReviewNotFound возвращается при обращении к несуществующему отзыву.
var ErrReviewNotFound = errors.New("отзыв не найден")

// ErrEmptyText возвращается при попытке создать отзыв без текста.
var ErrEmptyText = errors.New("текст отзыва пуст")

// ErrTextTooLong возвращается, когда текст отзыва превышает лимит длины.
var ErrTextTooLong = errors.New("текст отзыва слишком длинный")
