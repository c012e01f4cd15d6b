package calendar

import "errors"

var (
	// ErrInvalidate возвращается, когда не удалось сбросить версию календаря корта
	ErrInvalidate = errors.New("calendar.cache: failed to invalidate")
)
