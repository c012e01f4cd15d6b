package get_week_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_week_calendar: invalid input data")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("get_week_calendar: court not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_calendar: internal error")
)
