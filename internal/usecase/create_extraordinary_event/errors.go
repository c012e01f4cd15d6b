package create_extraordinary_event

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_extraordinary_event: invalid input data")

	// ErrCourtNotFound возвращается, когда один из блокируемых кортов не найден
	ErrCourtNotFound = errors.New("create_extraordinary_event: court not found")

	// ErrSlotNotAvailable возвращается, когда корт занят в интервале мероприятия
	ErrSlotNotAvailable = errors.New("create_extraordinary_event: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_extraordinary_event: internal error")
)

// ConflictError корт занят; Reason описывает, чем именно
type ConflictError struct {
	Court  string
	Reason string
}

func (e *ConflictError) Error() string {
	return ErrSlotNotAvailable.Error() + ": " + e.Court + ": " + e.Reason
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
