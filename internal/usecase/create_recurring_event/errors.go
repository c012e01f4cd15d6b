package create_recurring_event

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_recurring_event: invalid input data")

	// ErrInvalidEndDate возвращается, когда дата окончания повторений в прошлом
	ErrInvalidEndDate = errors.New("create_recurring_event: recurrence end date is in the past")

	// ErrCourtNotFound возвращается, когда один из блокируемых кортов не найден
	ErrCourtNotFound = errors.New("create_recurring_event: court not found")

	// ErrSlotNotAvailable возвращается, когда занятие мероприятия пересекается с занятостью корта
	ErrSlotNotAvailable = errors.New("create_recurring_event: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_recurring_event: internal error")
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
