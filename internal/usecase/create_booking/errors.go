package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда бронирование начинается в прошлом
	ErrInvalidDate = errors.New("create_booking: booking starts in the past")

	// ErrGymNotFound возвращается, когда спортзал не найден
	ErrGymNotFound = errors.New("create_booking: gym not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtUnavailable возвращается, когда корт на обслуживании или закрыт
	ErrCourtUnavailable = errors.New("create_booking: court is not available for booking")

	// ErrUserNotFound возвращается, когда пользователь, для которого бронь, не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrUserInactive возвращается, когда учетная запись пользователя отключена
	ErrUserInactive = errors.New("create_booking: user is inactive")

	// ErrForbidden возвращается, когда оператор не может бронировать за других
	ErrForbidden = errors.New("create_booking: operator cannot book on behalf of other users")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с занятостью корта
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError слот занят; Reason описывает, чем именно
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return ErrSlotNotAvailable.Error() + ": " + e.Reason
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
