package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists возвращается при дублировании email или CPF
	ErrUserAlreadyExists = errors.New("user with this email or cpf already exists")

	// ErrUserInUse возвращается, когда пользователя нельзя удалить
	ErrUserInUse = errors.New("user has bookings or events")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
