package domain

import "errors"

var (
	// ErrMalformedRule текст правила повторения не соответствует формату "Every <Weekday>, HH:MM-HH:MM"
	ErrMalformedRule = errors.New("domain: malformed recurrence rule")

	// ErrInvalidRule правило разобрано, но интервал времени некорректен
	ErrInvalidRule = errors.New("domain: invalid recurrence rule")

	// ErrUnknownWeekday неизвестное название дня недели
	ErrUnknownWeekday = errors.New("domain: unknown weekday")

	// ErrUnknownRole неизвестная роль пользователя
	ErrUnknownRole = errors.New("domain: unknown user role")

	// ErrInvalidProfile профиль не удалось разобрать
	ErrInvalidProfile = errors.New("domain: invalid user profile")
)
