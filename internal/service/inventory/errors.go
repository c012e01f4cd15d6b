package inventory

import "errors"

var (
	// ErrMaterialNotFound возвращается, когда инвентарь не найден
	ErrMaterialNotFound = errors.New("material not found")

	// ErrTicketNotFound возвращается, когда заявка не найдена
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrInvalidQuantity возвращается, когда доступное количество больше общего или отрицательно
	ErrInvalidQuantity = errors.New("available quantity must be between 0 and total quantity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
