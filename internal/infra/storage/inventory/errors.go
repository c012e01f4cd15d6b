package inventory

import "errors"

var (
	// ErrMaterialNotFound возвращается, когда инвентарь не найден
	ErrMaterialNotFound = errors.New("inventory.repository: material not found")

	// ErrTicketNotFound возвращается, когда заявка не найдена
	ErrTicketNotFound = errors.New("inventory.repository: ticket not found")

	// ErrReferenceNotFound возвращается, когда спортзал, корт или автор заявки не существуют
	ErrReferenceNotFound = errors.New("inventory.repository: referenced gym or user not found")

	// ErrInvalidQuantity возвращается при нарушении ограничений на количество
	ErrInvalidQuantity = errors.New("inventory.repository: invalid quantity")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inventory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inventory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inventory.repository: failed to scan row")
)
