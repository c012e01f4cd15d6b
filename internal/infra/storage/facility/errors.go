package facility

import "errors"

var (
	// ErrGymNotFound возвращается, когда спортзал не найден
	ErrGymNotFound = errors.New("facility.repository: gym not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("facility.repository: court not found")

	// ErrCourtAlreadyExists возвращается, когда корт с таким номером уже есть в спортзале
	ErrCourtAlreadyExists = errors.New("facility.repository: court already exists")

	// ErrSportNotFound возвращается, когда вид спорта не найден
	ErrSportNotFound = errors.New("facility.repository: sport not found")

	// ErrSportAlreadyExists возвращается при дублировании названия вида спорта
	ErrSportAlreadyExists = errors.New("facility.repository: sport already exists")

	// ErrInUse возвращается, когда запись нельзя удалить из-за ссылок на нее
	ErrInUse = errors.New("facility.repository: entity is referenced")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("facility.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("facility.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("facility.repository: failed to scan row")
)
