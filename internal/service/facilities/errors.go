package facilities

import "errors"

var (
	// ErrGymNotFound возвращается, когда спортзал не найден
	ErrGymNotFound = errors.New("gym not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrCourtAlreadyExists возвращается, когда корт с таким номером уже есть
	ErrCourtAlreadyExists = errors.New("court already exists")

	// ErrSportNotFound возвращается, когда вид спорта не найден
	ErrSportNotFound = errors.New("sport not found")

	// ErrSportAlreadyExists возвращается при дублировании вида спорта
	ErrSportAlreadyExists = errors.New("sport already exists")

	// ErrInUse возвращается, когда на запись ссылаются брони или мероприятия
	ErrInUse = errors.New("entity is in use")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
