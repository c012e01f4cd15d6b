package schedule

import "errors"

var (
	// ErrInvalidInterval интервал пустой или конец раньше начала
	ErrInvalidInterval = errors.New("schedule: invalid interval")

	// ErrLookupFailed ошибка чтения бронирований или мероприятий
	ErrLookupFailed = errors.New("schedule: occupancy lookup failed")
)
