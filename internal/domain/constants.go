package domain

// Форматы даты и времени в API
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Сетка недельного календаря по умолчанию: часы [7, 24)
const (
	DefaultCalendarStartHour = 7
	DefaultCalendarEndHour   = 24
	DaysInWeek               = 7
)

// Ограничения бизнес-валидации
const (
	MaxReasonLength      = 500
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	UserSearchLimit      = 20
	MinUserSearchQuery   = 2
)
