package get_week_calendar

import "github.com/m04kA/SMC-GymBookingService/internal/domain"

// Request модель запроса календаря корта
type Request struct {
	GymID       int64
	CourtNumber int
	WeekOffset  int // 0 - текущая неделя, 1 - следующая, -1 - прошлая
}

// Response сетка недели
type Response struct {
	Calendar *domain.WeekCalendar
}
