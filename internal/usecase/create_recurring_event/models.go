package create_recurring_event

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

// Request модель запроса на создание еженедельного мероприятия
type Request struct {
	OrganizerID   int64
	Name          string
	Description   string
	Weekday       domain.Weekday
	StartTime     types.TimeString
	EndTime       types.TimeString // 00:00 - до конца дня
	EndDate       time.Time        // последняя дата повторения включительно
	BlockedCourts []domain.CourtRef
}

// Response созданное мероприятие
type Response struct {
	Event *domain.RecurringEvent
}
