package create_extraordinary_event

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// Request модель запроса на создание разового мероприятия
type Request struct {
	OrganizerID   int64
	Name          string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	BlockedCourts []domain.CourtRef
}

// Response созданное мероприятие
type Response struct {
	Event *domain.ExtraordinaryEvent
}
