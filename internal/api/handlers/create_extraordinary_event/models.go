package create_extraordinary_event

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	createEvent "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_extraordinary_event"
)

// CourtRequest блокируемый корт
type CourtRequest struct {
	GymID       int64 `json:"gymId" validate:"required,gt=0"`
	CourtNumber int   `json:"courtNumber" validate:"required,gt=0"`
}

// CreateEventRequest HTTP request model
type CreateEventRequest struct {
	Name          string         `json:"name" validate:"required,max=200"`
	Description   string         `json:"description" validate:"max=2000"`
	StartTime     time.Time      `json:"startTime" validate:"required"` // RFC 3339
	EndTime       time.Time      `json:"endTime" validate:"required"`
	BlockedCourts []CourtRequest `json:"blockedCourts" validate:"required,min=1,dive"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateEventRequest) ToUseCaseRequest(organizerID int64) *createEvent.Request {
	return &createEvent.Request{
		OrganizerID:   organizerID,
		Name:          r.Name,
		Description:   r.Description,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		BlockedCourts: ToDomainCourts(r.BlockedCourts),
	}
}

// ToDomainCourts конвертирует список кортов
func ToDomainCourts(courts []CourtRequest) []domain.CourtRef {
	refs := make([]domain.CourtRef, 0, len(courts))
	for _, c := range courts {
		refs = append(refs, domain.CourtRef{GymID: c.GymID, Number: c.CourtNumber})
	}
	return refs
}
