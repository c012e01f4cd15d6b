package create_recurring_event

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	createRecurring "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_recurring_event"
	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

// CourtRequest блокируемый корт
type CourtRequest struct {
	GymID       int64 `json:"gymId" validate:"required,gt=0"`
	CourtNumber int   `json:"courtNumber" validate:"required,gt=0"`
}

// CreateRecurringRequest HTTP request model
type CreateRecurringRequest struct {
	Name              string         `json:"name" validate:"required,max=200"`
	Description       string         `json:"description" validate:"max=2000"`
	Weekday           string         `json:"weekday" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime         string         `json:"startTime" validate:"required"` // "08:00"
	EndTime           string         `json:"endTime" validate:"required"`   // "09:00", "00:00" - до конца дня
	RecurrenceEndDate string         `json:"recurrenceEndDate" validate:"required"`
	BlockedCourts     []CourtRequest `json:"blockedCourts" validate:"required,min=1,dive"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRecurringRequest) ToUseCaseRequest(organizerID int64) (*createRecurring.Request, error) {
	weekday, err := domain.ParseWeekday(r.Weekday)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.RecurrenceEndDate)
	if err != nil {
		return nil, err
	}

	courts := make([]domain.CourtRef, 0, len(r.BlockedCourts))
	for _, c := range r.BlockedCourts {
		courts = append(courts, domain.CourtRef{GymID: c.GymID, Number: c.CourtNumber})
	}

	return &createRecurring.Request{
		OrganizerID:   organizerID,
		Name:          r.Name,
		Description:   r.Description,
		Weekday:       weekday,
		StartTime:     startTime,
		EndTime:       endTime,
		EndDate:       endDate,
		BlockedCourts: courts,
	}, nil
}
