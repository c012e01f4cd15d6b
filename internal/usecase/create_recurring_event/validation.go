package create_recurring_event

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// validateRequest валидирует входные данные и собирает правило повторения
func validateRequest(req *Request) (domain.RecurrenceRule, error) {
	if req.OrganizerID <= 0 {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: organizerID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if len(req.Description) > domain.MaxDescriptionLength {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.EndDate.IsZero() {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if len(req.BlockedCourts) == 0 {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: at least one court must be blocked", ErrInvalidInput)
	}

	for _, c := range req.BlockedCourts {
		if c.GymID <= 0 || c.Number <= 0 {
			return domain.RecurrenceRule{}, fmt.Errorf("%w: invalid court %s", ErrInvalidInput, c)
		}
	}

	rule := domain.RecurrenceRule{
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		EndDate:   domain.DateOnly(req.EndDate),
	}
	if err := rule.Validate(); err != nil {
		return domain.RecurrenceRule{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return rule, nil
}

// validateEndDate повторения должны действовать хотя бы сегодня
func validateEndDate(endDate, today time.Time) error {
	if domain.DateOnly(endDate).Before(domain.DateOnly(today)) {
		return ErrInvalidEndDate
	}
	return nil
}

func uniqueCourts(courts []domain.CourtRef) []domain.CourtRef {
	seen := make(map[domain.CourtRef]struct{}, len(courts))
	result := make([]domain.CourtRef, 0, len(courts))
	for _, c := range courts {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	return result
}
