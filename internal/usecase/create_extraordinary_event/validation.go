package create_extraordinary_event

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrganizerID <= 0 {
		return fmt.Errorf("%w: organizerID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if len(req.BlockedCourts) == 0 {
		return fmt.Errorf("%w: at least one court must be blocked", ErrInvalidInput)
	}

	for _, c := range req.BlockedCourts {
		if c.GymID <= 0 || c.Number <= 0 {
			return fmt.Errorf("%w: invalid court %s", ErrInvalidInput, c)
		}
	}

	return nil
}

// uniqueCourts убирает повторы, сохраняя порядок
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
