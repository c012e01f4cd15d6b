package get_week_calendar

import "fmt"

// MaxWeekOffset насколько недель вперед и назад можно смотреть календарь
const MaxWeekOffset = 52

func validateRequest(req *Request) error {
	if req.GymID <= 0 {
		return fmt.Errorf("%w: gymID must be positive", ErrInvalidInput)
	}
	if req.CourtNumber <= 0 {
		return fmt.Errorf("%w: courtNumber must be positive", ErrInvalidInput)
	}
	if req.WeekOffset < -MaxWeekOffset || req.WeekOffset > MaxWeekOffset {
		return fmt.Errorf("%w: weekOffset must be within [-%d, %d]", ErrInvalidInput, MaxWeekOffset, MaxWeekOffset)
	}
	return nil
}
