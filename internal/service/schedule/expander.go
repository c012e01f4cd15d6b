package schedule

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// Occurrence конкретное занятие еженедельного мероприятия
type Occurrence struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

// Expand разворачивает правило в занятия в окне дат.
// Обход начинается с понедельника недели windowStart и идет по дням до
// min(windowEnd, rule.EndDate) включительно. Время занятий в часовом поясе windowStart.
func Expand(rule domain.RecurrenceRule, windowStart, windowEnd time.Time) []Occurrence {
	loc := windowStart.Location()

	from := domain.MondayOf(windowStart)
	to := domain.DateOnly(windowEnd.In(loc))
	if !rule.EndDate.IsZero() {
		y, m, d := rule.EndDate.Date()
		endDate := time.Date(y, m, d, 0, 0, 0, 0, loc)
		if endDate.Before(to) {
			to = endDate
		}
	}

	var result []Occurrence
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if domain.WeekdayOf(date) != rule.Weekday {
			continue
		}
		result = append(result, Occurrence{
			Date:  date,
			Start: date.Add(time.Duration(rule.StartMinutes()) * time.Minute),
			End:   date.Add(time.Duration(rule.EndMinutes()) * time.Minute),
		})
	}

	return result
}
