package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

// Weekday день недели, 0 = понедельник ... 6 = воскресенье
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if !w.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// IsValid 0..6
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// WeekdayOf день недели даты с понедельника
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// ParseWeekday разбирает английское название дня
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if name == s {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

var ruleRe = regexp.MustCompile(`^Every (\w+), (\d{2}:\d{2})-(\d{2}:\d{2})$`)

// RecurrenceRule еженедельное правило: день недели и время суток до EndDate включительно.
// EndTime 00:00 означает 24:00 того же дня.
type RecurrenceRule struct {
	Weekday   Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	EndDate   time.Time
}

// ParseRule разбирает текст "Every Thursday, 08:00-09:00". EndDate не заполняется.
func ParseRule(text string) (RecurrenceRule, error) {
	m := ruleRe.FindStringSubmatch(text)
	if m == nil {
		return RecurrenceRule{}, fmt.Errorf("%w: %q", ErrMalformedRule, text)
	}

	weekday, err := ParseWeekday(m[1])
	if err != nil {
		return RecurrenceRule{}, fmt.Errorf("%w: %v", ErrMalformedRule, err)
	}

	start, err := types.NewTimeStringFromString(m[2])
	if err != nil {
		return RecurrenceRule{}, fmt.Errorf("%w: %v", ErrMalformedRule, err)
	}

	end, err := types.NewTimeStringFromString(m[3])
	if err != nil {
		return RecurrenceRule{}, fmt.Errorf("%w: %v", ErrMalformedRule, err)
	}

	rule := RecurrenceRule{Weekday: weekday, StartTime: start, EndTime: end}
	if err := rule.Validate(); err != nil {
		return RecurrenceRule{}, err
	}

	return rule, nil
}

// FormatRule текст правила для хранения
func FormatRule(weekday Weekday, start, end types.TimeString) string {
	return fmt.Sprintf("Every %s, %s-%s", weekday, start, end)
}

// Text текстовое представление правила
func (r RecurrenceRule) Text() string {
	return FormatRule(r.Weekday, r.StartTime, r.EndTime)
}

// Validate конец позже начала, либо конец в полночь
func (r RecurrenceRule) Validate() error {
	if !r.Weekday.IsValid() {
		return fmt.Errorf("%w: weekday %d", ErrInvalidRule, int(r.Weekday))
	}
	if r.StartMinutes() >= r.EndMinutes() {
		return fmt.Errorf("%w: %s-%s", ErrInvalidRule, r.StartTime, r.EndTime)
	}
	return nil
}

// StartMinutes минуты от начала суток
func (r RecurrenceRule) StartMinutes() int {
	return r.StartTime.Minutes()
}

// EndMinutes минуты от начала суток; полночь считается 24:00
func (r RecurrenceRule) EndMinutes() int {
	if r.EndTime.IsMidnight() {
		return 24 * 60
	}
	return r.EndTime.Minutes()
}

// StartHour час начала
func (r RecurrenceRule) StartHour() int {
	return r.StartMinutes() / 60
}

// EndHour час окончания с округлением вверх; полночь = 24
func (r RecurrenceRule) EndHour() int {
	return (r.EndMinutes() + 59) / 60
}

// OverlapsTimeOfDay тот же день недели и пересекающиеся интервалы времени суток
func (r RecurrenceRule) OverlapsTimeOfDay(other RecurrenceRule) bool {
	if r.Weekday != other.Weekday {
		return false
	}
	return max(r.StartMinutes(), other.StartMinutes()) < min(r.EndMinutes(), other.EndMinutes())
}

// ActiveOn правило еще действует на дату date
func (r RecurrenceRule) ActiveOn(date time.Time) bool {
	return !DateOnly(r.EndDate).Before(DateOnly(date))
}
