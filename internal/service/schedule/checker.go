package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// Conflict занятость корта, пересекающаяся с запрошенным интервалом
type Conflict struct {
	Kind  domain.OccupancyKind
	ID    int64
	Title string
	Start time.Time
	End   time.Time
}

// Reason причина конфликта для пользователя
func (c *Conflict) Reason() string {
	switch c.Kind {
	case domain.OccupancyBooking:
		return fmt.Sprintf("корт уже забронирован с %s до %s",
			c.Start.Format(domain.TimeFormat), c.End.Format(domain.TimeFormat))
	case domain.OccupancyExtraordinary:
		return fmt.Sprintf("корт занят мероприятием \"%s\" с %s до %s",
			c.Title, c.Start.Format(domain.TimeFormat), c.End.Format(domain.TimeFormat))
	case domain.OccupancyRecurring:
		return fmt.Sprintf("корт занят регулярным мероприятием \"%s\" (%s, %s-%s)",
			c.Title, c.Start.Format(domain.DateFormat), c.Start.Format(domain.TimeFormat), c.End.Format(domain.TimeFormat))
	}
	return "корт занят"
}

// Checker проверяет занятость корта бронированиями и мероприятиями
type Checker struct {
	bookings BookingFinder
	events   EventFinder
	location *time.Location
	metrics  Metrics
	logger   Logger
}

// NewChecker создает проверку конфликтов. Еженедельные правила разворачиваются
// в часовом поясе location; metrics может быть nil
func NewChecker(bookings BookingFinder, events EventFinder, location *time.Location, metrics Metrics, logger Logger) *Checker {
	return &Checker{
		bookings: bookings,
		events:   events,
		location: location,
		metrics:  metrics,
		logger:   logger,
	}
}

// FindConflict ищет активную бронь или разовое мероприятие на корте, пересекающиеся с [start, end).
// Возвращает nil, nil если корт свободен.
func (c *Checker) FindConflict(ctx context.Context, court domain.CourtRef, start, end time.Time) (*Conflict, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}

	bookings, err := c.bookings.FindOverlapping(ctx, court, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflict - bookings: %v", ErrLookupFailed, err)
	}
	for _, b := range bookings {
		if b.Occupies() && domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			return c.found(&Conflict{
				Kind:  domain.OccupancyBooking,
				ID:    b.ID,
				Title: b.UserName,
				Start: b.StartTime,
				End:   b.EndTime,
			}), nil
		}
	}

	events, err := c.events.FindExtraordinaryOverlapping(ctx, court, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflict - extraordinary events: %v", ErrLookupFailed, err)
	}
	for _, e := range events {
		if e.Blocks(court) && domain.Overlaps(e.StartTime, e.EndTime, start, end) {
			return c.found(&Conflict{
				Kind:  domain.OccupancyExtraordinary,
				ID:    e.ID,
				Title: e.Name,
				Start: e.StartTime,
				End:   e.EndTime,
			}), nil
		}
	}

	return nil, nil
}

// HasConflict true, если корт занят на [start, end).
// Ошибка чтения данных считается конфликтом.
func (c *Checker) HasConflict(ctx context.Context, court domain.CourtRef, start, end time.Time) bool {
	conflict, err := c.FindConflict(ctx, court, start, end)
	if err != nil {
		c.logger.Error("HasConflict: %s %s-%s: %v", court, start.Format(time.RFC3339), end.Format(time.RFC3339), err)
		return true
	}
	return conflict != nil
}

// FindRecurringConflict ищет занятие еженедельного мероприятия корта, пересекающееся с [start, end).
// Правила, которые не удалось разобрать, пропускаются.
func (c *Checker) FindRecurringConflict(ctx context.Context, court domain.CourtRef, start, end time.Time) (*Conflict, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}
	start, end = start.In(c.location), end.In(c.location)

	events, err := c.events.FindRecurringByCourt(ctx, court, start)
	if err != nil {
		return nil, fmt.Errorf("%w: FindRecurringConflict - recurring events: %v", ErrLookupFailed, err)
	}

	for _, e := range events {
		if !e.Blocks(court) {
			continue
		}
		rule, err := e.ParsedRule()
		if err != nil {
			c.logger.Warn("FindRecurringConflict: skip recurring event id=%d: %v", e.ID, err)
			continue
		}
		for _, occ := range Expand(rule, start, end) {
			if domain.Overlaps(occ.Start, occ.End, start, end) {
				return c.found(&Conflict{
					Kind:  domain.OccupancyRecurring,
					ID:    e.ID,
					Title: e.Name,
					Start: occ.Start,
					End:   occ.End,
				}), nil
			}
		}
	}

	return nil, nil
}

// FindAnyConflict объединяет FindConflict и FindRecurringConflict
func (c *Checker) FindAnyConflict(ctx context.Context, court domain.CourtRef, start, end time.Time) (*Conflict, error) {
	conflict, err := c.FindConflict(ctx, court, start, end)
	if err != nil || conflict != nil {
		return conflict, err
	}
	return c.FindRecurringConflict(ctx, court, start, end)
}

// FindRuleConflict проверяет новое еженедельное правило для корта.
// Конфликтом считается другое действующее (на дату today) правило того же дня недели
// с пересекающимся временем, а также бронь или разовое мероприятие, пересекающиеся
// с любым занятием от понедельника текущей недели до rule.EndDate.
func (c *Checker) FindRuleConflict(ctx context.Context, court domain.CourtRef, rule domain.RecurrenceRule, today time.Time) (*Conflict, error) {
	today = today.In(c.location)

	events, err := c.events.FindRecurringByCourt(ctx, court, today)
	if err != nil {
		return nil, fmt.Errorf("%w: FindRuleConflict - recurring events: %v", ErrLookupFailed, err)
	}

	for _, e := range events {
		if !e.Blocks(court) {
			continue
		}
		other, err := e.ParsedRule()
		if err != nil {
			c.logger.Warn("FindRuleConflict: skip recurring event id=%d: %v", e.ID, err)
			continue
		}
		if other.ActiveOn(today) && rule.OverlapsTimeOfDay(other) {
			date := domain.MondayOf(today).AddDate(0, 0, int(other.Weekday))
			return c.found(&Conflict{
				Kind:  domain.OccupancyRecurring,
				ID:    e.ID,
				Title: e.Name,
				Start: date.Add(time.Duration(other.StartMinutes()) * time.Minute),
				End:   date.Add(time.Duration(other.EndMinutes()) * time.Minute),
			}), nil
		}
	}

	for _, occ := range Expand(rule, today, rule.EndDate) {
		conflict, err := c.FindConflict(ctx, court, occ.Start, occ.End)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return conflict, nil
		}
	}

	return nil, nil
}

// found переводит время конфликта в часовой пояс календаря и учитывает его в метриках
func (c *Checker) found(conflict *Conflict) *Conflict {
	conflict.Start = conflict.Start.In(c.location)
	conflict.End = conflict.End.In(c.location)
	if c.metrics != nil {
		c.metrics.IncConflict(string(conflict.Kind))
	}
	return conflict
}
