package schedule

import (
	"cmp"
	"slices"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// CalendarBuilder заполняет недельную сетку корта
type CalendarBuilder struct {
	startHour int
	endHour   int
	logger    Logger
}

// NewCalendarBuilder создает построитель сетки с часами [startHour, endHour)
func NewCalendarBuilder(startHour, endHour int, logger Logger) *CalendarBuilder {
	return &CalendarBuilder{
		startHour: startHour,
		endHour:   endHour,
		logger:    logger,
	}
}

// Build строит сетку недели, начинающейся в понедельник weekStart.
// Порядок заполнения: бронирования, разовые мероприятия, еженедельные мероприятия;
// при наложении остается последняя запись.
func (b *CalendarBuilder) Build(
	court domain.CourtRef,
	weekOffset int,
	weekStart time.Time,
	bookings []*domain.Booking,
	extraordinary []*domain.ExtraordinaryEvent,
	recurring []*domain.RecurringEvent,
) *domain.WeekCalendar {
	cal := domain.NewWeekCalendar(court, weekOffset, weekStart, b.startHour, b.endHour)

	// 1. Бронирования по времени начала
	sortedBookings := slices.Clone(bookings)
	slices.SortStableFunc(sortedBookings, func(x, y *domain.Booking) int {
		return x.StartTime.Compare(y.StartTime)
	})
	for _, booking := range sortedBookings {
		if !booking.Occupies() {
			continue
		}
		b.fillSpan(cal, &domain.Occupancy{
			Kind:  domain.OccupancyBooking,
			ID:    booking.ID,
			Title: booking.UserName,
			Start: booking.StartTime,
			End:   booking.EndTime,
		})
	}

	// 2. Разовые мероприятия по времени начала
	sortedEvents := slices.Clone(extraordinary)
	slices.SortStableFunc(sortedEvents, func(x, y *domain.ExtraordinaryEvent) int {
		return x.StartTime.Compare(y.StartTime)
	})
	for _, event := range sortedEvents {
		b.fillSpan(cal, &domain.Occupancy{
			Kind:  domain.OccupancyExtraordinary,
			ID:    event.ID,
			Title: event.Name,
			Start: event.StartTime,
			End:   event.EndTime,
		})
	}

	// 3. Еженедельные мероприятия по ID
	sortedRecurring := slices.Clone(recurring)
	slices.SortStableFunc(sortedRecurring, func(x, y *domain.RecurringEvent) int {
		return cmp.Compare(x.ID, y.ID)
	})
	for _, event := range sortedRecurring {
		b.fillRecurring(cal, event)
	}

	return cal
}

// fillSpan занимает часы от часа начала, пока час меньше конца
func (b *CalendarBuilder) fillSpan(cal *domain.WeekCalendar, occ *domain.Occupancy) {
	if !occ.Start.Before(occ.End) {
		b.logger.Warn("BuildCalendar: skip %s id=%d with corrupt span %s-%s",
			occ.Kind, occ.ID, occ.Start.Format(time.RFC3339), occ.End.Format(time.RFC3339))
		return
	}

	loc := cal.WeekStart.Location()
	start := occ.Start.In(loc)
	end := occ.End.In(loc)

	hour := time.Date(start.Year(), start.Month(), start.Day(), start.Hour(), 0, 0, 0, loc)
	for ; hour.Before(end); hour = hour.Add(time.Hour) {
		cal.Mark(cal.DayIndex(hour), hour.Hour(), occ)
	}
}

func (b *CalendarBuilder) fillRecurring(cal *domain.WeekCalendar, event *domain.RecurringEvent) {
	rule, err := event.ParsedRule()
	if err != nil {
		b.logger.Warn("BuildCalendar: skip recurring event id=%d: %v", event.ID, err)
		return
	}

	for _, occ := range Expand(rule, cal.WeekStart, cal.WeekEnd) {
		dayIndex := cal.DayIndex(occ.Date)
		if dayIndex < 0 {
			continue
		}
		occupancy := &domain.Occupancy{
			Kind:  domain.OccupancyRecurring,
			ID:    event.ID,
			Title: event.Name,
			Start: occ.Start,
			End:   occ.End,
		}
		for hour := rule.StartHour(); hour < rule.EndHour(); hour++ {
			cal.Mark(dayIndex, hour, occupancy)
		}
	}
}
