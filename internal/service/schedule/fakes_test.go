package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

var court1 = domain.CourtRef{GymID: 1, Number: 1}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

type fakeStore struct {
	bookings  []*domain.Booking
	extras    []*domain.ExtraordinaryEvent
	recurring []*domain.RecurringEvent
	err       error
}

func (s *fakeStore) FindOverlapping(_ context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.Court() == court && b.Occupies() && domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *fakeStore) FindExtraordinaryOverlapping(_ context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.ExtraordinaryEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []*domain.ExtraordinaryEvent
	for _, e := range s.extras {
		if e.Blocks(court) && domain.Overlaps(e.StartTime, e.EndTime, start, end) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (s *fakeStore) FindRecurringByCourt(_ context.Context, court domain.CourtRef, activeFrom time.Time) ([]*domain.RecurringEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []*domain.RecurringEvent
	for _, e := range s.recurring {
		if e.Blocks(court) && !e.RecurrenceEndDate.Before(domain.DateOnly(activeFrom)) {
			result = append(result, e)
		}
	}
	return result, nil
}

type testLogger struct {
	warnings []string
	errors   []string
}

func (l *testLogger) Info(string, ...interface{}) {}

func (l *testLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func (l *testLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

type countingMetrics struct {
	kinds []string
}

func (m *countingMetrics) IncConflict(kind string) {
	m.kinds = append(m.kinds, kind)
}
