package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestChecker_BookingOverlap(t *testing.T) {
	store := &fakeStore{bookings: []*domain.Booking{
		booking(1, "2024-01-15T10:00:00Z", "2024-01-15T11:00:00Z"),
	}}
	metrics := &countingMetrics{}
	checker := NewChecker(store, store, time.UTC, metrics, &testLogger{})
	ctx := context.Background()

	conflict, err := checker.FindConflict(ctx, court1, at(2024, 1, 15, 10, 30), at(2024, 1, 15, 11, 30))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.OccupancyBooking, conflict.Kind)
	assert.Equal(t, int64(1), conflict.ID)
	assert.Equal(t, []string{"booking"}, metrics.kinds)

	// встык - не конфликт
	conflict, err = checker.FindConflict(ctx, court1, at(2024, 1, 15, 11, 0), at(2024, 1, 15, 12, 0))
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// другой корт свободен
	conflict, err = checker.FindConflict(ctx, domain.CourtRef{GymID: 1, Number: 2}, at(2024, 1, 15, 10, 0), at(2024, 1, 15, 11, 0))
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestChecker_CancelledBookingFreesSlot(t *testing.T) {
	cancelled := booking(1, "2024-01-15T10:00:00Z", "2024-01-15T11:00:00Z")
	cancelled.Status = domain.StatusCancelled
	store := &fakeStore{bookings: []*domain.Booking{cancelled}}
	checker := NewChecker(store, store, time.UTC, nil, &testLogger{})

	assert.False(t, checker.HasConflict(context.Background(), court1, at(2024, 1, 15, 10, 0), at(2024, 1, 15, 11, 0)))
}

func TestChecker_ExtraordinaryOverlap(t *testing.T) {
	store := &fakeStore{extras: []*domain.ExtraordinaryEvent{{
		ID:            7,
		Name:          "Campeonato",
		StartTime:     at(2024, 2, 1, 8, 0),
		EndTime:       at(2024, 2, 1, 10, 0),
		BlockedCourts: []domain.CourtRef{court1},
	}}}
	checker := NewChecker(store, store, time.UTC, nil, &testLogger{})

	conflict, err := checker.FindConflict(context.Background(), court1, at(2024, 2, 1, 9, 0), at(2024, 2, 1, 11, 0))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.OccupancyExtraordinary, conflict.Kind)
	assert.Contains(t, conflict.Reason(), "Campeonato")
}

func TestChecker_HasConflictFailsClosed(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	logger := &testLogger{}
	checker := NewChecker(store, store, time.UTC, nil, logger)

	assert.True(t, checker.HasConflict(context.Background(), court1, at(2024, 1, 15, 10, 0), at(2024, 1, 15, 11, 0)))
	assert.Len(t, logger.errors, 1)
}

func TestChecker_FindConflictLookupError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	checker := NewChecker(store, store, time.UTC, nil, &testLogger{})

	_, err := checker.FindConflict(context.Background(), court1, at(2024, 1, 15, 10, 0), at(2024, 1, 15, 11, 0))
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestChecker_InvalidInterval(t *testing.T) {
	store := &fakeStore{}
	checker := NewChecker(store, store, time.UTC, nil, &testLogger{})

	_, err := checker.FindConflict(context.Background(), court1, at(2024, 1, 15, 11, 0), at(2024, 1, 15, 10, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestChecker_RecurringOverlap(t *testing.T) {
	store := &fakeStore{recurring: []*domain.RecurringEvent{recurringEvent(3, "Every Thursday, 08:00-09:00")}}
	checker := NewChecker(store, store, time.UTC, nil, &testLogger{})
	ctx := context.Background()

	// 2024-02-01 - четверг
	conflict, err := checker.FindRecurringConflict(ctx, court1, at(2024, 2, 1, 8, 0), at(2024, 2, 1, 10, 0))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.OccupancyRecurring, conflict.Kind)
	assert.Equal(t, at(2024, 2, 1, 8, 0), conflict.Start)

	conflict, err = checker.FindRecurringConflict(ctx, court1, at(2024, 2, 1, 9, 0), at(2024, 2, 1, 10, 0))
	require.NoError(t, err)
	assert.Nil(t, conflict)

	conflict, err = checker.FindAnyConflict(ctx, court1, at(2024, 2, 2, 8, 0), at(2024, 2, 2, 9, 0))
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestChecker_RecurringMalformedRuleSkipped(t *testing.T) {
	store := &fakeStore{recurring: []*domain.RecurringEvent{recurringEvent(3, "Thursdays at eight")}}
	logger := &testLogger{}
	checker := NewChecker(store, store, time.UTC, nil, logger)

	conflict, err := checker.FindRecurringConflict(context.Background(), court1, at(2024, 2, 1, 8, 0), at(2024, 2, 1, 10, 0))
	require.NoError(t, err)
	assert.Nil(t, conflict)
	assert.Len(t, logger.warnings, 1)
}

func TestChecker_RuleConflictWithOtherRule(t *testing.T) {
	store := &fakeStore{recurring: []*domain.RecurringEvent{recurringEvent(3, "Every Friday, 22:00-00:00")}}
	checker := NewChecker(store, store, time.UTC, nil, &testLogger{})
	ctx := context.Background()
	today := at(2024, 1, 15, 9, 0)

	rule := mustRule(t, "Every Friday, 23:00-00:00", at(2024, 3, 1, 0, 0))
	conflict, err := checker.FindRuleConflict(ctx, court1, rule, today)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(3), conflict.ID)

	rule = mustRule(t, "Every Friday, 20:00-22:00", at(2024, 3, 1, 0, 0))
	conflict, err = checker.FindRuleConflict(ctx, court1, rule, today)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestChecker_RuleConflictWithBooking(t *testing.T) {
	store := &fakeStore{bookings: []*domain.Booking{
		booking(9, "2024-02-15T08:30:00Z", "2024-02-15T09:30:00Z"),
	}}
	checker := NewChecker(store, store, time.UTC, nil, &testLogger{})
	ctx := context.Background()

	rule := mustRule(t, "Every Thursday, 08:00-09:00", at(2024, 3, 1, 0, 0))
	conflict, err := checker.FindRuleConflict(ctx, court1, rule, at(2024, 1, 15, 0, 0))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.OccupancyBooking, conflict.Kind)

	// правило заканчивается раньше брони
	rule = mustRule(t, "Every Thursday, 08:00-09:00", at(2024, 2, 10, 0, 0))
	conflict, err = checker.FindRuleConflict(ctx, court1, rule, at(2024, 1, 15, 0, 0))
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestChecker_RecurringExpandedInCalendarZone(t *testing.T) {
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	store := &fakeStore{recurring: []*domain.RecurringEvent{recurringEvent(3, "Every Thursday, 08:00-09:00")}}
	checker := NewChecker(store, store, saoPaulo, nil, &testLogger{})
	ctx := context.Background()

	// 11:00-13:00 UTC = 08:00-10:00 по Сан-Паулу
	conflict, err := checker.FindRecurringConflict(ctx, court1, at(2024, 2, 1, 11, 0), at(2024, 2, 1, 13, 0))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.True(t, conflict.Start.Equal(time.Date(2024, 2, 1, 8, 0, 0, 0, saoPaulo)))

	// 08:00-09:00 UTC = 05:00-06:00 по Сан-Паулу
	conflict, err = checker.FindRecurringConflict(ctx, court1, at(2024, 2, 1, 8, 0), at(2024, 2, 1, 9, 0))
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// 02:00 UTC пятницы это еще четверг по Сан-Паулу
	store.recurring = []*domain.RecurringEvent{recurringEvent(4, "Every Thursday, 22:00-00:00")}
	conflict, err = checker.FindRecurringConflict(ctx, court1, at(2024, 2, 2, 2, 0), at(2024, 2, 2, 2, 30))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(4), conflict.ID)
}

func TestConflictReason_CalendarZone(t *testing.T) {
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	store := &fakeStore{bookings: []*domain.Booking{
		booking(1, "2024-01-15T13:00:00Z", "2024-01-15T14:00:00Z"),
	}}
	checker := NewChecker(store, store, saoPaulo, nil, &testLogger{})

	conflict, err := checker.FindConflict(context.Background(), court1, at(2024, 1, 15, 13, 30), at(2024, 1, 15, 14, 30))
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Contains(t, conflict.Reason(), "10:00")
	assert.Contains(t, conflict.Reason(), "11:00")
	assert.Equal(t, saoPaulo, conflict.Start.Location())
}
