package create_recurring_event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-GymBookingService/internal/service/schedule"
	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

var court1 = domain.CourtRef{GymID: 1, Number: 1}

type memStore struct {
	bookings  []*domain.Booking
	extras    []*domain.ExtraordinaryEvent
	recurring []*domain.RecurringEvent
}

func (s *memStore) LockCourt(_ context.Context, ref domain.CourtRef) (*domain.Court, error) {
	if ref != court1 {
		return nil, facilityRepo.ErrCourtNotFound
	}
	return &domain.Court{GymID: ref.GymID, Number: ref.Number, Status: domain.CourtAvailable}, nil
}

func (s *memStore) CreateRecurring(_ context.Context, e *domain.RecurringEvent) (*domain.RecurringEvent, error) {
	e.ID = int64(len(s.recurring) + 1)
	s.recurring = append(s.recurring, e)
	return e, nil
}

func (s *memStore) FindOverlapping(_ context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.Court() == court && b.Occupies() && domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *memStore) FindExtraordinaryOverlapping(_ context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.ExtraordinaryEvent, error) {
	var result []*domain.ExtraordinaryEvent
	for _, e := range s.extras {
		if e.Blocks(court) && domain.Overlaps(e.StartTime, e.EndTime, start, end) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (s *memStore) FindRecurringByCourt(_ context.Context, court domain.CourtRef, activeFrom time.Time) ([]*domain.RecurringEvent, error) {
	var result []*domain.RecurringEvent
	for _, e := range s.recurring {
		if e.Blocks(court) && !e.RecurrenceEndDate.Before(domain.DateOnly(activeFrom)) {
			result = append(result, e)
		}
	}
	return result, nil
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockCache struct{ mock.Mock }

func (m *mockCache) Invalidate(ctx context.Context, court domain.CourtRef) error {
	return m.Called(ctx, court).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, key string, payload interface{}) error {
	return m.Called(ctx, key, payload).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// сегодня - понедельник 2024-01-15
var today = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func newUseCase(store *memStore) (*UseCase, *mockCache, *mockPublisher) {
	cache, publisher := &mockCache{}, &mockPublisher{}
	cache.On("Invalidate", mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	checker := schedule.NewChecker(store, store, time.UTC, nil, nopLogger{})
	uc := NewUseCase(store, store, checker, cache, publisher, inlineTx{}, time.UTC, nopLogger{}).
		WithTimeProvider(fixedTime{now: today})
	return uc, cache, publisher
}

func thursdayRequest(start, end types.TimeString, endDate time.Time) *Request {
	return &Request{
		OrganizerID:   10,
		Name:          "Treino",
		Weekday:       domain.Thursday,
		StartTime:     start,
		EndTime:       end,
		EndDate:       endDate,
		BlockedCourts: []domain.CourtRef{court1},
	}
}

func TestCreateRecurringEvent_Success(t *testing.T) {
	store := &memStore{}
	uc, cache, publisher := newUseCase(store)

	resp, err := uc.Execute(context.Background(), thursdayRequest("08:00", "09:00", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, err)
	assert.Equal(t, "Every Thursday, 08:00-09:00", resp.Event.Rule)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), resp.Event.RecurrenceEndDate)
	cache.AssertCalled(t, "Invalidate", mock.Anything, court1)
	publisher.AssertCalled(t, "Publish", mock.Anything, "event.recurring.created", mock.Anything)
}

func TestCreateRecurringEvent_OverlapsOtherRule(t *testing.T) {
	store := &memStore{recurring: []*domain.RecurringEvent{{
		ID:                1,
		Name:              "Vôlei",
		Rule:              "Every Thursday, 08:00-09:00",
		RecurrenceEndDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		BlockedCourts:     []domain.CourtRef{court1},
	}}}
	uc, _, publisher := newUseCase(store)

	_, err := uc.Execute(context.Background(), thursdayRequest("08:30", "10:00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)

	// встык с существующим правилом
	_, err = uc.Execute(context.Background(), thursdayRequest("09:00", "10:00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.NoError(t, err)
}

func TestCreateRecurringEvent_ExpiredRuleIgnored(t *testing.T) {
	store := &memStore{recurring: []*domain.RecurringEvent{{
		ID:                1,
		Name:              "Vôlei",
		Rule:              "Every Thursday, 08:00-09:00",
		RecurrenceEndDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		BlockedCourts:     []domain.CourtRef{court1},
	}}}
	uc, _, _ := newUseCase(store)

	_, err := uc.Execute(context.Background(), thursdayRequest("08:00", "09:00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.NoError(t, err)
}

func TestCreateRecurringEvent_FutureBookingConflict(t *testing.T) {
	store := &memStore{bookings: []*domain.Booking{{
		ID:          5,
		GymID:       1,
		CourtNumber: 1,
		StartTime:   time.Date(2024, 2, 22, 8, 30, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 2, 22, 9, 30, 0, 0, time.UTC),
		Status:      domain.StatusConfirmed,
	}}}
	uc, _, _ := newUseCase(store)

	_, err := uc.Execute(context.Background(), thursdayRequest("08:00", "09:00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, court1.String(), conflictErr.Court)
}

func TestCreateRecurringEvent_Validation(t *testing.T) {
	uc, _, _ := newUseCase(&memStore{})
	ctx := context.Background()
	endDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	badWeekday := thursdayRequest("08:00", "09:00", endDate)
	badWeekday.Weekday = 7

	noCourts := thursdayRequest("08:00", "09:00", endDate)
	noCourts.BlockedCourts = nil

	unknownCourt := thursdayRequest("08:00", "09:00", endDate)
	unknownCourt.BlockedCourts = []domain.CourtRef{{GymID: 1, Number: 9}}

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"end before start", thursdayRequest("10:00", "09:00", endDate), ErrInvalidInput},
		{"bad time", thursdayRequest("8", "09:00", endDate), ErrInvalidInput},
		{"bad weekday", badWeekday, ErrInvalidInput},
		{"no courts", noCourts, ErrInvalidInput},
		{"end date in the past", thursdayRequest("08:00", "09:00", time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)), ErrInvalidEndDate},
		{"unknown court", unknownCourt, ErrCourtNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateRecurringEvent_UntilMidnight(t *testing.T) {
	uc, _, _ := newUseCase(&memStore{})

	req := thursdayRequest("22:00", "00:00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	req.Weekday = domain.Friday
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Every Friday, 22:00-00:00", resp.Event.Rule)
}
