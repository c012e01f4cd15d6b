package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	eventRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/event"
)

type mockRepo struct {
	mock.Mock
	EventRepository
}

func (m *mockRepo) GetRecurring(ctx context.Context, id int64) (*domain.RecurringEvent, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*domain.RecurringEvent)
	return e, args.Error(1)
}

func (m *mockRepo) ListRecurring(ctx context.Context, activeFrom *time.Time) ([]*domain.RecurringEvent, error) {
	args := m.Called(ctx, activeFrom)
	e, _ := args.Get(0).([]*domain.RecurringEvent)
	return e, args.Error(1)
}

func (m *mockRepo) DeleteRecurring(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) GetExtraordinary(ctx context.Context, id int64) (*domain.ExtraordinaryEvent, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*domain.ExtraordinaryEvent)
	return e, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Invalidate(ctx context.Context, court domain.CourtRef) error {
	return m.Called(ctx, court).Error(0)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDeleteRecurring_InvalidatesEveryCourt(t *testing.T) {
	courts := []domain.CourtRef{{GymID: 1, Number: 1}, {GymID: 1, Number: 2}}

	repo := &mockRepo{}
	repo.On("GetRecurring", mock.Anything, int64(7)).Return(&domain.RecurringEvent{ID: 7, BlockedCourts: courts}, nil)
	repo.On("DeleteRecurring", mock.Anything, int64(7)).Return(nil)
	cache := &mockCache{}
	cache.On("Invalidate", mock.Anything, courts[0]).Return(nil).Once()
	cache.On("Invalidate", mock.Anything, courts[1]).Return(nil).Once()

	svc := NewService(repo, cache, time.UTC, nopLogger{})
	require.NoError(t, svc.DeleteRecurring(context.Background(), 7))

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestDeleteExtraordinary_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetExtraordinary", mock.Anything, int64(3)).Return(nil, eventRepo.ErrEventNotFound)
	cache := &mockCache{}

	svc := NewService(repo, cache, time.UTC, nopLogger{})
	assert.ErrorIs(t, svc.DeleteExtraordinary(context.Background(), 3), ErrEventNotFound)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestListRecurring_ActiveOnlyAndParsedRule(t *testing.T) {
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	repo := &mockRepo{}
	repo.On("ListRecurring", mock.Anything, mock.MatchedBy(func(from *time.Time) bool {
		return from != nil && from.Equal(today)
	})).Return([]*domain.RecurringEvent{
		{ID: 1, Rule: "Every Friday, 22:00-00:00", RecurrenceEndDate: today.AddDate(0, 1, 0)},
		{ID: 2, Rule: "Toda sexta", RecurrenceEndDate: today},
	}, nil)

	svc := NewService(repo, &mockCache{}, time.UTC, nopLogger{}).
		WithTimeProvider(fixedTime{now: today.Add(15 * time.Hour)})

	events, err := svc.ListRecurring(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.NotNil(t, events[0].Weekday)
	assert.Equal(t, int(domain.Friday), *events[0].Weekday)
	assert.Equal(t, "22:00", events[0].StartTime)
	assert.Equal(t, "00:00", events[0].EndTime)

	assert.Nil(t, events[1].Weekday)
	assert.Equal(t, "Toda sexta", events[1].Rule)
}
