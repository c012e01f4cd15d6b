package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-GymBookingService/internal/integrations/eventbus"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-GymBookingService/pkg/ptr"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason *string) error {
	return m.Called(ctx, id, status, reason).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) UsageByGym(ctx context.Context, gymID int64, from, to time.Time) ([]*domain.CourtUsage, error) {
	args := m.Called(ctx, gymID, from, to)
	u, _ := args.Get(0).([]*domain.CourtUsage)
	return u, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Invalidate(ctx context.Context, court domain.CourtRef) error {
	return m.Called(ctx, court).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, key string, payload interface{}) error {
	return m.Called(ctx, key, payload).Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	owner    = domain.Actor{UserID: 1, Role: domain.RoleStudent}
	operator = domain.Actor{UserID: 2, Role: domain.RoleStudent, ScholarshipHolder: true}
	stranger = domain.Actor{UserID: 3, Role: domain.RoleStudent}
	employee = domain.Actor{UserID: 4, Role: domain.RoleEmployee}
)

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:          10,
		UserID:      owner.UserID,
		GymID:       1,
		CourtNumber: 1,
		StartTime:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
		Status:      domain.StatusConfirmed,
		RequesterID: ptr.Ptr(operator.UserID),
	}
}

func newService(repo *mockRepo) (*Service, *mockCache, *mockPublisher) {
	cache, publisher := &mockCache{}, &mockPublisher{}
	svc := NewService(repo, cache, publisher, inlineTx{}, time.UTC, nopLogger{}).
		WithTimeProvider(fixedTime{now: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)})
	return svc, cache, publisher
}

func TestService_GetByID_Access(t *testing.T) {
	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{"owner", owner, nil},
		{"operator", operator, nil},
		{"staff", employee, nil},
		{"stranger", stranger, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("GetByID", mock.Anything, int64(10)).Return(confirmedBooking(), nil)
			svc, _, _ := newService(repo)

			resp, err := svc.GetByID(context.Background(), 10, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2024-01-15", resp.Date)
			assert.Equal(t, "10:00", resp.StartTime)
			assert.Equal(t, "11:00", resp.EndTime)
		})
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)
	svc, _, _ := newService(repo)

	_, err := svc.GetByID(context.Background(), 99, owner)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(10)).Return(confirmedBooking(), nil)
	repo.On("UpdateStatus", mock.Anything, int64(10), domain.StatusCancelled, mock.Anything).Return(nil)
	svc, cache, publisher := newService(repo)
	cache.On("Invalidate", mock.Anything, domain.CourtRef{GymID: 1, Number: 1}).Return(nil)
	publisher.On("Publish", mock.Anything, eventbus.BookingCancelled, mock.MatchedBy(func(e eventbus.BookingEvent) bool {
		return e.BookingID == 10 && e.Status == "cancelled" && e.Reason != nil && *e.Reason == "chuva"
	})).Return(nil)

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{Actor: owner, Reason: ptr.Ptr("chuva")})

	require.NoError(t, err)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestService_Cancel_Rejected(t *testing.T) {
	cancelled := confirmedBooking()
	cancelled.Status = domain.StatusCancelled

	tests := []struct {
		name    string
		booking *domain.Booking
		actor   domain.Actor
		wantErr error
	}{
		{"stranger", confirmedBooking(), stranger, ErrAccessDenied},
		{"already cancelled", cancelled, owner, ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("GetByID", mock.Anything, int64(10)).Return(tt.booking, nil)
			svc, cache, publisher := newService(repo)

			err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{Actor: tt.actor})

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
			publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_CompleteAndNoShow(t *testing.T) {
	t.Run("operator completes", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(confirmedBooking(), nil)
		repo.On("UpdateStatus", mock.Anything, int64(10), domain.StatusCompleted, (*string)(nil)).Return(nil)
		svc, cache, publisher := newService(repo)
		cache.On("Invalidate", mock.Anything, mock.Anything).Return(nil)
		publisher.On("Publish", mock.Anything, eventbus.BookingCompleted, mock.Anything).Return(nil)

		require.NoError(t, svc.Complete(context.Background(), 10, operator))
		publisher.AssertExpectations(t)
	})

	t.Run("staff marks no-show, publish failure is ignored", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(confirmedBooking(), nil)
		repo.On("UpdateStatus", mock.Anything, int64(10), domain.StatusNoShow, (*string)(nil)).Return(nil)
		svc, cache, publisher := newService(repo)
		cache.On("Invalidate", mock.Anything, mock.Anything).Return(errors.New("redis down"))
		publisher.On("Publish", mock.Anything, eventbus.BookingNoShow, mock.Anything).Return(errors.New("broker down"))

		assert.NoError(t, svc.NoShow(context.Background(), 10, employee))
	})

	t.Run("owner cannot complete own booking", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(confirmedBooking(), nil)
		svc, _, _ := newService(repo)

		assert.ErrorIs(t, svc.Complete(context.Background(), 10, owner), ErrAccessDenied)
	})

	t.Run("completed booking cannot be closed again", func(t *testing.T) {
		done := confirmedBooking()
		done.Status = domain.StatusCompleted
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(done, nil)
		svc, _, _ := newService(repo)

		assert.ErrorIs(t, svc.NoShow(context.Background(), 10, employee), ErrCannotClose)
	})
}

func TestService_GetConfirmations(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.RequesterID != nil && *f.RequesterID == operator.UserID &&
			f.Status != nil && *f.Status == domain.StatusConfirmed &&
			f.From.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) &&
			f.To.Equal(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	})).Return([]*domain.Booking{confirmedBooking()}, nil)
	svc, _, _ := newService(repo)

	resp, err := svc.GetConfirmations(context.Background(), operator)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetConfirmations(context.Background(), stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	svc, _, _ := newService(&mockRepo{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 1, Status: ptr.Ptr("pending")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UsageReport(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	repo := &mockRepo{}
	repo.On("UsageByGym", mock.Anything, int64(1), from, to.AddDate(0, 0, 1)).
		Return([]*domain.CourtUsage{{GymID: 1, CourtNumber: 2, Total: 5, Completed: 3, Cancelled: 1, NoShow: 1}}, nil)
	svc, _, _ := newService(repo)

	resp, err := svc.UsageReport(context.Background(), &models.UsageReportRequest{GymID: 1, StartDate: from, EndDate: to})
	require.NoError(t, err)
	require.Len(t, resp.Courts, 1)
	assert.Equal(t, models.CourtUsageResponse{CourtNumber: 2, Total: 5, Completed: 3, Cancelled: 1, NoShow: 1}, resp.Courts[0])

	_, err = svc.UsageReport(context.Background(), &models.UsageReportRequest{GymID: 1, StartDate: to, EndDate: from})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
