package close_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Complete(ctx context.Context, bookingID int64, actor domain.Actor) error {
	return m.Called(ctx, bookingID, actor).Error(0)
}

func (m *mockService) NoShow(ctx context.Context, bookingID int64, actor domain.Actor) error {
	return m.Called(ctx, bookingID, actor).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func request(id string, actor domain.Actor) *http.Request {
	r := httptest.NewRequest(http.MethodPatch, "/bookings/"+id, nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": id})
	return r.WithContext(middleware.WithActor(r.Context(), actor))
}

func TestHandleComplete(t *testing.T) {
	operator := domain.Actor{UserID: 3, Role: domain.RoleStudent, ScholarshipHolder: true}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusNoContent},
		{"not operator", bookings.ErrAccessDenied, http.StatusForbidden},
		{"not confirmed", bookings.ErrCannotClose, http.StatusConflict},
		{"missing", bookings.ErrBookingNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Complete", mock.Anything, int64(5), operator).Return(tt.err)

			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).HandleComplete(rec, request("5", operator))

			assert.Equal(t, tt.status, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleNoShow(t *testing.T) {
	staff := domain.Actor{UserID: 1, Role: domain.RoleEmployee}
	svc := new(mockService)
	svc.On("NoShow", mock.Anything, int64(8), staff).Return(nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).HandleNoShow(rec, request("8", staff))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}
