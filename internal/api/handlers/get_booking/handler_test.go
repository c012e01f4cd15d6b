package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, actor)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(id string, actor *domain.Actor) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/bookings/"+id, nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": id})
	if actor != nil {
		r = r.WithContext(middleware.WithActor(r.Context(), *actor))
	}
	return r
}

func TestHandle_OK(t *testing.T) {
	actor := domain.Actor{UserID: 3, Role: domain.RoleStudent}
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, int64(9), actor).Return(&models.BookingResponse{ID: 9, UserID: 3}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, newRequest("9", &actor))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.ID)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	actor := domain.Actor{UserID: 3, Role: domain.RoleStudent}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"foreign booking", bookings.ErrAccessDenied, http.StatusForbidden},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("GetByID", mock.Anything, int64(9), actor).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(rec, newRequest("9", &actor))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_BadRequestAndUnauthorized(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("zero", &domain.Actor{UserID: 1, Role: domain.RoleAdmin}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest("9", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}
