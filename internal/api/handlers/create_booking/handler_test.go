package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"gymId":1,"courtNumber":2,"date":"2024-01-15","startTime":"10:00","endTime":"11:00"}`

func newRequest(path, body string, actor *domain.Actor) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if actor != nil {
		r = r.WithContext(middleware.WithActor(r.Context(), *actor))
	}
	return r
}

func TestHandle_Created(t *testing.T) {
	uc := new(mockUseCase)
	loc := time.UTC
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, loc)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.UserID == 7 && req.OperatorID == nil && req.GymID == 1 && req.CourtNumber == 2 &&
			req.StartTime == "10:00" && req.EndTime == "11:00"
	})).Return(&createBooking.Response{
		ID: 10, UserID: 7, GymID: 1, CourtNumber: 2,
		StartTime: start, EndTime: start.Add(time.Hour), Status: "confirmed",
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, newRequest("/bookings", validBody, &domain.Actor{UserID: 7, Role: domain.RoleStudent}))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	uc.AssertExpectations(t)
}

func TestHandle_ConflictReason(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, &createBooking.ConflictError{Reason: "booked by Ana"})

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, newRequest("/bookings", validBody, &domain.Actor{UserID: 7, Role: domain.RoleStudent}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "booked by Ana")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"missing court", `{"gymId":1,"date":"2024-01-15","startTime":"10:00","endTime":"11:00"}`, nil, http.StatusBadRequest},
		{"bad date", `{"gymId":1,"courtNumber":2,"date":"15.01.2024","startTime":"10:00","endTime":"11:00"}`, nil, http.StatusBadRequest},
		{"bad time", `{"gymId":1,"courtNumber":2,"date":"2024-01-15","startTime":"25:00","endTime":"11:00"}`, nil, http.StatusBadRequest},
		{"past", validBody, createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"court not found", validBody, createBooking.ErrCourtNotFound, http.StatusNotFound},
		{"court unavailable", validBody, createBooking.ErrCourtUnavailable, http.StatusConflict},
		{"inactive", validBody, createBooking.ErrUserInactive, http.StatusForbidden},
		{"internal", validBody, createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, newRequest("/bookings", tt.body, &domain.Actor{UserID: 7, Role: domain.RoleStudent}))

			assert.Equal(t, tt.status, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(new(mockUseCase), nopLogger{}).Handle(rec, newRequest("/bookings", validBody, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleOnBehalf(t *testing.T) {
	uc := new(mockUseCase)
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	operator := int64(3)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.UserID == 9 && req.OperatorID != nil && *req.OperatorID == operator
	})).Return(&createBooking.Response{
		ID: 11, UserID: 9, GymID: 1, CourtNumber: 2,
		StartTime: start, EndTime: start.Add(time.Hour), Status: "confirmed", RequesterID: &operator,
	}, nil)

	body := `{"userId":9,"gymId":1,"courtNumber":2,"date":"2024-01-15","startTime":"10:00","endTime":"11:00"}`
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).HandleOnBehalf(rec, newRequest("/bookings/on-behalf", body, &domain.Actor{UserID: operator, Role: domain.RoleStudent, ScholarshipHolder: true}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requesterId":3`)
	uc.AssertExpectations(t)
}

func TestHandleOnBehalf_Forbidden(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrForbidden)

	body := `{"userId":9,"gymId":1,"courtNumber":2,"date":"2024-01-15","startTime":"10:00","endTime":"11:00"}`
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).HandleOnBehalf(rec, newRequest("/bookings/on-behalf", body, &domain.Actor{UserID: 3, Role: domain.RoleStudent}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
