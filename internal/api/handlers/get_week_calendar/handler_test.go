package get_week_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	getWeekCalendar "github.com/m04kA/SMC-GymBookingService/internal/usecase/get_week_calendar"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getWeekCalendar.Request) (*getWeekCalendar.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getWeekCalendar.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func request(gym, court, query string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/gyms/"+gym+"/courts/"+court+"/calendar"+query, nil)
	return mux.SetURLVars(r, map[string]string{"gymId": gym, "courtNumber": court})
}

func TestHandle_Calendar(t *testing.T) {
	court := domain.CourtRef{GymID: 1, Number: 2}
	monday := time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC)
	cal := domain.NewWeekCalendar(court, 1, monday, 7, 24)
	cal.Mark(0, 8, &domain.Occupancy{
		Kind:  domain.OccupancyBooking,
		ID:    5,
		Title: "Ana",
		Start: monday.Add(8 * time.Hour),
		End:   monday.Add(9 * time.Hour),
	})

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getWeekCalendar.Request{GymID: 1, CourtNumber: 2, WeekOffset: 1}).
		Return(&getWeekCalendar.Response{Calendar: cal}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, request("1", "2", "?weekOffset=1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp WeekCalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-01-22", resp.WeekStart)
	assert.Equal(t, "2024-01-28", resp.WeekEnd)
	require.Len(t, resp.Days, 7)
	require.Len(t, resp.Days[0].Slots, 17)

	slot := resp.Days[0].Slots[1]
	assert.Equal(t, "08:00", slot.Label)
	require.NotNil(t, slot.Occupancy)
	assert.Equal(t, "booking", slot.Occupancy.Kind)
	assert.Equal(t, "Ana", slot.Occupancy.Title)
	assert.Nil(t, resp.Days[0].Slots[0].Occupancy)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		gym    string
		court  string
		query  string
		err    error
		status int
	}{
		{"bad gym", "x", "2", "", nil, http.StatusBadRequest},
		{"bad court", "1", "0", "", nil, http.StatusBadRequest},
		{"bad offset", "1", "2", "?weekOffset=next", nil, http.StatusBadRequest},
		{"offset out of range", "1", "2", "?weekOffset=100", getWeekCalendar.ErrInvalidInput, http.StatusBadRequest},
		{"court not found", "1", "2", "", getWeekCalendar.ErrCourtNotFound, http.StatusNotFound},
		{"internal", "1", "2", "", getWeekCalendar.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, request(tt.gym, tt.court, tt.query))

			assert.Equal(t, tt.status, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}
