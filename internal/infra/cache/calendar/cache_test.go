package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type resultCounter map[string]int

func (r resultCounter) IncCalendarCache(result string) { r[result]++ }

var (
	court     = domain.CourtRef{GymID: 3, Number: 2}
	weekStart = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
)

func TestCache_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := resultCounter{}
	cache := New(db, time.Minute, counter, nopLogger{})

	mock.ExpectGet(VersionKey(court)).RedisNil()
	mock.ExpectGet(GridKey(court, weekStart, 0)).RedisNil()

	cal, version, ok := cache.Get(context.Background(), court, weekStart)
	assert.False(t, ok)
	assert.Nil(t, cal)
	assert.Equal(t, int64(0), version)
	assert.Equal(t, 1, counter[resultMiss])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_SetThenHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := resultCounter{}
	cache := New(db, time.Minute, counter, nopLogger{})
	ctx := context.Background()

	cal := domain.NewWeekCalendar(court, 0, weekStart, 7, 24)
	cal.Mark(0, 10, &domain.Occupancy{Kind: domain.OccupancyBooking, ID: 42})
	raw, err := json.Marshal(cal)
	require.NoError(t, err)

	mock.ExpectSet(GridKey(court, weekStart, 4), string(raw), time.Minute).SetVal("OK")
	cache.Set(ctx, cal, 4)

	mock.ExpectGet(VersionKey(court)).SetVal("4")
	mock.ExpectGet(GridKey(court, weekStart, 4)).SetVal(string(raw))
	cached, version, ok := cache.Get(ctx, court, weekStart)

	require.True(t, ok)
	assert.Equal(t, int64(4), version)
	require.NotNil(t, cached.Cell(0, 10).Occupancy)
	assert.Equal(t, int64(42), cached.Cell(0, 10).Occupancy.ID)
	assert.Equal(t, 1, counter[resultHit])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := New(db, time.Minute, nil, nopLogger{})

	mock.ExpectIncr(VersionKey(court)).SetVal(5)
	require.NoError(t, cache.Invalidate(context.Background(), court))

	mock.ExpectIncr(VersionKey(court)).SetErr(errors.New("connection reset"))
	assert.ErrorIs(t, cache.Invalidate(context.Background(), court), ErrInvalidate)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_RedisErrorIsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := resultCounter{}
	cache := New(db, time.Minute, counter, nopLogger{})

	mock.ExpectGet(VersionKey(court)).SetErr(errors.New("connection refused"))

	_, version, ok := cache.Get(context.Background(), court, weekStart)
	assert.False(t, ok)
	assert.Equal(t, NoVersion, version)
	assert.Equal(t, 1, counter[resultError])

	// без версии сетка не сохраняется: команд к Redis нет
	cache.Set(context.Background(), domain.NewWeekCalendar(court, 0, weekStart, 7, 24), version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_InvalidateBetweenGetAndSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := New(db, time.Minute, nil, nopLogger{})
	ctx := context.Background()

	mock.ExpectGet(VersionKey(court)).SetVal("2")
	mock.ExpectGet(GridKey(court, weekStart, 2)).RedisNil()
	_, version, ok := cache.Get(ctx, court, weekStart)
	require.False(t, ok)

	// бронь закоммичена, пока строилась сетка
	mock.ExpectIncr(VersionKey(court)).SetVal(3)
	require.NoError(t, cache.Invalidate(ctx, court))

	cal := domain.NewWeekCalendar(court, 0, weekStart, 7, 24)
	raw, err := json.Marshal(cal)
	require.NoError(t, err)
	mock.ExpectSet(GridKey(court, weekStart, 2), string(raw), time.Minute).SetVal("OK")
	cache.Set(ctx, cal, version)

	// следующий Get ищет под новой версией и промахивается
	mock.ExpectGet(VersionKey(court)).SetVal("3")
	mock.ExpectGet(GridKey(court, weekStart, 3)).RedisNil()
	_, _, ok = cache.Get(ctx, court, weekStart)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "calendar:3:2:v", VersionKey(court))
	assert.Equal(t, "calendar:3:2:2024-01-15:7", GridKey(court, weekStart, 7))
}

func TestDisabled(t *testing.T) {
	var cache Disabled
	_, _, ok := cache.Get(context.Background(), court, weekStart)
	assert.False(t, ok)
	assert.NoError(t, cache.Invalidate(context.Background(), court))
}
