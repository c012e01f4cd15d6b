package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Cache кэш недельных календарей в Redis.
// Ключ сетки включает версию корта; Invalidate увеличивает версию, старые ключи истекают по TTL.
type Cache struct {
	client  redis.Cmdable
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// New создает кэш; metrics может быть nil
func New(client redis.Cmdable, ttl time.Duration, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// VersionKey ключ счетчика версий календаря корта
func VersionKey(court domain.CourtRef) string {
	return fmt.Sprintf("calendar:%d:%d:v", court.GymID, court.Number)
}

// GridKey ключ сетки недели для версии корта
func GridKey(court domain.CourtRef, weekStart time.Time, version int64) string {
	return fmt.Sprintf("calendar:%d:%d:%s:%d", court.GymID, court.Number, weekStart.Format(domain.DateFormat), version)
}

// NoVersion версия корта не прочитана; Set с ней ничего не сохраняет
const NoVersion int64 = -1

// Get возвращает сетку из кэша и версию корта, под которой ее искали.
// Эту версию нужно передать в Set. Ошибки Redis считаются промахом.
func (c *Cache) Get(ctx context.Context, court domain.CourtRef, weekStart time.Time) (*domain.WeekCalendar, int64, bool) {
	version, err := c.version(ctx, court)
	if err != nil {
		c.logger.Warn("CalendarCache.Get: %s version: %v", court, err)
		c.observe(resultError)
		return nil, NoVersion, false
	}

	raw, err := c.client.Get(ctx, GridKey(court, weekStart, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe(resultMiss)
		return nil, version, false
	}
	if err != nil {
		c.logger.Warn("CalendarCache.Get: %s: %v", court, err)
		c.observe(resultError)
		return nil, version, false
	}

	var cal domain.WeekCalendar
	if err := json.Unmarshal(raw, &cal); err != nil {
		c.logger.Warn("CalendarCache.Get: %s decode: %v", court, err)
		c.observe(resultError)
		return nil, version, false
	}

	c.observe(resultHit)
	return &cal, version, true
}

// Set сохраняет сетку под версией, полученной из Get до чтения данных.
// Если корт успели инвалидировать, сетка ляжет под старую версию и читаться не будет.
func (c *Cache) Set(ctx context.Context, cal *domain.WeekCalendar, version int64) {
	if version < 0 {
		return
	}

	raw, err := json.Marshal(cal)
	if err != nil {
		c.logger.Warn("CalendarCache.Set: %s encode: %v", cal.Court, err)
		return
	}

	if err := c.client.Set(ctx, GridKey(cal.Court, cal.WeekStart, version), string(raw), c.ttl).Err(); err != nil {
		c.logger.Warn("CalendarCache.Set: %s: %v", cal.Court, err)
	}
}

// Invalidate делает недействительными все закэшированные недели корта
func (c *Cache) Invalidate(ctx context.Context, court domain.CourtRef) error {
	if err := c.client.Incr(ctx, VersionKey(court)).Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidate, court, err)
	}
	return nil
}

func (c *Cache) version(ctx context.Context, court domain.CourtRef) (int64, error) {
	version, err := c.client.Get(ctx, VersionKey(court)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *Cache) observe(result string) {
	if c.metrics != nil {
		c.metrics.IncCalendarCache(result)
	}
}

// Disabled кэш, который ничего не хранит (redis.enabled = false)
type Disabled struct{}

func (Disabled) Get(context.Context, domain.CourtRef, time.Time) (*domain.WeekCalendar, int64, bool) {
	return nil, NoVersion, false
}

func (Disabled) Set(context.Context, *domain.WeekCalendar, int64) {}

func (Disabled) Invalidate(context.Context, domain.CourtRef) error { return nil }
