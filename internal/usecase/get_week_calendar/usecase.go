package get_week_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/facility"
)

// UseCase use case для получения недельного календаря корта
type UseCase struct {
	courts       CourtRepository
	bookings     BookingRepository
	events       EventRepository
	builder      CalendarBuilder
	cache        CalendarCache
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courts CourtRepository,
	bookings BookingRepository,
	events EventRepository,
	builder CalendarBuilder,
	cache CalendarCache,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		courts:       courts,
		bookings:     bookings,
		events:       events,
		builder:      builder,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute строит сетку понедельник..воскресенье для недели today + WeekOffset
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekCalendar: validation failed: %v", err)
		return nil, err
	}

	court := domain.CourtRef{GymID: req.GymID, Number: req.CourtNumber}

	// 2. Корт существует
	if _, err := uc.courts.GetCourt(ctx, court); err != nil {
		if errors.Is(err, facilityRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetWeekCalendar: court %s not found", court)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetWeekCalendar: failed to get court %s: %v", court, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Границы недели в часовом поясе сервиса
	weekStart := domain.MondayOf(uc.timeProvider.Now().In(uc.location)).AddDate(0, 0, domain.DaysInWeek*req.WeekOffset)
	weekEnd := weekStart.AddDate(0, 0, domain.DaysInWeek)

	// 4. Кэш
	cached, version, ok := uc.cache.Get(ctx, court, weekStart)
	if ok {
		cached.WeekOffset = req.WeekOffset
		return &Response{Calendar: cached}, nil
	}

	// 5. Все занятия корта за неделю
	bookings, err := uc.bookings.FindOverlapping(ctx, court, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("GetWeekCalendar: failed to get bookings for %s: %v", court, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	extraordinary, err := uc.events.FindExtraordinaryOverlapping(ctx, court, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("GetWeekCalendar: failed to get extraordinary events for %s: %v", court, err)
		return nil, fmt.Errorf("%w: failed to get extraordinary events: %v", ErrInternal, err)
	}

	recurring, err := uc.events.FindRecurringByCourt(ctx, court, weekStart)
	if err != nil {
		uc.logger.Error("GetWeekCalendar: failed to get recurring events for %s: %v", court, err)
		return nil, fmt.Errorf("%w: failed to get recurring events: %v", ErrInternal, err)
	}

	// 6. Сетка
	cal := uc.builder.Build(court, req.WeekOffset, weekStart, bookings, extraordinary, recurring)
	uc.cache.Set(ctx, cal, version)

	uc.logger.Info("GetWeekCalendar: %s week %s: bookings=%d, extraordinary=%d, recurring=%d",
		court, weekStart.Format(domain.DateFormat), len(bookings), len(extraordinary), len(recurring))

	return &Response{Calendar: cal}, nil
}
