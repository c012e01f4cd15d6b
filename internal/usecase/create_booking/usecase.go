package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/facility"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-GymBookingService/internal/integrations/eventbus"
	"github.com/m04kA/SMC-GymBookingService/pkg/ptr"
)

// UseCase use case для создания бронирования корта, в том числе за другого пользователя
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	userRepo     UserRepository
	checker      ConflictChecker
	cache        CalendarCache
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	userRepo UserRepository,
	checker ConflictChecker,
	cache CalendarCache,
	publisher EventPublisher,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		userRepo:     userRepo,
		checker:      checker,
		cache:        cache,
		publisher:    publisher,
		txManager:    txManager,
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

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции
// под блокировкой строки корта.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, operator=%v, gym=%d, court=%d, date=%s, time=%s-%s",
		req.UserID, ptr.Deref(req.OperatorID, 0), req.GymID, req.CourtNumber,
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	start, end, err := bookingInterval(req.Date, req.StartTime, req.EndTime, uc.location)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронировать в прошлом нельзя
	now := uc.timeProvider.Now()
	if err := validateNotInPast(start, now); err != nil {
		uc.logger.Warn("CreateBooking: start %s is in the past", start.Format(time.RFC3339))
		return nil, err
	}

	// 3. Проверяем оператора (бронь за другого пользователя)
	if req.IsOnBehalf() {
		if err := uc.checkOperator(ctx, *req.OperatorID); err != nil {
			return nil, err
		}
	}

	// 4. Получаем пользователя, для которого бронь
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsActive() {
		uc.logger.Warn("CreateBooking: user id=%d is inactive", req.UserID)
		return nil, ErrUserInactive
	}

	// 5. Получаем спортзал
	gym, err := uc.facilityRepo.GetGym(ctx, req.GymID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrGymNotFound) {
			uc.logger.Warn("CreateBooking: gym id=%d not found", req.GymID)
			return nil, ErrGymNotFound
		}
		uc.logger.Error("CreateBooking: failed to get gym id=%d: %v", req.GymID, err)
		return nil, fmt.Errorf("%w: failed to get gym: %v", ErrInternal, err)
	}

	court := domain.CourtRef{GymID: req.GymID, Number: req.CourtNumber}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Блокируем строку корта: параллельные брони этого корта ждут коммита
		locked, err := uc.facilityRepo.LockCourt(txCtx, court)
		if err != nil {
			if errors.Is(err, facilityRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateBooking: court %s not found", court)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock court %s: %v", court, err)
			return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
		}

		if !locked.IsBookable() {
			uc.logger.Warn("CreateBooking: court %s has status %s", court, locked.Status)
			return ErrCourtUnavailable
		}

		// 6.2. Проверяем бронирования, разовые и еженедельные мероприятия
		conflict, err := uc.checker.FindAnyConflict(txCtx, court, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed for %s: %v", court, err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("CreateBooking: slot not available on %s: %s id=%d", court, conflict.Kind, conflict.ID)
			return &ConflictError{Reason: conflict.Reason()}
		}

		// 6.3. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			UserID:      user.ID,
			GymID:       gym.ID,
			CourtNumber: req.CourtNumber,
			StartTime:   start,
			EndTime:     end,
			Status:      domain.StatusConfirmed,
			Reason:      req.Reason,
			UserName:    user.Name,
			GymName:     gym.Name,
		}
		if req.IsOnBehalf() {
			booking.RequesterID = req.OperatorID
			booking.OperatedAt = ptr.Ptr(now)
		}

		// 6.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot not available on %s (constraint)", court)
				return &ConflictError{Reason: "корт уже забронирован на это время"}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 7. После коммита: сбрасываем кэш календаря и публикуем событие
	if err := uc.cache.Invalidate(ctx, court); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate calendar cache: %v", err)
	}
	if err := uc.publisher.Publish(ctx, eventbus.BookingCreated, eventbus.NewBookingEvent(result)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s: %v", eventbus.BookingCreated, err)
	}

	return toResponse(result), nil
}

// checkOperator оператор должен существовать, быть активным и иметь право бронировать за других
func (uc *UseCase) checkOperator(ctx context.Context, operatorID int64) error {
	operator, err := uc.userRepo.GetByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: operator id=%d not found", operatorID)
			return ErrForbidden
		}
		uc.logger.Error("CreateBooking: failed to get operator id=%d: %v", operatorID, err)
		return fmt.Errorf("%w: failed to get operator: %v", ErrInternal, err)
	}

	if !operator.IsActive() || !operator.CanBookOnBehalf() {
		uc.logger.Warn("CreateBooking: operator id=%d role=%s cannot book on behalf", operatorID, operator.Role())
		return ErrForbidden
	}

	return nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		UserID:      b.UserID,
		GymID:       b.GymID,
		CourtNumber: b.CourtNumber,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		RequesterID: b.RequesterID,
		OperatedAt:  b.OperatedAt,
		Reason:      b.Reason,
		UserName:    b.UserName,
		GymName:     b.GymName,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
