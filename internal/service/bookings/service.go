package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-GymBookingService/internal/integrations/eventbus"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями после их создания
type Service struct {
	bookingRepo  BookingRepository
	cache        CalendarCache
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	cache CalendarCache,
	publisher EventPublisher,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		cache:        cache,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: realTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID.
// Видеть бронь могут владелец, оператор, создавший ее, и сотрудники.
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !canView(booking, actor) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя.
// Без фильтра по статусу возвращаются все брони, включая отмененные.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.BookingsFilter{UserID: &req.UserID, IncludeCancelled: true}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCourtBookings неотмененные брони корта с датой начала в [StartDate, EndDate]
func (s *Service) GetCourtBookings(ctx context.Context, req *models.GetCourtBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCourtBookings: gym=%d court=%d period=%s to %s",
		req.GymID, req.CourtNumber, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidTimeRange
	}

	from := s.startOfDay(req.StartDate)
	to := s.startOfDay(req.EndDate).AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		GymID:       &req.GymID,
		CourtNumber: &req.CourtNumber,
		From:        &from,
		To:          &to,
	})
	if err != nil {
		s.logger.Error("GetCourtBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCourtBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetConfirmations брони, созданные оператором на сегодня и еще ожидающие отметки посещения
func (s *Service) GetConfirmations(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	if !actor.CanOperate() {
		s.logger.Warn("GetConfirmations: user=%d is not an operator", actor.UserID)
		return nil, ErrAccessDenied
	}

	from := s.startOfDay(s.timeProvider.Now().In(s.location))
	to := from.AddDate(0, 0, 1)
	status := domain.StatusConfirmed

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		RequesterID: &actor.UserID,
		From:        &from,
		To:          &to,
		Status:      &status,
	})
	if err != nil {
		s.logger.Error("GetConfirmations: repository error for operator=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: GetConfirmations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetConfirmations: operator=%d has %d bookings to confirm", actor.UserID, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListAll все бронирования по фильтру (администратор)
func (s *Service) ListAll(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListAll: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет подтвержденное бронирование.
// Отменить могут владелец, оператор, создавший бронь, и сотрудники.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.Actor.UserID)

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	booking, err := s.transition(ctx, "Cancel", bookingID, domain.StatusCancelled, req.Reason, func(b *domain.Booking) error {
		if !canView(b, req.Actor) {
			return ErrAccessDenied
		}
		if !b.CanBeCancelled() {
			return ErrCannotCancel
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.afterTransition(ctx, booking, eventbus.BookingCancelled)
	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Complete отмечает, что пользователь пришел
func (s *Service) Complete(ctx context.Context, bookingID int64, actor domain.Actor) error {
	return s.close(ctx, "Complete", bookingID, actor, domain.StatusCompleted, eventbus.BookingCompleted)
}

// NoShow отмечает неявку пользователя
func (s *Service) NoShow(ctx context.Context, bookingID int64, actor domain.Actor) error {
	return s.close(ctx, "NoShow", bookingID, actor, domain.StatusNoShow, eventbus.BookingNoShow)
}

// Delete физически удаляет бронирование (администратор)
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, "Delete", bookingID)
	if err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Invalidate(ctx, booking.Court()); err != nil {
		s.logger.Warn("Delete: failed to invalidate calendar cache: %v", err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// UsageReport статистика бронирований по кортам спортзала за период [StartDate, EndDate]
func (s *Service) UsageReport(ctx context.Context, req *models.UsageReportRequest) (*models.UsageReportResponse, error) {
	if req.GymID <= 0 {
		return nil, fmt.Errorf("%w: gymID must be positive", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidTimeRange
	}

	from := s.startOfDay(req.StartDate)
	to := s.startOfDay(req.EndDate).AddDate(0, 0, 1)

	usage, err := s.bookingRepo.UsageByGym(ctx, req.GymID, from, to)
	if err != nil {
		s.logger.Error("UsageReport: repository error for gym=%d: %v", req.GymID, err)
		return nil, fmt.Errorf("%w: UsageReport - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUsage(req, usage), nil
}

// Вспомогательные методы

func (s *Service) close(ctx context.Context, op string, bookingID int64, actor domain.Actor, status domain.BookingStatus, routingKey string) error {
	s.logger.Info("%s: booking id=%d by user=%d", op, bookingID, actor.UserID)

	booking, err := s.transition(ctx, op, bookingID, status, nil, func(b *domain.Booking) error {
		if !b.IsOperatedBy(actor.UserID) && !actor.IsStaff() {
			return ErrAccessDenied
		}
		if !b.CanBeClosed() {
			return ErrCannotClose
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.afterTransition(ctx, booking, routingKey)
	s.logger.Info("%s: booking id=%d is now %s", op, bookingID, status)
	return nil
}

// transition блокирует бронь, проверяет check и меняет статус в одной транзакции
func (s *Service) transition(
	ctx context.Context,
	op string,
	bookingID int64,
	status domain.BookingStatus,
	reason *string,
	check func(b *domain.Booking) error,
) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.getBooking(txCtx, op, bookingID)
		if err != nil {
			return err
		}

		if err := check(b); err != nil {
			s.logger.Warn("%s: booking id=%d status=%s: %v", op, bookingID, b.Status, err)
			return err
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, status, reason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		b.Status = status
		if reason != nil {
			b.Reason = reason
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *Service) afterTransition(ctx context.Context, booking *domain.Booking, routingKey string) {
	if err := s.cache.Invalidate(ctx, booking.Court()); err != nil {
		s.logger.Warn("afterTransition: failed to invalidate calendar cache: %v", err)
	}
	if err := s.publisher.Publish(ctx, routingKey, eventbus.NewBookingEvent(booking)); err != nil {
		s.logger.Warn("afterTransition: failed to publish %s: %v", routingKey, err)
	}
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// startOfDay полночь календарной даты t в часовом поясе сервиса
func (s *Service) startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}

// canView владелец, оператор брони или сотрудник
func canView(b *domain.Booking, actor domain.Actor) bool {
	return b.UserID == actor.UserID || b.IsOperatedBy(actor.UserID) || actor.IsStaff()
}
