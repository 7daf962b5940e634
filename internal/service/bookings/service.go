package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/accountservice"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/notifications"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings/models"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// Options настройки жизненного цикла бронирований
type Options struct {
	// AllowRequesterCancel разрешает клиенту отменять свою неподтверждённую заявку
	AllowRequesterCancel bool
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	accounts     AccountDirectory
	txManager    TransactionManager
	publisher    NotificationPublisher
	metrics      MetricsRecorder
	calendar     *domain.Calendar
	opts         Options
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований. metrics может быть nil
func NewService(
	bookingRepo BookingRepository,
	accounts AccountDirectory,
	txManager TransactionManager,
	publisher NotificationPublisher,
	metrics MetricsRecorder,
	calendar *domain.Calendar,
	opts Options,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		accounts:     accounts,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		calendar:     calendar,
		opts:         opts,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит своё бронирование, провайдер (или управляющий им аккаунт) - бронирования провайдера
func (s *Service) GetByID(ctx context.Context, callerID, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for caller=%s", id, callerID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.RequesterID != callerID {
		if err := s.checkProviderAccess(ctx, callerID, booking.ProviderID); err != nil {
			s.logger.Warn("GetByID: access denied for caller=%s to booking id=%s", callerID, id)
			return nil, err
		}
	}

	return models.FromDomainBooking(booking, s.calendar), nil
}

// List получает бронирования с фильтрацией, ограниченной тем, что вызывающий может видеть
//
// - без providerId: только бронирования самого вызывающего как клиента
// - с providerId: бронирования провайдера, нужен доступ к провайдеру
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: caller=%s, provider=%v, requester=%v, status=%v",
		req.CallerID, req.ProviderID, req.RequesterID, req.Status)

	filter, err := req.ToDomainFilter(s.calendar)
	if err != nil {
		s.logger.Warn("List: invalid filter for caller=%s: %v", req.CallerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if filter.ProviderID != nil {
		if err := s.checkProviderAccess(ctx, req.CallerID, *filter.ProviderID); err != nil {
			return nil, err
		}
	} else {
		if filter.RequesterID != nil && *filter.RequesterID != req.CallerID {
			s.logger.Warn("List: caller=%s asked for bookings of requester=%s", req.CallerID, *filter.RequesterID)
			return nil, ErrAccessDenied
		}
		callerID := req.CallerID
		filter.RequesterID = &callerID
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for caller=%s: %v", req.CallerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for caller=%s", len(bookings), req.CallerID)
	return models.FromDomainBookingList(bookings, s.calendar), nil
}

// UpdateStatus переводит бронирование в новый статус
// Доступно провайдеру; клиенту - только отмена своей заявки, если это разрешено настройками
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s by caller=%s",
		req.BookingID, req.Status, req.CallerID)

	next, err := domain.ParseBookingStatus(strings.TrimSpace(req.Status))
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, req.BookingID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 1. Права проверяем до транзакции: справочник аккаунтов - сетевой вызов
	current, err := s.getBooking(ctx, "UpdateStatus", req.BookingID)
	if err != nil {
		return nil, err
	}
	if err := s.checkTransitionAuthority(ctx, req.CallerID, current, next); err != nil {
		return nil, err
	}

	// 2. Повторное чтение под блокировкой и смена статуса
	var previous domain.BookingStatus
	var updated *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "UpdateStatus", req.BookingID)
		if err != nil {
			return err
		}

		// Статус мог измениться после первой проверки: клиент отменяет только ещё не подтверждённую заявку
		if _, err := s.checkRequesterTransition(req.CallerID, booking, next); err != nil {
			return err
		}

		previous = booking.Status
		if err := booking.Transition(next); err != nil {
			s.logger.Warn("UpdateStatus: booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, previous, next)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, booking.ID, booking.Status); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				return ErrSlotNotAvailable
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		booking.UpdatedAt = s.timeProvider.Now()
		updated = booking
		return nil
	})
	if err != nil {
		if isServiceError(err) {
			return nil, err
		}
		s.logger.Error("UpdateStatus: transaction failed for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s moved %s -> %s", updated.ID, previous, updated.Status)

	if s.metrics != nil {
		s.metrics.BookingTransition(string(previous), string(updated.Status))
	}
	s.notifyStatusChange(ctx, req.CallerID, updated)

	return models.FromDomainBooking(updated, s.calendar), nil
}

// CreateBlockedSlot занимает слот провайдера служебной записью со статусом blocked
func (s *Service) CreateBlockedSlot(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BookingResponse, error) {
	s.logger.Info("CreateBlockedSlot: provider=%s, date=%s, time=%s by caller=%s",
		req.ProviderID, req.Date, req.Time, req.CallerID)

	if err := s.checkProviderAccess(ctx, req.CallerID, req.ProviderID); err != nil {
		return nil, err
	}

	date, err := s.calendar.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}
	t, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, req.Time)
	}
	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return nil, fmt.Errorf("%w: note is too long", ErrInvalidInput)
	}

	created, err := s.bookingRepo.Create(ctx, &domain.Booking{
		RequesterID: req.ProviderID,
		ProviderID:  req.ProviderID,
		ScheduledAt: s.calendar.Combine(date, t),
		Status:      domain.StatusBlocked,
		Note:        req.Note,
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
			s.logger.Warn("CreateBlockedSlot: slot %s %s of provider=%s is already occupied", req.Date, t, req.ProviderID)
			return nil, ErrSlotNotAvailable
		}
		s.logger.Error("CreateBlockedSlot: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: CreateBlockedSlot - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.BookingCreated(string(created.Status))
	}

	s.logger.Info("CreateBlockedSlot: successfully created blocked booking id=%s", created.ID)
	return models.FromDomainBooking(created, s.calendar), nil
}

// DeleteBlockedSlot удаляет служебную запись blocked. Обычные бронирования не удаляются
func (s *Service) DeleteBlockedSlot(ctx context.Context, callerID, bookingID uuid.UUID) error {
	s.logger.Info("DeleteBlockedSlot: booking id=%s by caller=%s", bookingID, callerID)

	booking, err := s.getBooking(ctx, "DeleteBlockedSlot", bookingID)
	if err != nil {
		return err
	}

	if err := s.checkProviderAccess(ctx, callerID, booking.ProviderID); err != nil {
		return err
	}

	if !booking.IsBlocked() {
		s.logger.Warn("DeleteBlockedSlot: booking id=%s has status=%s", bookingID, booking.Status)
		return ErrNotBlocked
	}

	if err := s.bookingRepo.DeleteBlocked(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBlockedSlot: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: DeleteBlockedSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedSlot: successfully deleted booking id=%s", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkTransitionAuthority проверяет право вызывающего сменить статус бронирования
func (s *Service) checkTransitionAuthority(ctx context.Context, callerID uuid.UUID, booking *domain.Booking, next domain.BookingStatus) error {
	if isRequester, err := s.checkRequesterTransition(callerID, booking, next); isRequester {
		return err
	}

	return s.checkProviderAccess(ctx, callerID, booking.ProviderID)
}

// checkRequesterTransition проверяет переход, который запрашивает клиент записи.
// isRequester=false - вызывающий не клиент этой записи, решает checkProviderAccess
func (s *Service) checkRequesterTransition(callerID uuid.UUID, booking *domain.Booking, next domain.BookingStatus) (isRequester bool, err error) {
	if booking.RequesterID != callerID || booking.ProviderID == callerID {
		return false, nil
	}

	if s.opts.AllowRequesterCancel &&
		booking.Status == domain.StatusPendingConfirmation &&
		next == domain.StatusCancelled {
		return true, nil
	}

	s.logger.Warn("checkRequesterTransition: requester=%s may not move booking id=%s from %s to %s",
		callerID, booking.ID, booking.Status, next)
	return true, ErrAccessDenied
}

// checkProviderAccess проверяет, что вызывающий может управлять провайдером
func (s *Service) checkProviderAccess(ctx context.Context, callerID, providerID uuid.UUID) error {
	if callerID == providerID {
		return nil
	}

	account, err := s.accounts.GetAccount(ctx, callerID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			s.logger.Warn("checkProviderAccess: caller=%s not found in account directory", callerID)
			return ErrAccessDenied
		}
		s.logger.Error("checkProviderAccess: failed to get account=%s: %v", callerID, err)
		return fmt.Errorf("%w: checkProviderAccess - failed to get account: %v", ErrInternal, err)
	}

	if !account.CanManageProvider(providerID) {
		s.logger.Warn("checkProviderAccess: caller=%s has no authority over provider=%s", callerID, providerID)
		return ErrAccessDenied
	}

	return nil
}

// notifyStatusChange уведомляет другую сторону о подтверждении или отмене.
// Ошибка публикации не отменяет смену статуса
func (s *Service) notifyStatusChange(ctx context.Context, callerID uuid.UUID, booking *domain.Booking) {
	var eventType notifications.EventType
	switch booking.Status {
	case domain.StatusConfirmed:
		eventType = notifications.EventBookingConfirmed
	case domain.StatusCancelled:
		eventType = notifications.EventBookingCancelled
	default:
		return
	}

	recipient := booking.RequesterID
	if callerID == booking.RequesterID {
		recipient = booking.ProviderID
	}

	event := notifications.Event{
		Type:        eventType,
		BookingID:   booking.ID,
		RecipientID: recipient,
		ProviderID:  booking.ProviderID,
		RequesterID: booking.RequesterID,
		ScheduledAt: booking.ScheduledAt,
		Status:      string(booking.Status),
		OccurredAt:  s.timeProvider.Now(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("notifyStatusChange: failed to publish %s for booking id=%s: %v", eventType, booking.ID, err)
	}
}

func isServiceError(err error) bool {
	for _, target := range []error{
		ErrBookingNotFound, ErrAccessDenied, ErrInvalidTransition, ErrSlotNotAvailable, ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
