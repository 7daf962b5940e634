package create_booking

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/booking"
	subjectRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/subject"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/notifications"
)

// UseCase use case для создания заявки на бронирование
type UseCase struct {
	resolver     SlotResolver
	bookingRepo  BookingRepository
	subjectRepo  SubjectRepository
	txManager    TransactionManager
	publisher    NotificationPublisher
	metrics      MetricsRecorder
	calendar     *domain.Calendar
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	resolver SlotResolver,
	bookingRepo BookingRepository,
	subjectRepo SubjectRepository,
	txManager TransactionManager,
	publisher NotificationPublisher,
	metrics MetricsRecorder,
	calendar *domain.Calendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:     resolver,
		bookingRepo:  bookingRepo,
		subjectRepo:  subjectRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Повторная проверка слота и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: requester=%s, provider=%s, subject=%s, date=%s, time=%s",
		req.RequesterID, req.ProviderID, req.SubjectID, req.Date, req.Time)

	// 1. Валидация полей формы
	parsed, err := validateRequest(req, uc.calendar, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга/занятие: принадлежность провайдеру и режим проведения
	subject, err := uc.subjectRepo.GetByID(ctx, req.SubjectID)
	if err != nil {
		if errors.Is(err, subjectRepo.ErrSubjectNotFound) {
			uc.logger.Warn("CreateBooking: subject id=%s not found", req.SubjectID)
			return nil, ErrSubjectNotFound
		}
		uc.logger.Error("CreateBooking: failed to get subject id=%s: %v", req.SubjectID, err)
		return nil, fmt.Errorf("%w: failed to get subject: %w", ErrInternal, err)
	}

	if err := validateSubject(subject, req); err != nil {
		uc.logger.Warn("CreateBooking: subject validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Проверка слота и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Свободное время на момент отправки (бронирования дня блокируются FOR UPDATE)
		slots, err := uc.resolver.Resolve(txCtx, req.ProviderID, parsed.date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to resolve slots: %v", err)
			return fmt.Errorf("%w: failed to resolve slots: %w", ErrInternal, err)
		}

		if !slices.Contains(slots, parsed.time) {
			uc.logger.Warn("CreateBooking: slot %s %s is not available for provider=%s",
				req.Date, parsed.time, req.ProviderID)
			return &ValidationError{Field: FieldTime, Reason: ReasonNotAvailable, Cause: ErrSlotNotAvailable}
		}

		// 3.2. Создаем заявку
		subjectID := subject.ID
		booking := &domain.Booking{
			RequesterID: req.RequesterID,
			ProviderID:  req.ProviderID,
			SubjectID:   &subjectID,
			ScheduledAt: uc.calendar.Combine(parsed.date, parsed.time),
			Status:      domain.StatusPendingConfirmation,
			Note:        buildNote(req.Address, req.Note),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot taken concurrently for provider=%s", req.ProviderID)
				return &ValidationError{Field: FieldTime, Reason: ReasonNotAvailable, Cause: ErrSlotNotAvailable}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	if uc.metrics != nil {
		uc.metrics.BookingCreated(string(result.Status))
	}

	// 4. Уведомление провайдера: ошибка не отменяет созданную заявку
	uc.notifyProvider(ctx, result)

	return &Response{
		ID:          result.ID,
		RequesterID: result.RequesterID,
		ProviderID:  result.ProviderID,
		SubjectID:   subject.ID,
		ScheduledAt: result.ScheduledAt,
		Date:        uc.calendar.FormatDate(result.ScheduledAt),
		Time:        uc.calendar.TimeOf(result.ScheduledAt),
		Status:      result.Status,
		Note:        result.Note,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

func (uc *UseCase) notifyProvider(ctx context.Context, booking *domain.Booking) {
	event := notifications.Event{
		Type:        notifications.EventBookingRequested,
		BookingID:   booking.ID,
		RecipientID: booking.ProviderID,
		ProviderID:  booking.ProviderID,
		RequesterID: booking.RequesterID,
		ScheduledAt: booking.ScheduledAt,
		Status:      string(booking.Status),
		OccurredAt:  uc.timeProvider.Now(),
	}
	if booking.Note != nil {
		event.Note = *booking.Note
	}

	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to notify provider=%s about booking id=%s: %v",
			booking.ProviderID, booking.ID, err)
	}
}
