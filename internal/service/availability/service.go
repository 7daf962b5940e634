package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/availability"
	blockRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/block"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/accountservice"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
)

// Service сервис недельного расписания и исключений из него
type Service struct {
	availabilityRepo AvailabilityRepository
	blockRepo        BlockRepository
	cache            PatternCache
	accounts         AccountDirectory
	txManager        TransactionManager
	calendar         *domain.Calendar
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	availabilityRepo AvailabilityRepository,
	blockRepo BlockRepository,
	cache PatternCache,
	accounts AccountDirectory,
	txManager TransactionManager,
	calendar *domain.Calendar,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		blockRepo:        blockRepo,
		cache:            cache,
		accounts:         accounts,
		txManager:        txManager,
		calendar:         calendar,
		logger:           logger,
	}
}

// GetWeeklyPattern возвращает расписание провайдера.
// Если провайдер ничего не настраивал, возвращается расписание по умолчанию
func (s *Service) GetWeeklyPattern(ctx context.Context, providerID uuid.UUID) (domain.WeeklyPattern, error) {
	pattern, _, err := s.loadPattern(ctx, providerID)
	return pattern, err
}

// GetAvailability публичный метод - расписание провайдера для отображения
func (s *Service) GetAvailability(ctx context.Context, providerID uuid.UUID) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetAvailability: fetching pattern for provider=%s", providerID)

	pattern, configured, err := s.loadPattern(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPattern(providerID, pattern, configured), nil
}

// SetWeeklyPattern полностью заменяет расписание провайдера
// Доступно самому провайдеру, управляющему им аккаунту и администратору
func (s *Service) SetWeeklyPattern(ctx context.Context, req *models.SetAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("SetWeeklyPattern: provider=%s, %d days by caller=%s", req.ProviderID, len(req.Days), req.CallerID)

	if err := s.checkProviderAccess(ctx, req.CallerID, req.ProviderID); err != nil {
		return nil, err
	}

	pattern, err := domain.NormalizeWeeklyPattern(req.ToDomainDays())
	if err != nil {
		s.logger.Warn("SetWeeklyPattern: invalid pattern for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.Replace(txCtx, req.ProviderID, pattern)
	})
	if err != nil {
		s.logger.Error("SetWeeklyPattern: failed to replace pattern for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: SetWeeklyPattern - repository error: %v", ErrInternal, err)
	}

	// Старое расписание не должно пережить запись
	if err := s.cache.Invalidate(ctx, req.ProviderID); err != nil {
		s.logger.Error("SetWeeklyPattern: failed to invalidate cache for provider=%s: %v", req.ProviderID, err)
	}

	s.logger.Info("SetWeeklyPattern: successfully saved %d open days for provider=%s", len(pattern), req.ProviderID)
	return models.FromDomainPattern(req.ProviderID, pattern, true), nil
}

// AddBlock добавляет исключение (весь день, если время не указано)
func (s *Service) AddBlock(ctx context.Context, req *models.AddBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("AddBlock: provider=%s, date=%s, time=%v by caller=%s", req.ProviderID, req.Date, req.Time, req.CallerID)

	if err := s.checkProviderAccess(ctx, req.CallerID, req.ProviderID); err != nil {
		return nil, err
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	block, err := req.ToDomainBlock(s.calendar)
	if err != nil {
		s.logger.Warn("AddBlock: invalid block for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("AddBlock: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: AddBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlock: successfully created block id=%s", created.ID)
	return models.FromDomainBlock(created, s.calendar), nil
}

// RemoveBlock удаляет исключение. Удаление несуществующего исключения не является ошибкой
func (s *Service) RemoveBlock(ctx context.Context, callerID, blockID uuid.UUID) error {
	s.logger.Info("RemoveBlock: block id=%s by caller=%s", blockID, callerID)

	block, err := s.blockRepo.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Info("RemoveBlock: block id=%s already absent", blockID)
			return nil
		}
		s.logger.Error("RemoveBlock: repository error for block id=%s: %v", blockID, err)
		return fmt.Errorf("%w: RemoveBlock - repository error: %v", ErrInternal, err)
	}

	if err := s.checkProviderAccess(ctx, callerID, block.ProviderID); err != nil {
		return err
	}

	if err := s.blockRepo.Delete(ctx, blockID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return nil
		}
		s.logger.Error("RemoveBlock: failed to delete block id=%s: %v", blockID, err)
		return fmt.Errorf("%w: RemoveBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveBlock: successfully removed block id=%s", blockID)
	return nil
}

// ListBlocks возвращает исключения провайдера, опционально за один день (date в формате YYYY-MM-DD)
func (s *Service) ListBlocks(ctx context.Context, callerID, providerID uuid.UUID, date string) (*models.BlockListResponse, error) {
	s.logger.Info("ListBlocks: provider=%s, date=%q by caller=%s", providerID, date, callerID)

	if err := s.checkProviderAccess(ctx, callerID, providerID); err != nil {
		return nil, err
	}

	var day *time.Time
	if date != "" {
		parsed, err := s.calendar.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
		}
		day = &parsed
	}

	blocks, err := s.blockRepo.ListByProvider(ctx, providerID, day)
	if err != nil {
		s.logger.Error("ListBlocks: repository error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(blocks, s.calendar), nil
}

// Вспомогательные методы

// loadPattern читает расписание через кеш. Ошибки кеша не мешают чтению из БД
func (s *Service) loadPattern(ctx context.Context, providerID uuid.UUID) (domain.WeeklyPattern, bool, error) {
	pattern, configured, found, err := s.cache.Get(ctx, providerID)
	if err != nil {
		s.logger.Warn("loadPattern: cache read failed for provider=%s: %v", providerID, err)
	}
	if found {
		return pattern, configured, nil
	}

	configured = true
	pattern, err = s.availabilityRepo.GetByProvider(ctx, providerID)
	if err != nil {
		if !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Error("loadPattern: repository error for provider=%s: %v", providerID, err)
			return nil, false, fmt.Errorf("%w: loadPattern - repository error: %w", ErrInternal, err)
		}
		pattern, configured = domain.DefaultWeeklyPattern(), false
	}

	if err := s.cache.Set(ctx, providerID, pattern, configured); err != nil {
		s.logger.Warn("loadPattern: cache write failed for provider=%s: %v", providerID, err)
	}

	return pattern, configured, nil
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
