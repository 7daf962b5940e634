package navigation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/accountservice"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/navigation/models"
)

// Service вычисляет доступные разделы навигации по роли и тарифу
type Service struct {
	accounts AccountDirectory
	logger   Logger
}

// NewService создает новый экземпляр сервиса навигации
func NewService(accounts AccountDirectory, logger Logger) *Service {
	return &Service{accounts: accounts, logger: logger}
}

// GetNavigation возвращает пункты навигации вызывающего.
// Неизвестный тип аккаунта даёт пустой список, а не ошибку
func (s *Service) GetNavigation(ctx context.Context, callerID uuid.UUID) (*models.NavigationResponse, error) {
	s.logger.Info("GetNavigation: resolving features for caller=%s", callerID)

	account, err := s.accounts.GetAccount(ctx, callerID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			s.logger.Warn("GetNavigation: account=%s not found", callerID)
			return nil, ErrAccountNotFound
		}
		s.logger.Error("GetNavigation: failed to get account=%s: %v", callerID, err)
		return nil, fmt.Errorf("%w: %v", ErrAccountDirectory, err)
	}

	visible := domain.ResolveVisibleFeatures(account.AccountType, account.Plan, account.SubscriptionStatus)
	if len(visible) == 0 {
		s.logger.Warn("GetNavigation: account=%s has unknown type %q", callerID, account.AccountType)
	}

	resp := models.FromDomainAccount(account, visible)
	s.logger.Info("GetNavigation: account=%s type=%s tier=%s, %d features", callerID, resp.AccountType, resp.Tier, len(resp.Features))
	return resp, nil
}
