package accountservice

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
)

// Account модель аккаунта из справочника
type Account struct {
	ID                 uuid.UUID   `json:"id"`
	AccountType        string      `json:"account_type"` // user | gym | coach
	Plan               string      `json:"plan"`         // free | basic | premium (или gratis/basico)
	SubscriptionStatus string      `json:"subscription_status"`
	ManagedProviderIDs []uuid.UUID `json:"managed_provider_ids"`
	IsAdmin            bool        `json:"is_admin"`
}

func (a Account) toDomain() *domain.Account {
	return &domain.Account{
		ID:                 a.ID,
		AccountType:        a.AccountType,
		Plan:               a.Plan,
		SubscriptionStatus: a.SubscriptionStatus,
		ManagedProviderIDs: a.ManagedProviderIDs,
		IsAdmin:            a.IsAdmin,
	}
}
