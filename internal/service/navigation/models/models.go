package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
)

// FeatureDTO пункт навигации
type FeatureDTO struct {
	Feature      string `json:"feature"`
	Visibility   string `json:"visibility"`   // "enabled" | "locked"
	RequiredTier string `json:"requiredTier"` // для заглушки с предложением апгрейда
}

// NavigationResponse набор пунктов навигации аккаунта в порядке каталога
type NavigationResponse struct {
	AccountID   uuid.UUID    `json:"accountId"`
	AccountType string       `json:"accountType"`
	Plan        string       `json:"plan"`
	Tier        string       `json:"tier"`
	Trial       bool         `json:"trial"`
	Features    []FeatureDTO `json:"features"`
}

// FromDomainAccount строит ответ из аккаунта и вычисленной видимости
func FromDomainAccount(account *domain.Account, visible map[domain.Feature]domain.Visibility) *NavigationResponse {
	resp := &NavigationResponse{
		AccountID:   account.ID,
		AccountType: account.AccountType,
		Plan:        string(domain.ParsePlan(account.Plan)),
		Tier:        domain.EntitlementTier(account.Plan, account.SubscriptionStatus).String(),
		Trial:       domain.ParseSubscriptionStatus(account.SubscriptionStatus) == domain.SubscriptionTrial,
		Features:    make([]FeatureDTO, 0, len(visible)),
	}

	for _, entry := range domain.CatalogueFor(account.AccountType) {
		visibility, ok := visible[entry.Feature]
		if !ok {
			continue
		}
		resp.Features = append(resp.Features, FeatureDTO{
			Feature:      string(entry.Feature),
			Visibility:   string(visibility),
			RequiredTier: entry.Tier.String(),
		})
	}

	return resp
}
