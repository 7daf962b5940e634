package domain

import (
	"strings"

	"github.com/google/uuid"
)

// AccountType is the role of an account in the product
type AccountType string

const (
	AccountUser  AccountType = "user"
	AccountGym   AccountType = "gym"
	AccountCoach AccountType = "coach"
)

// Plan is the subscription plan of an account
type Plan string

const (
	PlanFree    Plan = "free"
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

// SubscriptionStatus is the billing state of an account
type SubscriptionStatus string

const (
	SubscriptionTrial      SubscriptionStatus = "trial"
	SubscriptionSubscribed SubscriptionStatus = "subscribed"
	SubscriptionExpired    SubscriptionStatus = "expired"
)

var planAliases = map[string]Plan{
	"free":    PlanFree,
	"gratis":  PlanFree,
	"basic":   PlanBasic,
	"basico":  PlanBasic,
	"básico":  PlanBasic,
	"premium": PlanPremium,
}

// ParsePlan maps stored plan names (including Spanish aliases) to a Plan.
// Unknown plans are treated as free.
func ParsePlan(s string) Plan {
	if p, ok := planAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p
	}
	return PlanFree
}

// ParseSubscriptionStatus normalizes a status string; unknown values map to expired.
func ParseSubscriptionStatus(s string) SubscriptionStatus {
	switch st := SubscriptionStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case SubscriptionTrial, SubscriptionSubscribed, SubscriptionExpired:
		return st
	default:
		return SubscriptionExpired
	}
}

// ParseAccountType normalizes an account type string
func ParseAccountType(s string) (AccountType, bool) {
	switch t := AccountType(strings.ToLower(strings.TrimSpace(s))); t {
	case AccountUser, AccountGym, AccountCoach:
		return t, true
	default:
		return "", false
	}
}

// Account is the caller as known to the account directory
type Account struct {
	ID                 uuid.UUID
	AccountType        string
	Plan               string
	SubscriptionStatus string
	ManagedProviderIDs []uuid.UUID
	IsAdmin            bool
}

// IsProvider returns true for coach and gym accounts
func (a *Account) IsProvider() bool {
	t, ok := ParseAccountType(a.AccountType)
	return ok && (t == AccountCoach || t == AccountGym)
}

// CanManageProvider returns true if the account has authority over providerID
func (a *Account) CanManageProvider(providerID uuid.UUID) bool {
	if a.IsAdmin || a.ID == providerID {
		return true
	}
	for _, id := range a.ManagedProviderIDs {
		if id == providerID {
			return true
		}
	}
	return false
}
