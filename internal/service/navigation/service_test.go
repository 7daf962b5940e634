package navigation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/accountservice"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

type fakeAccounts struct {
	account *domain.Account
	err     error
}

func (f *fakeAccounts) GetAccount(_ context.Context, _ uuid.UUID) (*domain.Account, error) {
	return f.account, f.err
}

func TestGetNavigation_CoachTrialHasPremiumParity(t *testing.T) {
	id := uuid.New()
	svc := NewService(&fakeAccounts{account: &domain.Account{
		ID: id, AccountType: "coach", Plan: "gratis", SubscriptionStatus: "trial",
	}}, logger.NewNop())

	resp, err := svc.GetNavigation(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "free", resp.Plan)
	assert.Equal(t, "premium", resp.Tier)
	assert.True(t, resp.Trial)
	require.NotEmpty(t, resp.Features)
	assert.Equal(t, "dashboard", resp.Features[0].Feature)
	for _, f := range resp.Features {
		assert.Equal(t, "enabled", f.Visibility, f.Feature)
	}
}

func TestGetNavigation_BasicGymLocksPremium(t *testing.T) {
	svc := NewService(&fakeAccounts{account: &domain.Account{
		ID: uuid.New(), AccountType: "gym", Plan: "básico", SubscriptionStatus: "subscribed",
	}}, logger.NewNop())

	resp, err := svc.GetNavigation(context.Background(), uuid.New())
	require.NoError(t, err)

	got := make(map[string]string)
	order := make([]string, 0, len(resp.Features))
	for _, f := range resp.Features {
		got[f.Feature] = f.Visibility
		order = append(order, f.Feature)
	}

	assert.Equal(t, []string{
		"dashboard", "schedule", "classes", "members", "staff_management", "analytics", "marketing",
	}, order)
	assert.Equal(t, "enabled", got["members"])
	assert.Equal(t, "locked", got["analytics"])
	assert.Equal(t, "locked", got["marketing"])
	assert.Equal(t, "basic", resp.Tier)
}

func TestGetNavigation_UnknownAccountTypeIsEmpty(t *testing.T) {
	svc := NewService(&fakeAccounts{account: &domain.Account{
		ID: uuid.New(), AccountType: "sponsor", Plan: "premium",
	}}, logger.NewNop())

	resp, err := svc.GetNavigation(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, resp.Features)
}

func TestGetNavigation_Errors(t *testing.T) {
	svc := NewService(&fakeAccounts{err: accountservice.ErrAccountNotFound}, logger.NewNop())
	_, err := svc.GetNavigation(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAccountNotFound)

	svc = NewService(&fakeAccounts{err: errors.New("timeout")}, logger.NewNop())
	_, err = svc.GetNavigation(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAccountDirectory)
}
