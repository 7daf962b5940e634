package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	availabilityCache "github.com/m04kA/SMC-FitnessScheduling/internal/infra/cache/availability"
	availabilityRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/availability"
	blockRepo "github.com/m04kA/SMC-FitnessScheduling/internal/infra/storage/block"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/accountservice"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/ptr"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

type fakeAvailabilityRepo struct {
	patterns map[uuid.UUID]domain.WeeklyPattern
	reads    int
	err      error
}

func (f *fakeAvailabilityRepo) GetByProvider(_ context.Context, providerID uuid.UUID) (domain.WeeklyPattern, error) {
	f.reads++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.patterns[providerID]
	if !ok {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return p, nil
}

func (f *fakeAvailabilityRepo) Replace(_ context.Context, providerID uuid.UUID, pattern domain.WeeklyPattern) error {
	if f.err != nil {
		return f.err
	}
	f.patterns[providerID] = pattern
	return nil
}

type fakeBlockRepo struct {
	blocks map[uuid.UUID]*domain.BlockedInterval
}

func (f *fakeBlockRepo) Create(_ context.Context, b *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	f.blocks[b.ID] = b
	return b, nil
}

func (f *fakeBlockRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.BlockedInterval, error) {
	b, ok := f.blocks[id]
	if !ok {
		return nil, blockRepo.ErrBlockNotFound
	}
	return b, nil
}

func (f *fakeBlockRepo) ListByProvider(_ context.Context, providerID uuid.UUID, date *time.Time) ([]*domain.BlockedInterval, error) {
	var out []*domain.BlockedInterval
	for _, b := range f.blocks {
		if b.ProviderID != providerID {
			continue
		}
		if date != nil && !b.Date.Equal(*date) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.blocks[id]; !ok {
		return blockRepo.ErrBlockNotFound
	}
	delete(f.blocks, id)
	return nil
}

type fakeAccounts struct {
	accounts map[uuid.UUID]*domain.Account
	err      error
}

func (f *fakeAccounts) GetAccount(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.accounts[id]
	if !ok {
		return nil, accountservice.ErrAccountNotFound
	}
	return a, nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc      *Service
	repo     *fakeAvailabilityRepo
	blocks   *fakeBlockRepo
	accounts *fakeAccounts
	redis    *miniredis.Miniredis
	cal      *domain.Calendar
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &fixture{
		repo:     &fakeAvailabilityRepo{patterns: map[uuid.UUID]domain.WeeklyPattern{}},
		blocks:   &fakeBlockRepo{blocks: map[uuid.UUID]*domain.BlockedInterval{}},
		accounts: &fakeAccounts{accounts: map[uuid.UUID]*domain.Account{}},
		redis:    mr,
		cal:      domain.NewFixedCalendar(-5),
	}
	f.svc = NewService(f.repo, f.blocks, availabilityCache.NewCache(client, time.Minute),
		f.accounts, inlineTx{}, f.cal, logger.NewNop())
	return f
}

func TestGetAvailability_DefaultPatternIsCached(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	provider := uuid.New()

	resp, err := f.svc.GetAvailability(ctx, provider)
	require.NoError(t, err)
	assert.False(t, resp.Configured)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Lunes", resp.Days[0].DayName)
	assert.Len(t, resp.Days[0].TimeSlots, 16)
	assert.Equal(t, "06:00", resp.Days[0].TimeSlots[0])
	assert.Equal(t, "21:00", resp.Days[0].TimeSlots[15])

	pattern, err := f.svc.GetWeeklyPattern(ctx, provider)
	require.NoError(t, err)
	assert.Len(t, pattern, 7)
	assert.Equal(t, 1, f.repo.reads, "second read must be served from cache")
}

func TestSetWeeklyPattern_ProviderItself(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	provider := uuid.New()

	// прогреваем кеш расписанием по умолчанию
	_, err := f.svc.GetWeeklyPattern(ctx, provider)
	require.NoError(t, err)

	resp, err := f.svc.SetWeeklyPattern(ctx, &models.SetAvailabilityRequest{
		CallerID:   provider,
		ProviderID: provider,
		Days: []models.DayDTO{
			{DayName: "miercoles", TimeSlots: []string{"10:00", "08:00"}},
			{DayName: "Domingo", TimeSlots: []string{}},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Configured)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "Miércoles", resp.Days[0].DayName)
	assert.Equal(t, []string{"10:00", "08:00"}, resp.Days[0].TimeSlots)

	pattern, err := f.svc.GetWeeklyPattern(ctx, provider)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyPattern{
		{DayName: domain.Miercoles, TimeSlots: []types.TimeString{"10:00", "08:00"}},
	}, pattern)
	assert.Equal(t, 2, f.repo.reads, "write must invalidate cached pattern")
}

func TestSetWeeklyPattern_AllDaysClosedIsNotDefault(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	provider := uuid.New()

	_, err := f.svc.SetWeeklyPattern(ctx, &models.SetAvailabilityRequest{CallerID: provider, ProviderID: provider})
	require.NoError(t, err)

	resp, err := f.svc.GetAvailability(ctx, provider)
	require.NoError(t, err)
	assert.True(t, resp.Configured)
	assert.Empty(t, resp.Days)
}

func TestSetWeeklyPattern_Authority(t *testing.T) {
	provider := uuid.New()
	manager := uuid.New()
	admin := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name    string
		caller  uuid.UUID
		wantErr error
	}{
		{"managing account", manager, nil},
		{"admin", admin, nil},
		{"unrelated account", stranger, ErrAccessDenied},
		{"unknown account", uuid.New(), ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.accounts.accounts[manager] = &domain.Account{ID: manager, AccountType: "gym", ManagedProviderIDs: []uuid.UUID{provider}}
			f.accounts.accounts[admin] = &domain.Account{ID: admin, IsAdmin: true}
			f.accounts.accounts[stranger] = &domain.Account{ID: stranger, AccountType: "coach"}

			_, err := f.svc.SetWeeklyPattern(context.Background(), &models.SetAvailabilityRequest{
				CallerID:   tt.caller,
				ProviderID: provider,
				Days:       []models.DayDTO{{DayName: "Lunes", TimeSlots: []string{"09:00"}}},
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.repo.patterns)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, f.repo.patterns, provider)
		})
	}
}

func TestSetWeeklyPattern_InvalidPattern(t *testing.T) {
	tests := []struct {
		name string
		days []models.DayDTO
	}{
		{"unknown day", []models.DayDTO{{DayName: "Monday", TimeSlots: []string{"09:00"}}}},
		{"duplicate day", []models.DayDTO{{DayName: "Lunes"}, {DayName: "lunes"}}},
		{"garbled slot", []models.DayDTO{{DayName: "Lunes", TimeSlots: []string{"9am"}}}},
		{"duplicate slot", []models.DayDTO{{DayName: "Lunes", TimeSlots: []string{"09:00", "09:00"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			provider := uuid.New()

			_, err := f.svc.SetWeeklyPattern(context.Background(), &models.SetAvailabilityRequest{
				CallerID: provider, ProviderID: provider, Days: tt.days,
			})

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, f.repo.patterns)
		})
	}
}

func TestSetWeeklyPattern_AccountDirectoryDown(t *testing.T) {
	f := newFixture(t)
	f.accounts.err = errors.New("connection refused")

	_, err := f.svc.SetWeeklyPattern(context.Background(), &models.SetAvailabilityRequest{
		CallerID: uuid.New(), ProviderID: uuid.New(),
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}

func TestGetWeeklyPattern_CacheDownFallsBackToRepository(t *testing.T) {
	f := newFixture(t)
	provider := uuid.New()
	f.repo.patterns[provider] = domain.WeeklyPattern{
		{DayName: domain.Viernes, TimeSlots: []types.TimeString{"18:00"}},
	}
	f.redis.Close()

	pattern, err := f.svc.GetWeeklyPattern(context.Background(), provider)

	require.NoError(t, err)
	assert.Equal(t, f.repo.patterns[provider], pattern)
}

func TestGetWeeklyPattern_RepositoryError(t *testing.T) {
	f := newFixture(t)
	f.repo.err = errors.New("db down")

	_, err := f.svc.GetWeeklyPattern(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestBlocks_AddListRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	provider := uuid.New()

	wholeDay, err := f.svc.AddBlock(ctx, &models.AddBlockRequest{
		CallerID: provider, ProviderID: provider, Date: "2024-06-10", Reason: "Festivo",
	})
	require.NoError(t, err)
	assert.True(t, wholeDay.WholeDay)
	assert.Nil(t, wholeDay.Time)
	assert.Equal(t, "2024-06-10", wholeDay.Date)
	assert.Equal(t, 24*time.Hour, wholeDay.EndsAt.Sub(wholeDay.StartsAt))

	single, err := f.svc.AddBlock(ctx, &models.AddBlockRequest{
		CallerID: provider, ProviderID: provider, Date: "2024-06-11", Time: ptr.Ptr("09:00"),
	})
	require.NoError(t, err)
	assert.False(t, single.WholeDay)
	assert.Equal(t, "09:00", *single.Time)
	assert.Equal(t, time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC), single.StartsAt.UTC())

	all, err := f.svc.ListBlocks(ctx, provider, provider, "")
	require.NoError(t, err)
	assert.Len(t, all.Blocks, 2)

	oneDay, err := f.svc.ListBlocks(ctx, provider, provider, "2024-06-11")
	require.NoError(t, err)
	require.Len(t, oneDay.Blocks, 1)
	assert.Equal(t, single.ID, oneDay.Blocks[0].ID)

	require.NoError(t, f.svc.RemoveBlock(ctx, provider, single.ID))
	assert.NotContains(t, f.blocks.blocks, single.ID)
}

func TestAddBlock_InvalidInput(t *testing.T) {
	f := newFixture(t)
	provider := uuid.New()

	_, err := f.svc.AddBlock(context.Background(), &models.AddBlockRequest{
		CallerID: provider, ProviderID: provider, Date: "10-06-2024",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.AddBlock(context.Background(), &models.AddBlockRequest{
		CallerID: provider, ProviderID: provider, Date: "2024-06-10", Time: ptr.Ptr("25:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, f.blocks.blocks)
}

func TestRemoveBlock_MissingIsNoop(t *testing.T) {
	f := newFixture(t)

	err := f.svc.RemoveBlock(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
}

func TestRemoveBlock_OtherProvidersBlockDenied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()
	f.accounts.accounts[other] = &domain.Account{ID: other, AccountType: "coach"}

	block, err := f.svc.AddBlock(ctx, &models.AddBlockRequest{
		CallerID: owner, ProviderID: owner, Date: "2024-06-10",
	})
	require.NoError(t, err)

	err = f.svc.RemoveBlock(ctx, other, block.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, f.blocks.blocks, block.ID)
}
