package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/domain"
)

func TestSettleViewNeverOverspends(t *testing.T) {
	repo := NewAdRepository([]domain.Campaign{
		{ID: 1, UserID: DemoAdvertiserID, Status: domain.CampaignActive, RemainingBudgetCredits: 23},
	}, []domain.Ad{{ID: 1, CampaignID: 1}})
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		settled   int
		exhausted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.SettleView(ctx, &domain.View{AdID: 1, CampaignID: 1, Reward: domain.RewardCredits})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				settled++
			case errors.Is(err, domain.ErrCampaignExhausted):
				exhausted++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	// 23 -> 18 -> 13 -> 8 -> 3 -> -2
	assert.Equal(t, 5, settled)
	assert.Equal(t, 15, exhausted)
	assert.Len(t, repo.Views(), 5)

	camp, err := repo.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), camp.RemainingBudgetCredits)
	assert.Equal(t, domain.CampaignCompleted, camp.Status)
}

func TestSettleViewRejectsInactiveCampaign(t *testing.T) {
	repo := NewAdRepository([]domain.Campaign{
		{ID: 1, Status: domain.CampaignPending, RemainingBudgetCredits: 100},
	}, nil)

	_, err := repo.SettleView(context.Background(), &domain.View{CampaignID: 1, Reward: 5})
	require.ErrorIs(t, err, domain.ErrCampaignExhausted)
	_, err = repo.SettleView(context.Background(), &domain.View{CampaignID: 2, Reward: 5})
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
	assert.Empty(t, repo.Views())
}

func TestListAdsReturnsSnapshots(t *testing.T) {
	repo := NewAdRepository([]domain.Campaign{
		{ID: 1, Status: domain.CampaignActive, RemainingBudgetCredits: 100},
	}, []domain.Ad{{ID: 2, CampaignID: 1}, {ID: 1, CampaignID: 1}, {ID: 3, CampaignID: 9}})
	ctx := context.Background()

	ads, err := repo.ListAdsWithCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 3)
	assert.Equal(t, int64(1), ads[0].ID)
	assert.Nil(t, ads[2].Campaign, "dangling campaign reference")

	ads[0].Campaign.RemainingBudgetCredits = 0
	camp, err := repo.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), camp.RemainingBudgetCredits)
}

func TestProfileProviderCredits(t *testing.T) {
	p := NewProfileProvider(domain.Profile{UserID: "u", Credits: 10})
	ctx := context.Background()

	balance, err := p.AddCredits(ctx, "u", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), balance)

	_, err = p.AddCredits(ctx, "nobody", 5)
	require.ErrorIs(t, err, domain.ErrProfileNotFound)

	ok, err := p.HasRole(ctx, "u", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
	p.Grant("u", domain.RoleAdmin)
	ok, err = p.HasRole(ctx, "u", domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestViewCounterPerDevice(t *testing.T) {
	c := NewViewCounter()
	ctx := context.Background()

	n, err := c.Load(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, n)

	c.Set("a", 29)
	n, err = c.Increment(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(30), n)

	n, err = c.Increment(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
