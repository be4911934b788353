//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/db"
)

// Run with: PSQL_TEST_ADDRESS=postgres://... go test -tags integration ./internal/adapter/postgres/
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func insertCampaign(t *testing.T, pool *pgxpool.Pool, status domain.CampaignStatus, budget int64) (campaignID, adID int64) {
	t.Helper()
	ctx := context.Background()
	err := pool.QueryRow(ctx, `INSERT INTO campaigns (user_id, campaign_name, status, remaining_budget_credits)
VALUES ($1, $2, $3, $4) RETURNING id`, "advertiser", "settle test", string(status), budget).Scan(&campaignID)
	require.NoError(t, err)
	err = pool.QueryRow(ctx, `INSERT INTO ads (campaign_id, target_url) VALUES ($1, $2) RETURNING id`,
		campaignID, "https://example.com").Scan(&adID)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM ad_views WHERE campaign_id = $1`, campaignID)
		_, _ = pool.Exec(context.Background(), `DELETE FROM campaigns WHERE id = $1`, campaignID)
	})
	return campaignID, adID
}

func newView(campaignID, adID int64, device string) *domain.View {
	return &domain.View{
		Token:      uuid.NewString(),
		AdID:       adID,
		CampaignID: campaignID,
		UserID:     "viewer",
		DeviceID:   device,
		Reward:     domain.RewardCredits,
	}
}

func loadCampaign(t *testing.T, pool *pgxpool.Pool, id int64) *domain.Campaign {
	t.Helper()
	c, err := scanCampaign(pool.QueryRow(context.Background(), `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id))
	require.NoError(t, err)
	return c
}

func TestSettleViewConcurrentClaimsChargeEveryView(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAdRepository(pool)
	campaignID, adID := insertCampaign(t, pool, domain.CampaignActive, 1000)

	const claims = 20
	var wg sync.WaitGroup
	errs := make(chan error, claims)
	for i := 0; i < claims; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.SettleView(context.Background(), newView(campaignID, adID, fmt.Sprintf("device-%d", i)))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	camp := loadCampaign(t, pool, campaignID)
	assert.Equal(t, int64(1000-claims*domain.RewardCredits), camp.RemainingBudgetCredits)
	assert.Equal(t, domain.CampaignActive, camp.Status)

	var views int
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT count(*) FROM ad_views WHERE campaign_id = $1`, campaignID).Scan(&views))
	assert.Equal(t, claims, views)
}

func TestSettleViewConcurrentClaimsNeverOverspend(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAdRepository(pool)
	campaignID, adID := insertCampaign(t, pool, domain.CampaignActive, 23)

	const claims = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		settled   int
		exhausted int
	)
	for i := 0; i < claims; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.SettleView(context.Background(), newView(campaignID, adID, fmt.Sprintf("device-%d", i)))
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
		}(i)
	}
	wg.Wait()

	// 23 -> 18 -> 13 -> 8 -> 3 -> -2
	assert.Equal(t, 5, settled)
	assert.Equal(t, claims-5, exhausted)
	camp := loadCampaign(t, pool, campaignID)
	assert.Equal(t, int64(-2), camp.RemainingBudgetCredits)
	assert.Equal(t, domain.CampaignCompleted, camp.Status)
}

func TestSettleViewRejectsInactiveAndMissingCampaigns(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAdRepository(pool)
	campaignID, adID := insertCampaign(t, pool, domain.CampaignPending, 100)

	_, err := repo.SettleView(context.Background(), newView(campaignID, adID, "d"))
	require.ErrorIs(t, err, domain.ErrCampaignExhausted)
	assert.Equal(t, int64(100), loadCampaign(t, pool, campaignID).RemainingBudgetCredits)

	_, err = repo.SettleView(context.Background(), newView(-1, adID, "d"))
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}
