package usecase

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/domain"
)

func mixedAds() []domain.AdWithCampaign {
	camp := func(id int64, owner string, status domain.CampaignStatus, budget int64) *domain.Campaign {
		return &domain.Campaign{ID: id, UserID: owner, Status: status, RemainingBudgetCredits: budget}
	}
	return []domain.AdWithCampaign{
		{Ad: domain.Ad{ID: 1, CampaignID: 1}, Campaign: camp(1, "adv", domain.CampaignActive, 50)},
		{Ad: domain.Ad{ID: 2, CampaignID: 2}, Campaign: camp(2, "viewer", domain.CampaignActive, 50)},
		{Ad: domain.Ad{ID: 3, CampaignID: 3}, Campaign: camp(3, "adv", domain.CampaignPending, 50)},
		{Ad: domain.Ad{ID: 4, CampaignID: 4}, Campaign: camp(4, "adv", domain.CampaignActive, 0)},
		{Ad: domain.Ad{ID: 5, CampaignID: 5}, Campaign: camp(5, "adv", domain.CampaignCompleted, 50)},
		{Ad: domain.Ad{ID: 6, CampaignID: 6}},
		{Ad: domain.Ad{ID: 7, CampaignID: 7}, Campaign: camp(7, "other", domain.CampaignActive, 5)},
	}
}

// TestSelectorOnlyPicksEligible runs many draws and checks every pick
// satisfies eligibility and that all eligible ads are reachable.
func TestSelectorOnlyPicksEligible(t *testing.T) {
	s := NewSelector(rand.NewPCG(1, 2))
	ads := mixedAds()

	seen := map[int64]int{}
	for i := 0; i < 1000; i++ {
		ad := s.Pick(ads, "viewer")
		require.NotNil(t, ad)
		require.NotNil(t, ad.Campaign)
		require.Equal(t, domain.CampaignActive, ad.Campaign.Status)
		require.Positive(t, ad.Campaign.RemainingBudgetCredits)
		require.NotEqual(t, "viewer", ad.Campaign.UserID)
		seen[ad.ID]++
	}
	assert.Len(t, seen, 2)
	assert.Greater(t, seen[1], 350)
	assert.Greater(t, seen[7], 350)
}

func TestSelectorReturnsNilWhenNothingEligible(t *testing.T) {
	s := NewSelector(nil)
	ads := mixedAds()
	assert.Nil(t, s.Pick(ads[1:6], "viewer"))
	assert.Nil(t, s.Pick(nil, "viewer"))
}

func TestSelectorCopiesCampaign(t *testing.T) {
	s := NewSelector(rand.NewPCG(3, 4))
	ads := mixedAds()[:1]
	ad := s.Pick(ads, "viewer")
	require.NotNil(t, ad)
	ad.Campaign.RemainingBudgetCredits = 0
	assert.Equal(t, int64(50), ads[0].Campaign.RemainingBudgetCredits)
}
