package memory

import (
	"fmt"
	"time"

	"ad-exchange/internal/core/domain"
)

// Demo user IDs. DemoViewerID owns no campaigns; DemoAdvertiserID owns all
// of them and holds the admin role.
const (
	DemoViewerID     = "00000000-0000-0000-0000-000000000001"
	DemoAdvertiserID = "00000000-0000-0000-0000-000000000002"
)

// DemoData returns the local development dataset: two profiles, five
// campaigns in various states and two ads per campaign.
func DemoData() ([]domain.Profile, []domain.Campaign, []domain.Ad) {
	now := time.Now().UTC()
	profiles := []domain.Profile{
		{UserID: DemoViewerID, Username: "viewer", DisplayName: "Demo Viewer", Email: "viewer@example.com", CountryCode: "US", CreatedAt: now, UpdatedAt: now},
		{UserID: DemoAdvertiserID, Username: "advertiser", Email: "advertiser@example.com", Credits: 500, CountryCode: "US", CreatedAt: now, UpdatedAt: now},
	}

	statuses := []domain.CampaignStatus{
		domain.CampaignActive,
		domain.CampaignActive,
		domain.CampaignActive,
		domain.CampaignPending,
		domain.CampaignCompleted,
	}
	budgets := []int64{100, 250, 5, 100, 0}

	campaigns := make([]domain.Campaign, 0, len(statuses))
	ads := make([]domain.Ad, 0, 2*len(statuses))
	for i, status := range statuses {
		id := int64(i + 1)
		campaigns = append(campaigns, domain.Campaign{
			ID:                     id,
			UserID:                 DemoAdvertiserID,
			Name:                   fmt.Sprintf("Campaign %d", id),
			Status:                 status,
			RemainingBudgetCredits: budgets[i],
			CountryCode:            "US",
			CreatedAt:              now,
			UpdatedAt:              now,
		})
		for j := int64(1); j <= 2; j++ {
			adID := (id-1)*2 + j
			ads = append(ads, domain.Ad{
				ID:         adID,
				CampaignID: id,
				TargetURL:  fmt.Sprintf("https://example.com/landing/%d", adID),
				ImageURL:   fmt.Sprintf("https://example.com/creative/%d.jpg", adID),
				CreatedAt:  now,
			})
		}
	}
	return profiles, campaigns, ads
}
