package port

import (
	"context"

	"ad-exchange/internal/core/domain"
)

// AdRepository defines the campaign/ad data source. It is an outbound port
// in hexagonal architecture. Implementations must be concurrency-safe and
// settle views atomically per campaign.
type AdRepository interface {
	// ListAdsWithCampaigns returns every ad joined with its campaign.
	// Eligibility filtering is left to the caller.
	ListAdsWithCampaigns(ctx context.Context) ([]domain.AdWithCampaign, error)
	// SettleView stores the view and deducts view.Reward from the campaign
	// budget, completing the campaign when it reaches zero. It returns
	// domain.ErrCampaignExhausted, without storing anything, when the
	// campaign is no longer active or has no budget left.
	SettleView(ctx context.Context, view *domain.View) (*domain.Campaign, error)
}

// ProfileProvider is the session/profile backend: account records, role
// checks and the credit balance.
type ProfileProvider interface {
	// GetProfile returns the profile or domain.ErrProfileNotFound.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	// HasRole reports whether the user holds role.
	HasRole(ctx context.Context, userID string, role domain.Role) (bool, error)
	// AddCredits increases the balance by amount and returns the new
	// balance.
	AddCredits(ctx context.Context, userID string, amount int64) (int64, error)
}

// ViewCounter persists the number of claimed views per device.
type ViewCounter interface {
	// Load returns the current count, zero when nothing is stored.
	Load(ctx context.Context, deviceID string) (int64, error)
	// Increment adds one and returns the new count.
	Increment(ctx context.Context, deviceID string) (int64, error)
}
