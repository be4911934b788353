package domain

import "time"

// Ad is a single creative belonging to a campaign.
type Ad struct {
	ID         int64
	CampaignID int64
	TargetURL  string
	ImageURL   string
	CreatedAt  time.Time
}

// AdWithCampaign is an ad joined with its owning campaign. Campaign is nil
// when the ad references a campaign that no longer exists.
type AdWithCampaign struct {
	Ad
	Campaign *Campaign
}

// EligibleFor reports whether the ad can be served to the viewer.
func (a *AdWithCampaign) EligibleFor(viewerID string) bool {
	return a.Campaign != nil && a.Campaign.EligibleFor(viewerID)
}

// View records a claimed ad view and the reward paid for it.
type View struct {
	ID         int64
	Token      string
	AdID       int64
	CampaignID int64
	UserID     string
	DeviceID   string
	Reward     int64
	CreatedAt  time.Time
}
