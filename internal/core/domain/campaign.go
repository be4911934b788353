package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignPending   CampaignStatus = "pending"
	CampaignRejected  CampaignStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignActive, CampaignCompleted, CampaignPending, CampaignRejected:
		return true
	}
	return false
}

// Campaign represents an advertiser's budgeted unit of ad spend.
// Budgets are stored in credits.
type Campaign struct {
	ID                     int64
	UserID                 string // owner
	Name                   string
	Status                 CampaignStatus
	RemainingBudgetCredits int64
	CountryCode            string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// EligibleFor reports whether ads of this campaign may be shown to the
// viewer: the campaign is active, has budget left and is not the viewer's.
func (c *Campaign) EligibleFor(viewerID string) bool {
	return c.Status == CampaignActive &&
		c.RemainingBudgetCredits > 0 &&
		c.UserID != viewerID
}

// Deduct takes amount off the remaining budget and completes the campaign
// once nothing is left. Completion is never undone here.
func (c *Campaign) Deduct(amount int64) {
	c.RemainingBudgetCredits -= amount
	if c.RemainingBudgetCredits <= 0 {
		c.Status = CampaignCompleted
	}
}
