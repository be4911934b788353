package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"ad-exchange/internal/core/domain"
)

// AdRepository implements port.AdRepository in process memory. A single
// mutex serialises settlements so budgets cannot be overspent.
type AdRepository struct {
	mu        sync.Mutex
	campaigns map[int64]*domain.Campaign
	ads       []domain.Ad
	views     []domain.View
	nextView  int64
	now       func() time.Time
}

// NewAdRepository returns a repository holding copies of the given data.
func NewAdRepository(campaigns []domain.Campaign, ads []domain.Ad) *AdRepository {
	r := &AdRepository{
		campaigns: make(map[int64]*domain.Campaign, len(campaigns)),
		ads:       append([]domain.Ad(nil), ads...),
		now:       time.Now,
	}
	for i := range campaigns {
		c := campaigns[i]
		r.campaigns[c.ID] = &c
	}
	return r
}

// ListAdsWithCampaigns returns every ad joined with a snapshot of its
// campaign.
func (r *AdRepository) ListAdsWithCampaigns(_ context.Context) ([]domain.AdWithCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AdWithCampaign, 0, len(r.ads))
	for _, ad := range r.ads {
		item := domain.AdWithCampaign{Ad: ad}
		if c, ok := r.campaigns[ad.CampaignID]; ok {
			camp := *c
			item.Campaign = &camp
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetCampaign returns a snapshot of a campaign. Like Views it is used to
// inspect the store, the viewing flow only needs SettleView.
func (r *AdRepository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	camp := *c
	return &camp, nil
}

// SettleView records the view and charges the campaign.
func (r *AdRepository) SettleView(_ context.Context, view *domain.View) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[view.CampaignID]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	if c.Status != domain.CampaignActive || c.RemainingBudgetCredits <= 0 {
		return nil, domain.ErrCampaignExhausted
	}
	c.Deduct(view.Reward)
	c.UpdatedAt = r.now().UTC()

	r.nextView++
	view.ID = r.nextView
	view.CreatedAt = c.UpdatedAt
	r.views = append(r.views, *view)

	camp := *c
	return &camp, nil
}

// Views returns the recorded views.
func (r *AdRepository) Views() []domain.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.View(nil), r.views...)
}
