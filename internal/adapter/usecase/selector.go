package usecase

import (
	"math/rand/v2"
	"sync"

	"ad-exchange/internal/core/domain"
)

// Selector picks one eligible ad uniformly at random.
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector returns a selector drawing from src. A nil src uses the
// runtime's global generator.
func NewSelector(src rand.Source) *Selector {
	s := &Selector{}
	if src != nil {
		s.rnd = rand.New(src)
	}
	return s
}

// Pick returns a random ad the viewer is allowed to see, or nil when none
// is eligible. Ads whose campaign is inactive, out of budget or owned by
// the viewer are never returned.
func (s *Selector) Pick(ads []domain.AdWithCampaign, viewerID string) *domain.AdWithCampaign {
	eligible := make([]int, 0, len(ads))
	for i := range ads {
		if ads[i].EligibleFor(viewerID) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	picked := ads[eligible[s.intN(len(eligible))]]
	if picked.Campaign != nil {
		camp := *picked.Campaign
		picked.Campaign = &camp
	}
	return &picked
}

func (s *Selector) intN(n int) int {
	if s.rnd == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
