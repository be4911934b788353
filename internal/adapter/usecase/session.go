package usecase

import (
	"fmt"
	"sync"
	"time"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

const (
	emptyMessage        = "There are currently no active ads available for viewing. Check back later!"
	sponsorTitle        = "Sponsor Message"
	sponsorMessage      = "Thank you for using our platform! Here's a message from our sponsor."
	dashboardPath       = "/dashboard"
	claimedMessage      = "You have successfully earned %d credits."
	claimedSponsorNotes = "You have successfully earned %d credits. Watch our sponsor message!"
)

// Ticker delivers countdown ticks. It is the part of *time.Ticker a session
// needs, so tests can drive the clock by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// session is the per-viewer state of the view-ads screen. Every field below
// mu is guarded by it. generation changes whenever a different ad is shown
// or the session is closed; tick and advance callbacks carry the generation
// they were started for and do nothing once it is stale.
type session struct {
	id     string
	viewer domain.Viewer

	mu           sync.Mutex
	ad           *domain.AdWithCampaign
	countdown    domain.Countdown
	generation   uint64
	stopTicker   func()
	advance      *time.Timer
	inFlight     bool
	claimed      bool
	interstitial bool
	views        int64
	credits      int64
	message      string
	lastSeen     time.Time
	closed       bool
}

// stopTimersLocked cancels the running ticker and any pending advance.
func (s *session) stopTimersLocked() {
	if s.stopTicker != nil {
		s.stopTicker()
		s.stopTicker = nil
	}
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
}

// tick applies one elapsed second for generation gen. It reports whether
// the ticker should keep running.
func (s *session) tick(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.generation || s.ad == nil {
		return false
	}
	s.countdown.Tick()
	return !s.countdown.Claimable()
}

func (s *session) phaseLocked() port.Phase {
	switch {
	case s.ad == nil:
		return port.PhaseEmpty
	case s.interstitial:
		return port.PhaseInterstitial
	case s.inFlight:
		return port.PhaseClaiming
	case s.claimed:
		return port.PhaseClaimed
	case s.countdown.Claimable():
		return port.PhaseClaimable
	default:
		return port.PhaseWatching
	}
}

func (s *session) viewLocked() *port.SessionView {
	v := &port.SessionView{
		SessionID: s.id,
		Phase:     s.phaseLocked(),
		Credits:   s.credits,
		AdsViewed: s.views,
		Message:   s.message,
	}
	if v.Phase == port.PhaseEmpty {
		v.Message = emptyMessage
		v.ReturnTo = dashboardPath
		return v
	}

	v.Ad = &port.AdView{
		ID:         s.ad.ID,
		CampaignID: s.ad.CampaignID,
		TargetURL:  s.ad.TargetURL,
		ImageURL:   s.ad.ImageURL,
	}
	if s.ad.Campaign != nil {
		v.Ad.CampaignName = s.ad.Campaign.Name
	}
	v.RemainingSeconds = s.countdown.Remaining()
	v.CanLoadDifferent = s.countdown.CanSwitch() && !s.inFlight && !s.interstitial

	claim := &port.ClaimControl{Enabled: v.Phase == port.PhaseClaimable}
	switch v.Phase {
	case port.PhaseClaiming:
		claim.Label = "Processing..."
	case port.PhaseClaimed, port.PhaseInterstitial:
		claim.Label = "Claimed"
	case port.PhaseClaimable:
		claim.Label = fmt.Sprintf("Claim %d Credits", domain.RewardCredits)
	default:
		claim.Label = fmt.Sprintf("Wait %ds", v.RemainingSeconds)
	}
	v.Claim = claim

	if s.interstitial {
		v.Interstitial = &port.InterstitialView{
			Title:     sponsorTitle,
			Message:   sponsorMessage,
			AdsViewed: s.views,
		}
	}
	return v
}
