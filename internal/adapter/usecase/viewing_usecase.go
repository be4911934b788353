package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
	"ad-exchange/internal/metrics"
)

// Timing holds the durations of the viewing flow.
type Timing struct {
	// TickInterval is one second of watch time.
	TickInterval time.Duration
	// ClaimLatency is the simulated confirmation delay of a claim.
	ClaimLatency time.Duration
	// AdvanceDelay is the pause between a claim and the next ad.
	AdvanceDelay time.Duration
	// LoadTimeout bounds ad loading triggered by timers.
	LoadTimeout time.Duration
	// SessionTTL expires sessions that were not touched for this long.
	SessionTTL time.Duration
}

// DefaultTiming returns the production durations.
func DefaultTiming() Timing {
	return Timing{
		TickInterval: time.Second,
		ClaimLatency: 500 * time.Millisecond,
		AdvanceDelay: time.Second,
		LoadTimeout:  5 * time.Second,
		SessionTTL:   30 * time.Minute,
	}
}

// ViewingOption customises a ViewingUseCase.
type ViewingOption func(*ViewingUseCase)

// WithTiming overrides DefaultTiming.
func WithTiming(t Timing) ViewingOption {
	return func(u *ViewingUseCase) { u.timing = t }
}

// WithTicker replaces the countdown ticker.
func WithTicker(f TickerFunc) ViewingOption {
	return func(u *ViewingUseCase) { u.newTicker = f }
}

// WithSelector replaces the ad selector.
func WithSelector(s *Selector) ViewingOption {
	return func(u *ViewingUseCase) { u.selector = s }
}

// WithConfirm replaces the remote confirmation step of a claim.
func WithConfirm(f func(ctx context.Context) error) ViewingOption {
	return func(u *ViewingUseCase) { u.confirm = f }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ViewingOption {
	return func(u *ViewingUseCase) { u.now = now }
}

// ViewingUseCase implements port.ViewingUseCase. It keeps one session per
// opened view-ads screen and orchestrates the repositories to settle
// claims.
type ViewingUseCase struct {
	repo     port.AdRepository
	profiles port.ProfileProvider
	counter  port.ViewCounter
	logger   *slog.Logger

	selector  *Selector
	timing    Timing
	newTicker TickerFunc
	confirm   func(ctx context.Context) error
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewViewingUseCase creates the use case with production defaults.
func NewViewingUseCase(
	repo port.AdRepository,
	profiles port.ProfileProvider,
	counter port.ViewCounter,
	logger *slog.Logger,
	opts ...ViewingOption,
) *ViewingUseCase {
	u := &ViewingUseCase{
		repo:      repo,
		profiles:  profiles,
		counter:   counter,
		logger:    logger,
		selector:  NewSelector(nil),
		timing:    DefaultTiming(),
		newTicker: NewTimeTicker,
		now:       time.Now,
		sessions:  make(map[string]*session),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.confirm == nil {
		u.confirm = simulatedConfirm(u.timing.ClaimLatency)
	}
	return u
}

// simulatedConfirm stands in for the backend acknowledging a view.
func simulatedConfirm(latency time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		t := time.NewTimer(latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}

// StartSession opens a session and shows the first eligible ad.
func (u *ViewingUseCase) StartSession(ctx context.Context, viewer domain.Viewer) (*port.SessionView, error) {
	profile, err := u.profiles.GetProfile(ctx, viewer.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	views, err := u.counter.Load(ctx, viewer.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("load view counter: %w", err)
	}
	ad, err := u.pick(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}

	sess := &session{
		id:       uuid.NewString(),
		viewer:   viewer,
		views:    views,
		credits:  profile.Credits,
		lastSeen: u.now(),
	}
	sess.mu.Lock()
	u.showLocked(sess, ad)
	view := sess.viewLocked()
	sess.mu.Unlock()

	u.mu.Lock()
	u.sessions[sess.id] = sess
	u.mu.Unlock()
	metrics.ActiveSessions.Inc()

	u.logger.Debug("viewing session started",
		slog.String("session_id", sess.id),
		slog.String("user_id", viewer.UserID),
		slog.String("phase", string(view.Phase)))
	return view, nil
}

// Session returns the current state of a session.
func (u *ViewingUseCase) Session(_ context.Context, viewer domain.Viewer, sessionID string) (*port.SessionView, error) {
	sess, err := u.lookup(viewer, sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked(), nil
}

// LoadDifferentAd replaces the displayed ad when the countdown allows it.
func (u *ViewingUseCase) LoadDifferentAd(ctx context.Context, viewer domain.Viewer, sessionID string) (*port.SessionView, error) {
	sess, err := u.lookup(viewer, sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	err = switchAllowedLocked(sess)
	gen := sess.generation
	sess.mu.Unlock()
	if err != nil {
		return nil, err
	}

	ad, err := u.pick(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	// The session moved on while the ads were loading.
	if gen != sess.generation {
		return sess.viewLocked(), nil
	}
	if err = switchAllowedLocked(sess); err != nil {
		return nil, err
	}
	sess.message = ""
	u.showLocked(sess, ad)
	return sess.viewLocked(), nil
}

func switchAllowedLocked(sess *session) error {
	switch {
	case sess.closed:
		return domain.ErrSessionNotFound
	case sess.inFlight:
		return domain.ErrClaimInFlight
	case sess.interstitial:
		return domain.ErrInterstitialOpen
	case sess.ad != nil && !sess.countdown.CanSwitch():
		return domain.ErrSwitchLocked
	}
	return nil
}

// Claim settles the reward for the displayed ad: confirm, credit the
// viewer, charge the campaign, count the view and either open the sponsor
// interstitial or schedule the next ad.
func (u *ViewingUseCase) Claim(ctx context.Context, viewer domain.Viewer, sessionID string) (*port.ClaimResult, error) {
	sess, err := u.lookup(viewer, sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	switch {
	case sess.ad == nil:
		err = domain.ErrNoAdAvailable
	case sess.inFlight:
		err = domain.ErrClaimInFlight
	case sess.claimed:
		err = domain.ErrAlreadyClaimed
	case !sess.countdown.Claimable():
		err = domain.ErrNotClaimable
	}
	if err != nil {
		sess.mu.Unlock()
		outcome := metrics.OutcomeNotClaimable
		if errors.Is(err, domain.ErrClaimInFlight) {
			outcome = metrics.OutcomeInFlight
		}
		metrics.Claims.WithLabelValues(outcome).Inc()
		return nil, err
	}
	sess.inFlight = true
	ad := *sess.ad
	gen := sess.generation
	sess.mu.Unlock()

	settled := false
	defer func() {
		if !settled {
			sess.mu.Lock()
			sess.inFlight = false
			sess.mu.Unlock()
			metrics.Claims.WithLabelValues(metrics.OutcomeError).Inc()
		}
	}()

	if err = u.confirm(ctx); err != nil {
		return nil, fmt.Errorf("confirm view: %w", err)
	}

	// Once confirmed the settlement runs to completion even if the caller
	// goes away.
	ctx = context.WithoutCancel(ctx)

	balance, err := u.profiles.AddCredits(ctx, viewer.UserID, domain.RewardCredits)
	if err != nil {
		return nil, fmt.Errorf("add credits: %w", err)
	}
	metrics.CreditsAwarded.Add(float64(domain.RewardCredits))

	u.settleBudget(ctx, sess, &ad)

	sess.mu.Lock()
	prevViews := sess.views
	sess.mu.Unlock()
	views, err := u.counter.Increment(ctx, viewer.DeviceID)
	if err != nil {
		u.logger.Warn("increment view counter",
			slog.String("device_id", viewer.DeviceID),
			slog.Any("error", err))
		views = prevViews + 1
	}

	interstitial := domain.ShowsInterstitial(views)
	msg := fmt.Sprintf(claimedMessage, domain.RewardCredits)
	if interstitial {
		msg = fmt.Sprintf(claimedSponsorNotes, domain.RewardCredits)
		metrics.Interstitials.Inc()
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	settled = true
	sess.inFlight = false
	sess.claimed = true
	sess.views = views
	sess.credits = balance
	sess.message = msg
	sess.interstitial = interstitial
	if !interstitial && !sess.closed && gen == sess.generation {
		sess.advance = time.AfterFunc(u.timing.AdvanceDelay, func() {
			u.advance(sess, gen)
		})
	}
	metrics.Claims.WithLabelValues(metrics.OutcomeOK).Inc()

	return &port.ClaimResult{
		Reward:       domain.RewardCredits,
		Balance:      balance,
		AdsViewed:    views,
		Interstitial: interstitial,
		Message:      msg,
		Session:      sess.viewLocked(),
	}, nil
}

// settleBudget charges the campaign for a claimed view. The viewer has
// already been credited, so failures are logged and do not undo the claim.
func (u *ViewingUseCase) settleBudget(ctx context.Context, sess *session, ad *domain.AdWithCampaign) {
	view := &domain.View{
		Token:      uuid.NewString(),
		AdID:       ad.ID,
		CampaignID: ad.CampaignID,
		UserID:     sess.viewer.UserID,
		DeviceID:   sess.viewer.DeviceID,
		Reward:     domain.RewardCredits,
	}
	camp, err := u.repo.SettleView(ctx, view)
	switch {
	case errors.Is(err, domain.ErrCampaignExhausted):
		u.logger.Warn("campaign exhausted before settlement",
			slog.Int64("campaign_id", ad.CampaignID),
			slog.String("session_id", sess.id))
	case err != nil:
		u.logger.Error("settle view: credits added but budget not charged",
			slog.Int64("campaign_id", ad.CampaignID),
			slog.String("user_id", sess.viewer.UserID),
			slog.Any("error", err))
	case camp.Status == domain.CampaignCompleted:
		metrics.CampaignsCompleted.Inc()
		u.logger.Info("campaign completed",
			slog.Int64("campaign_id", camp.ID),
			slog.Int64("remaining_budget", camp.RemainingBudgetCredits))
	}
}

// DismissInterstitial closes the sponsor message and shows the next ad.
func (u *ViewingUseCase) DismissInterstitial(ctx context.Context, viewer domain.Viewer, sessionID string) (*port.SessionView, error) {
	sess, err := u.lookup(viewer, sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	open := sess.interstitial
	sess.mu.Unlock()
	if !open {
		return nil, domain.ErrNoInterstitial
	}

	ad, err := u.pick(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return nil, domain.ErrSessionNotFound
	}
	if !sess.interstitial {
		return sess.viewLocked(), nil
	}
	sess.message = ""
	u.showLocked(sess, ad)
	return sess.viewLocked(), nil
}

// CloseSession stops the session's timers and forgets it.
func (u *ViewingUseCase) CloseSession(_ context.Context, viewer domain.Viewer, sessionID string) error {
	sess, err := u.lookup(viewer, sessionID)
	if err != nil {
		return err
	}
	u.remove(sess)
	return nil
}

// Run expires idle sessions until ctx is done.
func (u *ViewingUseCase) Run(ctx context.Context) {
	interval := u.timing.SessionTTL / 2
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			u.closeAll()
			return
		case <-t.C:
			if n := u.ExpireIdle(); n > 0 {
				u.logger.Info("expired idle viewing sessions", slog.Int("count", n))
			}
		}
	}
}

// ExpireIdle closes sessions not touched within the session TTL and returns
// how many were closed.
func (u *ViewingUseCase) ExpireIdle() int {
	cutoff := u.now().Add(-u.timing.SessionTTL)
	var idle []*session
	u.mu.Lock()
	for _, sess := range u.sessions {
		sess.mu.Lock()
		if sess.lastSeen.Before(cutoff) && !sess.inFlight {
			idle = append(idle, sess)
		}
		sess.mu.Unlock()
	}
	u.mu.Unlock()
	for _, sess := range idle {
		u.remove(sess)
	}
	return len(idle)
}

func (u *ViewingUseCase) closeAll() {
	u.mu.Lock()
	all := make([]*session, 0, len(u.sessions))
	for _, sess := range u.sessions {
		all = append(all, sess)
	}
	u.mu.Unlock()
	for _, sess := range all {
		u.remove(sess)
	}
}

func (u *ViewingUseCase) remove(sess *session) {
	u.mu.Lock()
	_, ok := u.sessions[sess.id]
	delete(u.sessions, sess.id)
	u.mu.Unlock()
	if !ok {
		return
	}
	metrics.ActiveSessions.Dec()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.closed = true
	sess.generation++
	sess.stopTimersLocked()
}

func (u *ViewingUseCase) lookup(viewer domain.Viewer, sessionID string) (*session, error) {
	u.mu.Lock()
	sess, ok := u.sessions[sessionID]
	u.mu.Unlock()
	if !ok || sess.viewer.UserID != viewer.UserID {
		return nil, domain.ErrSessionNotFound
	}
	sess.mu.Lock()
	sess.lastSeen = u.now()
	sess.mu.Unlock()
	return sess, nil
}

func (u *ViewingUseCase) pick(ctx context.Context, viewerID string) (*domain.AdWithCampaign, error) {
	ads, err := u.repo.ListAdsWithCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	return u.selector.Pick(ads, viewerID), nil
}

// advance shows the next ad after a claim unless the session has moved on.
func (u *ViewingUseCase) advance(sess *session, gen uint64) {
	sess.mu.Lock()
	stale := sess.closed || gen != sess.generation
	sess.mu.Unlock()
	if stale {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), u.timing.LoadTimeout)
	defer cancel()
	ad, err := u.pick(ctx, sess.viewer.UserID)
	if err != nil {
		u.logger.Error("load next ad", slog.String("session_id", sess.id), slog.Any("error", err))
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed || gen != sess.generation {
		return
	}
	sess.message = ""
	u.showLocked(sess, ad)
}

// showLocked displays ad, resets the countdown and starts its ticker. Any
// previous ticker or pending advance is cancelled first.
func (u *ViewingUseCase) showLocked(sess *session, ad *domain.AdWithCampaign) {
	sess.generation++
	sess.stopTimersLocked()
	sess.ad = ad
	sess.claimed = false
	sess.interstitial = false
	if ad == nil {
		sess.countdown = domain.Countdown{}
		return
	}
	sess.countdown = domain.NewCountdown()

	gen := sess.generation
	t := u.newTicker(u.timing.TickInterval)
	done := make(chan struct{})
	sess.stopTicker = func() {
		close(done)
		t.Stop()
	}
	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C():
				if !sess.tick(gen) {
					return
				}
			}
		}
	}()
}
