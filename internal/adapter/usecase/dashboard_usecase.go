package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// RoleCheckTiming bounds the admin role check.
type RoleCheckTiming struct {
	// Wait is how long a dashboard request waits for the check.
	Wait time.Duration
	// Timeout bounds the query itself.
	Timeout time.Duration
	// TTL is how long a resolved check is reused.
	TTL time.Duration
}

// DefaultRoleCheckTiming returns the production durations.
func DefaultRoleCheckTiming() RoleCheckTiming {
	return RoleCheckTiming{
		Wait:    2 * time.Second,
		Timeout: 10 * time.Second,
		TTL:     time.Minute,
	}
}

var baseSections = []port.Section{
	{
		Key:         "view_ads",
		Title:       "View Ads",
		Description: fmt.Sprintf("Watch ads and earn %d credits for each completed view.", domain.RewardCredits),
		Path:        "/view-ads",
	},
	{
		Key:         "create_campaign",
		Title:       "Create Campaign",
		Description: "Create new ad campaigns to promote your products or services.",
		Path:        "/create-campaign",
	},
	{
		Key:         "my_campaigns",
		Title:       "My Campaigns",
		Description: "View and manage all your existing ad campaigns.",
		Path:        "/my-campaigns",
	},
	{
		Key:         "messages",
		Title:       "Messages",
		Description: "Chat with advertisers and interested users.",
		Path:        "/messages",
	},
}

var adminSection = port.Section{
	Key:         "admin",
	Title:       "Admin Panel",
	Description: "Review and approve pending ad campaigns.",
	Path:        "/admin",
}

// DashboardUseCase implements port.DashboardUseCase. Role checks are
// started in the background and shared between requests of the same user
// until they go stale.
type DashboardUseCase struct {
	profiles port.ProfileProvider
	logger   *slog.Logger
	timing   RoleCheckTiming
	now      func() time.Time

	mu     sync.Mutex
	checks map[string]*roleCheck
}

// NewDashboardUseCase creates the use case.
func NewDashboardUseCase(profiles port.ProfileProvider, logger *slog.Logger, timing RoleCheckTiming) *DashboardUseCase {
	return &DashboardUseCase{
		profiles: profiles,
		logger:   logger,
		timing:   timing,
		now:      time.Now,
		checks:   make(map[string]*roleCheck),
	}
}

// Dashboard returns the dashboard for the viewer.
func (u *DashboardUseCase) Dashboard(ctx context.Context, viewer domain.Viewer) (*port.Dashboard, error) {
	profile, err := u.profiles.GetProfile(ctx, viewer.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	d := &port.Dashboard{
		State:       port.DashboardReady,
		Greeting:    profile.Greeting(),
		Credits:     profile.Credits,
		CountryCode: profile.CountryCode,
		Admin:       domain.RoleCheckPending,
		QuickStats: port.QuickStats{
			Credits:        profile.Credits,
			CreditsPerView: domain.RewardCredits,
			ViewingSeconds: domain.WatchSeconds,
		},
	}
	if profile.CountryCode == "" {
		d.State = port.DashboardCountryRequired
		return d, nil
	}

	d.Admin = u.roleCheck(viewer.UserID).Await(ctx, u.timing.Wait)
	d.Sections = append(make([]port.Section, 0, len(baseSections)+1), baseSections...)
	if d.Admin == domain.RoleCheckGranted {
		d.Sections = append(d.Sections, adminSection)
	}
	return d, nil
}

// roleCheck returns the running or recently resolved admin check for the
// user, starting a new one when there is none.
func (u *DashboardUseCase) roleCheck(userID string) *roleCheck {
	now := u.now()
	u.mu.Lock()
	defer u.mu.Unlock()
	if c, ok := u.checks[userID]; ok {
		if !c.resolved() || now.Sub(c.started) < u.timing.TTL {
			return c
		}
	}
	c := startRoleCheck(u.profiles, u.logger, userID, domain.RoleAdmin, u.timing.Timeout, now)
	u.checks[userID] = c
	return c
}

// ExpireStale forgets resolved checks older than the TTL and returns how
// many were dropped. Pending checks are kept.
func (u *DashboardUseCase) ExpireStale() int {
	now := u.now()
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for userID, c := range u.checks {
		if c.resolved() && now.Sub(c.started) >= u.timing.TTL {
			delete(u.checks, userID)
			n++
		}
	}
	return n
}

// Run sweeps stale role checks every TTL until ctx is done.
func (u *DashboardUseCase) Run(ctx context.Context) {
	interval := u.timing.TTL
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := u.ExpireStale(); n > 0 {
				u.logger.Debug("expired role checks", slog.Int("count", n))
			}
		}
	}
}
