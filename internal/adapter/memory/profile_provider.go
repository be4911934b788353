package memory

import (
	"context"
	"sync"
	"time"

	"ad-exchange/internal/core/domain"
)

// ProfileProvider implements port.ProfileProvider in process memory.
type ProfileProvider struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	roles    map[string]map[domain.Role]struct{}
}

// NewProfileProvider returns a provider holding copies of profiles.
func NewProfileProvider(profiles ...domain.Profile) *ProfileProvider {
	p := &ProfileProvider{
		profiles: make(map[string]*domain.Profile, len(profiles)),
		roles:    make(map[string]map[domain.Role]struct{}),
	}
	for i := range profiles {
		pr := profiles[i]
		p.profiles[pr.UserID] = &pr
	}
	return p
}

// Grant gives role to the user.
func (p *ProfileProvider) Grant(userID string, role domain.Role) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.roles[userID] == nil {
		p.roles[userID] = make(map[domain.Role]struct{})
	}
	p.roles[userID][role] = struct{}{}
}

// GetProfile returns a copy of the profile.
func (p *ProfileProvider) GetProfile(_ context.Context, userID string) (*domain.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pr, ok := p.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	out := *pr
	return &out, nil
}

// HasRole reports whether the user was granted role.
func (p *ProfileProvider) HasRole(_ context.Context, userID string, role domain.Role) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.roles[userID][role]
	return ok, nil
}

// AddCredits increases the user's balance.
func (p *ProfileProvider) AddCredits(_ context.Context, userID string, amount int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pr, ok := p.profiles[userID]
	if !ok {
		return 0, domain.ErrProfileNotFound
	}
	pr.Credits += amount
	pr.UpdatedAt = time.Now().UTC()
	return pr.Credits, nil
}
