package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-exchange/internal/core/domain"
)

// ProfileProvider implements port.ProfileProvider on the profiles and
// user_roles tables.
type ProfileProvider struct {
	pool *pgxpool.Pool
}

// NewProfileProvider returns a new provider instance.
func NewProfileProvider(pool *pgxpool.Pool) *ProfileProvider {
	return &ProfileProvider{pool: pool}
}

// GetProfile returns a profile by user id.
func (p *ProfileProvider) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var pr domain.Profile
	err := p.pool.QueryRow(ctx, `SELECT user_id, username, display_name, email, credits, country_code, created_at, updated_at FROM profiles WHERE user_id = $1`, userID).
		Scan(&pr.UserID, &pr.Username, &pr.DisplayName, &pr.Email, &pr.Credits, &pr.CountryCode, &pr.CreatedAt, &pr.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// HasRole reports whether the user holds role.
func (p *ProfileProvider) HasRole(ctx context.Context, userID string, role domain.Role) (bool, error) {
	var ok bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`, userID, string(role)).Scan(&ok)
	return ok, err
}

// AddCredits increments the balance in a single statement and returns the
// new balance.
func (p *ProfileProvider) AddCredits(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64
	err := p.pool.QueryRow(ctx, `UPDATE profiles SET credits = credits + $1, updated_at = now() WHERE user_id = $2 RETURNING credits`, amount, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrProfileNotFound
	}
	return balance, err
}
