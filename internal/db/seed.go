package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ad-exchange/internal/adapter/memory"
	"ad-exchange/internal/core/domain"
)

// Seed inserts the demo dataset. Existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	profiles, campaigns, ads := memory.DemoData()

	for _, p := range profiles {
		_, err := db.Exec(ctx, `INSERT INTO profiles
    (user_id, username, display_name, email, credits, country_code, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now()) ON CONFLICT DO NOTHING`,
			p.UserID, p.Username, p.DisplayName, p.Email, p.Credits, p.CountryCode)
		if err != nil {
			return err
		}
	}
	_, err := db.Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		memory.DemoAdvertiserID, string(domain.RoleAdmin))
	if err != nil {
		return err
	}

	for _, c := range campaigns {
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, user_id, campaign_name, status, remaining_budget_credits, country_code, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now()) ON CONFLICT DO NOTHING`,
			c.ID, c.UserID, c.Name, string(c.Status), c.RemainingBudgetCredits, c.CountryCode)
		if err != nil {
			return err
		}
	}
	for _, a := range ads {
		_, err = db.Exec(ctx, `INSERT INTO ads (id, campaign_id, target_url, image_url, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
			a.ID, a.CampaignID, a.TargetURL, a.ImageURL)
		if err != nil {
			return err
		}
	}

	// keep the sequences ahead of the explicit ids
	_, err = db.Exec(ctx, `SELECT setval('campaigns_id_seq', (SELECT COALESCE(MAX(id), 1) FROM campaigns))`)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `SELECT setval('ads_id_seq', (SELECT COALESCE(MAX(id), 1) FROM ads))`)
	return err
}
