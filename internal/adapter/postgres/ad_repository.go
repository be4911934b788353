package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-exchange/internal/core/domain"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const campaignColumns = `c.id, c.user_id, c.campaign_name, c.status, c.remaining_budget_credits,
            c.country_code, c.created_at, c.updated_at`

// ListAdsWithCampaigns returns every ad joined with its campaign. Ads whose
// campaign row is missing come back with a nil Campaign.
func (r *AdRepository) ListAdsWithCampaigns(ctx context.Context) ([]domain.AdWithCampaign, error) {
	query := `
        SELECT
            a.id,
            a.campaign_id,
            a.target_url,
            a.image_url,
            a.created_at,
            c.id,
            c.user_id,
            c.campaign_name,
            c.status,
            c.remaining_budget_credits,
            c.country_code,
            c.created_at,
            c.updated_at
        FROM ads a
        LEFT JOIN campaigns c ON a.campaign_id = c.id
        ORDER BY a.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	// Campaign columns are nullable because of the outer join.
	type nullableCampaign struct {
		ID        *int64
		UserID    *string
		Name      *string
		Status    *string
		Remaining *int64
		Country   *string
		CreatedAt *time.Time
		UpdatedAt *time.Time
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdWithCampaign, error) {
		var (
			item domain.AdWithCampaign
			nc   nullableCampaign
		)
		err := row.Scan(
			&item.ID,
			&item.CampaignID,
			&item.TargetURL,
			&item.ImageURL,
			&item.CreatedAt,
			&nc.ID,
			&nc.UserID,
			&nc.Name,
			&nc.Status,
			&nc.Remaining,
			&nc.Country,
			&nc.CreatedAt,
			&nc.UpdatedAt,
		)
		if err != nil || nc.ID == nil {
			return item, err
		}
		item.Campaign = &domain.Campaign{
			ID:                     *nc.ID,
			UserID:                 *nc.UserID,
			Name:                   *nc.Name,
			Status:                 domain.CampaignStatus(*nc.Status),
			RemainingBudgetCredits: *nc.Remaining,
			CountryCode:            *nc.Country,
			CreatedAt:              *nc.CreatedAt,
			UpdatedAt:              *nc.UpdatedAt,
		}
		return item, nil
	})
}

// SettleView deducts the view's reward from the campaign and inserts the
// view in one transaction. The deduction is a single conditional UPDATE:
// concurrent claims against the same campaign queue on its row lock and
// each re-checks status and budget against the committed row, so no claim
// is lost and an exhausted campaign is never charged again.
func (r *AdRepository) SettleView(ctx context.Context, view *domain.View) (camp *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	camp, err = scanCampaign(tx.QueryRow(ctx, `
        UPDATE campaigns AS c SET
            remaining_budget_credits = c.remaining_budget_credits - $1,
            status = CASE WHEN c.remaining_budget_credits - $1 <= 0 THEN $2 ELSE c.status END,
            updated_at = now()
        WHERE c.id = $3 AND c.status = $4 AND c.remaining_budget_credits > 0
        RETURNING `+campaignColumns,
		view.Reward, string(domain.CampaignCompleted), view.CampaignID, string(domain.CampaignActive)))
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, view.CampaignID).Scan(&exists); err != nil {
			return nil, err
		}
		err = domain.ErrCampaignExhausted
		if !exists {
			err = domain.ErrCampaignNotFound
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	view.CreatedAt = camp.UpdatedAt
	err = tx.QueryRow(ctx, `INSERT INTO ad_views (token, ad_id, campaign_id, user_id, device_id, reward, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		view.Token, view.AdID, view.CampaignID, view.UserID, view.DeviceID, view.Reward, view.CreatedAt).Scan(&view.ID)
	if err != nil {
		return nil, err
	}
	return camp, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &status, &c.RemainingBudgetCredits, &c.CountryCode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CampaignStatus(status)
	return &c, nil
}
