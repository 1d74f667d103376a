package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"affiliatehub/internal/models"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByExternalID(ctx context.Context, externalID string) (*models.Account, error) {
	const q = `
		SELECT id, external_id, commission_total, lead_ids, created_at
		FROM account_managers
		WHERE external_id = $1
	`
	var acc models.Account
	err := r.db.QueryRowContext(ctx, q, externalID).Scan(
		&acc.ID, &acc.ExternalID, &acc.CommissionTotal, pq.Array(&acc.LeadIDs), &acc.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by external id: %w", err)
	}
	return &acc, nil
}

// ListActivities returns the newest entries of the account log first.
func (r *AccountRepository) ListActivities(ctx context.Context, accountID string, limit int) ([]models.Activity, error) {
	const q = `
		SELECT id, type, description, lead_id, company_name, created_at
		FROM account_activities
		WHERE account_id = $1
		ORDER BY seq DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var (
			a       models.Activity
			leadID  sql.NullString
			company sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &leadID, &company, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Metadata = models.ActivityMetadata{LeadID: leadID.String, CompanyName: company.String}
		out = append(out, a)
	}
	return out, rows.Err()
}
