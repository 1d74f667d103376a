package services

import (
	"context"

	"affiliatehub/internal/models"
)

// AccountStore is the read side of the account collection.
// GetByExternalID returns (nil, nil) when no account is linked to the subject.
type AccountStore interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.Account, error)
	ListActivities(ctx context.Context, accountID string, limit int) ([]models.Activity, error)
}

// LeadStore queries and creates leads. Every call is scoped by an account id.
type LeadStore interface {
	Count(ctx context.Context, f models.LeadFilter) (int, error)
	List(ctx context.Context, f models.LeadFilter, limit int) ([]*models.Lead, error)
	// CreateWithActivity inserts lead, links it to its account and prepends activity
	// to the account log, trimming the log to models.ActivityLogCap. The store assigns
	// lead.ID and points activity.Metadata.LeadID at it.
	CreateWithActivity(ctx context.Context, lead *models.Lead, activity models.Activity) error
}

type Store interface {
	AccountStore
	LeadStore
}
