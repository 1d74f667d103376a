package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"affiliatehub/internal/models"
	"affiliatehub/internal/utils"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

const leadColumns = `id, account_id, company_name, kvk_number, contact_person_firstname,
		contact_person_lastname, contact_email, contact_phone, notes, status, created_at`

// whereLeads renders the filter as a WHERE clause; arguments are numbered from $1.
func whereLeads(f models.LeadFilter) (string, []interface{}) {
	clauses := []string{"account_id = $1"}
	args := []interface{}{f.AccountID}
	i := 2

	if f.From != nil {
		clauses = append(clauses, fmt.Sprintf("created_at >= $%d", i))
		args = append(args, *f.From)
		i++
	}
	if f.To != nil {
		clauses = append(clauses, fmt.Sprintf("created_at <= $%d", i))
		args = append(args, *f.To)
		i++
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for k, s := range f.Statuses {
			statuses[k] = string(s)
		}
		clauses = append(clauses, fmt.Sprintf("status = ANY($%d)", i))
		args = append(args, pq.Array(statuses))
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *LeadRepository) Count(ctx context.Context, f models.LeadFilter) (int, error) {
	where, args := whereLeads(f)
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return count, nil
}

func (r *LeadRepository) List(ctx context.Context, f models.LeadFilter, limit int) ([]*models.Lead, error) {
	where, args := whereLeads(f)
	query := `SELECT ` + leadColumns + ` FROM leads` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		var (
			l     models.Lead
			kvk   sql.NullString
			notes sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.AccountID, &l.CompanyName, &kvk, &l.ContactPersonFirstname,
			&l.ContactPersonLastname, &l.ContactEmail, &l.ContactPhone, &notes, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		l.KvkNumber = kvk.String
		l.Notes = notes.String
		out = append(out, &l)
	}
	return out, rows.Err()
}

// CreateWithActivity writes the lead, the account link and the activity entry in one
// transaction, then trims the account log.
func (r *LeadRepository) CreateWithActivity(ctx context.Context, lead *models.Lead, activity models.Activity) error {
	if lead.ID == "" {
		lead.ID = utils.NewID()
	}
	if activity.ID == "" {
		activity.ID = utils.NewID()
	}
	activity.Metadata.LeadID = lead.ID

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertLead = `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := tx.ExecContext(ctx, insertLead,
		lead.ID, lead.AccountID, lead.CompanyName, nullString(lead.KvkNumber), lead.ContactPersonFirstname,
		lead.ContactPersonLastname, lead.ContactEmail, lead.ContactPhone, nullString(lead.Notes),
		lead.Status, lead.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE account_managers SET lead_ids = array_append(lead_ids, $1) WHERE id = $2`,
		lead.ID, lead.AccountID)
	if err != nil {
		return fmt.Errorf("link lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAccountMissing
	}

	const insertActivity = `
		INSERT INTO account_activities (id, account_id, type, description, lead_id, company_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, insertActivity,
		activity.ID, lead.AccountID, activity.Type, activity.Description,
		nullString(activity.Metadata.LeadID), nullString(activity.Metadata.CompanyName), activity.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	const trim = `
		DELETE FROM account_activities
		WHERE account_id = $1 AND seq NOT IN (
			SELECT seq FROM account_activities
			WHERE account_id = $1
			ORDER BY seq DESC
			LIMIT $2
		)
	`
	if _, err := tx.ExecContext(ctx, trim, lead.AccountID, models.ActivityLogCap); err != nil {
		return fmt.Errorf("trim activities: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lead: %w", err)
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
