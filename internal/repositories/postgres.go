package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore serves both the account and the lead side from one database.
type PostgresStore struct {
	*AccountRepository
	*LeadRepository
	db *sql.DB
}

// OpenPostgres opens the pool and checks the connection.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		AccountRepository: NewAccountRepository(db),
		LeadRepository:    NewLeadRepository(db),
		db:                db,
	}
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS account_managers (
	id               TEXT PRIMARY KEY,
	external_id      TEXT NOT NULL UNIQUE,
	commission_total DOUBLE PRECISION NOT NULL DEFAULT 0,
	lead_ids         TEXT[] NOT NULL DEFAULT '{}',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS leads (
	id                       TEXT PRIMARY KEY,
	account_id               TEXT NOT NULL REFERENCES account_managers(id),
	company_name             TEXT NOT NULL,
	kvk_number               TEXT,
	contact_person_firstname TEXT NOT NULL,
	contact_person_lastname  TEXT NOT NULL,
	contact_email            TEXT NOT NULL,
	contact_phone            TEXT NOT NULL,
	notes                    TEXT,
	status                   TEXT NOT NULL DEFAULT 'NIEUW',
	created_at               TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS leads_account_created_idx ON leads (account_id, created_at DESC);

CREATE TABLE IF NOT EXISTS account_activities (
	seq          BIGSERIAL PRIMARY KEY,
	id           TEXT NOT NULL UNIQUE,
	account_id   TEXT NOT NULL REFERENCES account_managers(id),
	type         TEXT NOT NULL,
	description  TEXT NOT NULL,
	lead_id      TEXT,
	company_name TEXT,
	created_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS account_activities_account_seq_idx ON account_activities (account_id, seq DESC);
`

// EnsureSchema creates the tables when they do not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
