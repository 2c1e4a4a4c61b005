package repository

import (
	"context"
	"database/sql"
	"errors"

	"teamspace/backend/internal/subscription/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a subscription repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByOrg returns the org's subscription, or nil if none was ever synced.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByOrg(ctx context.Context, orgID string) (*domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, org_id, plan, status, data, updated_at FROM subscriptions WHERE org_id = $1`, orgID)
	var s domain.Subscription
	var plan, status string
	var data []byte
	err := row.Scan(&s.ID, &s.OrgID, &plan, &status, &data, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.Plan = domain.Plan(plan)
	s.Status = domain.Status(status)
	s.Data = data
	return &s, nil
}

// Upsert saves the subscription, replacing any prior row for the org.
func (r *PostgresRepository) Upsert(ctx context.Context, s *domain.Subscription) error {
	var data any
	if len(s.Data) > 0 {
		data = []byte(s.Data)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subscriptions (id, org_id, plan, status, data, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (org_id) DO UPDATE SET
		        plan = EXCLUDED.plan,
		        status = EXCLUDED.status,
		        data = EXCLUDED.data,
		        updated_at = EXCLUDED.updated_at`,
		s.ID, s.OrgID, string(s.Plan), string(s.Status), data, s.UpdatedAt)
	return err
}
