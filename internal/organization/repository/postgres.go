package repository

import (
	"context"
	"database/sql"
	"errors"

	"teamspace/backend/internal/organization/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an organization repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orgColumns = `id, name, slug, logo, created_at`

// GetByID returns the organization for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Org, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orgColumns+` FROM organizations WHERE id = $1`, id)
	return scanOrg(row)
}

// GetBySlug returns the organization for slug, or nil if not found.
func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*domain.Org, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orgColumns+` FROM organizations WHERE slug = $1`, slug)
	return scanOrg(row)
}

// ListByUser returns the organizations the user is a member of, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Org, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.id, o.name, o.slug, o.logo, o.created_at
		 FROM organizations o
		 JOIN memberships m ON m.org_id = o.id
		 WHERE m.user_id = $1
		 ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Org
	for rows.Next() {
		var o domain.Org
		var logo sql.NullString
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &logo, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Logo = logo.String
		out = append(out, &o)
	}
	return out, rows.Err()
}

// Create persists the organization. The org must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, o *domain.Org) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organizations (id, name, slug, logo, created_at) VALUES ($1, $2, $3, $4, $5)`,
		o.ID, o.Name, o.Slug, sql.NullString{String: o.Logo, Valid: o.Logo != ""}, o.CreatedAt)
	return err
}

func scanOrg(row *sql.Row) (*domain.Org, error) {
	var o domain.Org
	var logo sql.NullString
	err := row.Scan(&o.ID, &o.Name, &o.Slug, &logo, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	o.Logo = logo.String
	return &o, nil
}
