package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"teamspace/backend/internal/todo/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a todo repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const todoColumns = `id, title, completed, owner_user_id, org_id, created_at, updated_at`

// accessGuard matches a row the caller may mutate: they own it, or it belongs
// to their active organization. An empty activeOrgID binds as NULL and the
// org arm never matches.
const accessGuard = `(owner_user_id = $2 OR (org_id IS NOT NULL AND org_id = $3))`

// GetByID returns the todo for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id)
	var t domain.Todo
	var orgID sql.NullString
	err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerUserID, &orgID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.OrgID = orgID.String
	return &t, nil
}

// ListByOwner returns the user's own todos, newest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Todo, error) {
	return r.list(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE owner_user_id = $1 ORDER BY created_at DESC`, userID)
}

// ListByOrg returns the org's todos, newest first.
func (r *PostgresRepository) ListByOrg(ctx context.Context, orgID string) ([]*domain.Todo, error) {
	return r.list(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE org_id = $1 ORDER BY created_at DESC`, orgID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg any) ([]*domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		var orgID sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.OwnerUserID, &orgID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.OrgID = orgID.String
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Create persists the todo. The todo must have ID and ownership stamp set.
func (r *PostgresRepository) Create(ctx context.Context, t *domain.Todo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (id, title, completed, owner_user_id, org_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Title, t.Completed, t.OwnerUserID, nullStr(t.OrgID), t.CreatedAt, t.UpdatedAt)
	return err
}

// SetCompleted updates the completion flag if the caller may access the row.
// It reports whether a row matched; false means the row vanished or access
// was lost between the caller's read and this write.
func (r *PostgresRepository) SetCompleted(ctx context.Context, id string, completed bool, at time.Time, userID, activeOrgID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET completed = $4, updated_at = $5 WHERE id = $1 AND `+accessGuard,
		id, userID, nullStr(activeOrgID), completed, at)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Delete removes the todo if the caller may access it, reporting whether a
// row matched.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID, activeOrgID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = $1 AND `+accessGuard,
		id, userID, nullStr(activeOrgID))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
