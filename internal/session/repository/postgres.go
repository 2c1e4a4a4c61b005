package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"teamspace/backend/internal/session/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a session repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const sessionColumns = `id, user_id, active_org_id, expires_at, revoked_at, last_seen_at,
	ip_address, refresh_jti, refresh_token_hash, created_at`

// GetByID returns the session for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
	var s domain.Session
	var activeOrgID, ipAddress, refreshJti, refreshHash sql.NullString
	var revokedAt, lastSeenAt sql.NullTime
	err := row.Scan(&s.ID, &s.UserID, &activeOrgID, &s.ExpiresAt, &revokedAt, &lastSeenAt,
		&ipAddress, &refreshJti, &refreshHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.ActiveOrgID = activeOrgID.String
	s.IPAddress = ipAddress.String
	s.RefreshJti = refreshJti.String
	s.RefreshTokenHash = refreshHash.String
	if revokedAt.Valid {
		t := revokedAt.Time
		s.RevokedAt = &t
	}
	if lastSeenAt.Valid {
		t := lastSeenAt.Time
		s.LastSeenAt = &t
	}
	return &s, nil
}

// ListByUser returns all sessions of the user, live and revoked, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Session
	for rows.Next() {
		var s domain.Session
		var activeOrgID, ipAddress, refreshJti, refreshHash sql.NullString
		var revokedAt, lastSeenAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.UserID, &activeOrgID, &s.ExpiresAt, &revokedAt, &lastSeenAt,
			&ipAddress, &refreshJti, &refreshHash, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.ActiveOrgID = activeOrgID.String
		s.IPAddress = ipAddress.String
		s.RefreshJti = refreshJti.String
		s.RefreshTokenHash = refreshHash.String
		if revokedAt.Valid {
			t := revokedAt.Time
			s.RevokedAt = &t
		}
		if lastSeenAt.Valid {
			t := lastSeenAt.Time
			s.LastSeenAt = &t
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Create persists the session to the database. The session must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, s *domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, active_org_id, expires_at, revoked_at, last_seen_at,
		                       ip_address, refresh_jti, refresh_token_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.UserID, nullStr(s.ActiveOrgID), s.ExpiresAt, timeToNullTime(s.RevokedAt),
		timeToNullTime(s.LastSeenAt), nullStr(s.IPAddress), nullStr(s.RefreshJti),
		nullStr(s.RefreshTokenHash), s.CreatedAt)
	return err
}

// Revoke marks the session revoked as of now. Revoking an already revoked
// session keeps the original timestamp.
func (r *PostgresRepository) Revoke(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL`, id, time.Now())
	return err
}

// RevokeAllByUser revokes every live session of the user.
func (r *PostgresRepository) RevokeAllByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked_at = $2 WHERE user_id = $1 AND revoked_at IS NULL`, userID, time.Now())
	return err
}

// UpdateLastSeen records request activity on the session.
func (r *PostgresRepository) UpdateLastSeen(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sessions SET last_seen_at = $2 WHERE id = $1`, id, at)
	return err
}

// UpdateRefreshToken rotates the refresh credential stored on the session.
func (r *PostgresRepository) UpdateRefreshToken(ctx context.Context, sessionID, jti, refreshTokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET refresh_jti = $2, refresh_token_hash = $3 WHERE id = $1`,
		sessionID, jti, refreshTokenHash)
	return err
}

// UpdateActiveOrg switches the session's active organization. An empty orgID
// drops back to the personal (no-org) context.
func (r *PostgresRepository) UpdateActiveOrg(ctx context.Context, sessionID, orgID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET active_org_id = $2 WHERE id = $1`, sessionID, nullStr(orgID))
	return err
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func timeToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
