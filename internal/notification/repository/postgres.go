package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"teamspace/backend/internal/notification/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a notification repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const notificationColumns = `id, type, title, message, priority, scope, owner_user_id, org_id,
	related_entity_id, related_entity_type, data, action_url, is_read, read_at,
	created_by, created_at, expires_at`

const notLive = `(expires_at IS NULL OR expires_at > NOW())`

// GetByID returns the notification for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanNotification(rows)
}

// ListByOwner returns the user's own notifications, newest first, excluding
// expired ones. typeFilter narrows by type when non-empty.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string, unreadOnly bool, typeFilter domain.Type, limit int32) ([]*domain.Notification, error) {
	return r.list(ctx, "owner_user_id", userID, unreadOnly, typeFilter, limit)
}

// ListByOrg returns the org's notifications, newest first, excluding expired
// ones. typeFilter narrows by type when non-empty.
func (r *PostgresRepository) ListByOrg(ctx context.Context, orgID string, unreadOnly bool, typeFilter domain.Type, limit int32) ([]*domain.Notification, error) {
	return r.list(ctx, "org_id", orgID, unreadOnly, typeFilter, limit)
}

func (r *PostgresRepository) list(ctx context.Context, scopeCol, scopeID string, unreadOnly bool, typeFilter domain.Type, limit int32) ([]*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE ` + scopeCol + ` = $1 AND ` + notLive
	args := []any{scopeID}
	if unreadOnly {
		query += ` AND is_read = FALSE`
	}
	if typeFilter != "" {
		args = append(args, string(typeFilter))
		query += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// CountByOwner counts the user's own live notifications.
func (r *PostgresRepository) CountByOwner(ctx context.Context, userID string, unreadOnly bool) (int64, error) {
	return r.count(ctx, "owner_user_id", userID, unreadOnly)
}

// CountByOrg counts the org's live notifications.
func (r *PostgresRepository) CountByOrg(ctx context.Context, orgID string, unreadOnly bool) (int64, error) {
	return r.count(ctx, "org_id", orgID, unreadOnly)
}

func (r *PostgresRepository) count(ctx context.Context, scopeCol, scopeID string, unreadOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE ` + scopeCol + ` = $1 AND ` + notLive
	if unreadOnly {
		query += ` AND is_read = FALSE`
	}
	var n int64
	err := r.db.QueryRowContext(ctx, query, scopeID).Scan(&n)
	return n, err
}

// ListUnreadIDs returns the ids of every live unread notification the caller
// can see across both scopes.
func (r *PostgresRepository) ListUnreadIDs(ctx context.Context, userID, activeOrgID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM notifications
		 WHERE (owner_user_id = $1 OR (org_id IS NOT NULL AND org_id = $2))
		   AND is_read = FALSE AND `+notLive,
		userID, nullStr(activeOrgID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create persists the notification. The notification must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, n *domain.Notification) error {
	var data any
	if len(n.Data) > 0 {
		data = []byte(n.Data)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, type, title, message, priority, scope, owner_user_id, org_id,
		                            related_entity_id, related_entity_type, data, action_url, is_read,
		                            read_at, created_by, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		n.ID, string(n.Type), n.Title, n.Message, string(n.Priority), string(n.Scope),
		nullStr(n.OwnerUserID), nullStr(n.OrgID), nullStr(n.RelatedEntityID),
		nullStr(n.RelatedEntityType), data, nullStr(n.ActionURL), n.IsRead,
		timeToNullTime(n.ReadAt), nullStr(n.CreatedBy), n.CreatedAt, timeToNullTime(n.ExpiresAt))
	return err
}

// MarkRead marks the notification read if the caller may access the row,
// reporting whether a row matched. Already-read rows still match, so the
// write is idempotent.
func (r *PostgresRepository) MarkRead(ctx context.Context, id string, at time.Time, userID, activeOrgID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = $4
		 WHERE id = $1 AND (owner_user_id = $2 OR (org_id IS NOT NULL AND org_id = $3))`,
		id, userID, nullStr(activeOrgID), at)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Delete removes the notification if the caller owns it, authored it, or
// shares its org, reporting whether a row matched.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID, activeOrgID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications
		 WHERE id = $1 AND (owner_user_id = $2 OR created_by = $2 OR (org_id IS NOT NULL AND org_id = $3))`,
		id, userID, nullStr(activeOrgID))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteExpired removes notifications whose expiry has passed, returning the
// number of rows swept.
func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetPreferences returns the user's saved preferences for the org context,
// or nil if they have never saved any.
func (r *PostgresRepository) GetPreferences(ctx context.Context, userID, orgID string) (*domain.Preferences, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, org_id, email_enabled, push_enabled, org_announcements,
		        due_date_reminders, digest_frequency, quiet_hours_enabled,
		        quiet_hours_start, quiet_hours_end, updated_at
		 FROM notification_preferences
		 WHERE user_id = $1 AND org_id IS NOT DISTINCT FROM $2`,
		userID, nullStr(orgID))
	var p domain.Preferences
	var pOrgID sql.NullString
	var freq string
	err := row.Scan(&p.ID, &p.UserID, &pOrgID, &p.EmailEnabled, &p.PushEnabled,
		&p.OrgAnnouncements, &p.DueDateReminders, &freq, &p.QuietHoursEnabled,
		&p.QuietHoursStart, &p.QuietHoursEnd, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.OrgID = pOrgID.String
	p.DigestFrequency = domain.DigestFrequency(freq)
	return &p, nil
}

// UpsertPreferences saves the preferences, replacing any prior row for the
// same (user, org) pair.
func (r *PostgresRepository) UpsertPreferences(ctx context.Context, p *domain.Preferences) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notification_preferences (id, user_id, org_id, email_enabled, push_enabled,
		        org_announcements, due_date_reminders, digest_frequency, quiet_hours_enabled,
		        quiet_hours_start, quiet_hours_end, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (user_id, org_id) DO UPDATE SET
		        email_enabled = EXCLUDED.email_enabled,
		        push_enabled = EXCLUDED.push_enabled,
		        org_announcements = EXCLUDED.org_announcements,
		        due_date_reminders = EXCLUDED.due_date_reminders,
		        digest_frequency = EXCLUDED.digest_frequency,
		        quiet_hours_enabled = EXCLUDED.quiet_hours_enabled,
		        quiet_hours_start = EXCLUDED.quiet_hours_start,
		        quiet_hours_end = EXCLUDED.quiet_hours_end,
		        updated_at = EXCLUDED.updated_at`,
		p.ID, p.UserID, nullStr(p.OrgID), p.EmailEnabled, p.PushEnabled,
		p.OrgAnnouncements, p.DueDateReminders, string(p.DigestFrequency),
		p.QuietHoursEnabled, p.QuietHoursStart, p.QuietHoursEnd, p.UpdatedAt)
	return err
}

func scanNotification(rows *sql.Rows) (*domain.Notification, error) {
	var n domain.Notification
	var typ, priority, nscope string
	var owner, orgID, relID, relType, actionURL, createdBy sql.NullString
	var data []byte
	var readAt, expiresAt sql.NullTime
	err := rows.Scan(&n.ID, &typ, &n.Title, &n.Message, &priority, &nscope, &owner, &orgID,
		&relID, &relType, &data, &actionURL, &n.IsRead, &readAt, &createdBy,
		&n.CreatedAt, &expiresAt)
	if err != nil {
		return nil, err
	}
	n.Type = domain.Type(typ)
	n.Priority = domain.Priority(priority)
	n.Scope = domain.Scope(nscope)
	n.OwnerUserID = owner.String
	n.OrgID = orgID.String
	n.RelatedEntityID = relID.String
	n.RelatedEntityType = relType.String
	n.Data = data
	n.ActionURL = actionURL.String
	n.CreatedBy = createdBy.String
	if readAt.Valid {
		t := readAt.Time
		n.ReadAt = &t
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		n.ExpiresAt = &t
	}
	return &n, nil
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
