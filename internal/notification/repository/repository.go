package repository

import (
	"context"
	"time"

	"teamspace/backend/internal/notification/domain"
)

// Repository defines persistence for notifications and per-user preferences.
//
// List and count queries serve a single scope (owner or org); the service
// merges the two. Expired notifications are filtered out of reads and swept
// by DeleteExpired. Guarded mutations repeat the access predicate in the
// statement and report whether a row matched.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByOwner(ctx context.Context, userID string, unreadOnly bool, typeFilter domain.Type, limit int32) ([]*domain.Notification, error)
	ListByOrg(ctx context.Context, orgID string, unreadOnly bool, typeFilter domain.Type, limit int32) ([]*domain.Notification, error)
	CountByOwner(ctx context.Context, userID string, unreadOnly bool) (int64, error)
	CountByOrg(ctx context.Context, orgID string, unreadOnly bool) (int64, error)
	ListUnreadIDs(ctx context.Context, userID, activeOrgID string) ([]string, error)
	Create(ctx context.Context, n *domain.Notification) error
	MarkRead(ctx context.Context, id string, at time.Time, userID, activeOrgID string) (bool, error)
	Delete(ctx context.Context, id, userID, activeOrgID string) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	GetPreferences(ctx context.Context, userID, orgID string) (*domain.Preferences, error)
	UpsertPreferences(ctx context.Context, p *domain.Preferences) error
}
