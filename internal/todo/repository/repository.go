package repository

import (
	"context"
	"time"

	"teamspace/backend/internal/todo/domain"
)

// Repository defines persistence for todos. Mutations take the caller's
// userID and activeOrgID and repeat the owner-or-org predicate in the
// statement itself, so the access check and the write are one atomic
// operation; they report whether a row matched.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Todo, error)
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Todo, error)
	Create(ctx context.Context, t *domain.Todo) error
	SetCompleted(ctx context.Context, id string, completed bool, at time.Time, userID, activeOrgID string) (bool, error)
	Delete(ctx context.Context, id, userID, activeOrgID string) (bool, error)
}
