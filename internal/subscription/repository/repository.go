package repository

import (
	"context"

	"teamspace/backend/internal/subscription/domain"
)

// Repository defines persistence for billing subscriptions.
type Repository interface {
	GetByOrg(ctx context.Context, orgID string) (*domain.Subscription, error)
	Upsert(ctx context.Context, s *domain.Subscription) error
}
