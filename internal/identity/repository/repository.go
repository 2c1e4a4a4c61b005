package repository

import (
	"context"

	"teamspace/backend/internal/identity/domain"
)

// Repository defines persistence for authentication identities.
type Repository interface {
	GetByUserAndProvider(ctx context.Context, userID string, provider domain.IdentityProvider) (*domain.Identity, error)
	GetByProviderID(ctx context.Context, provider domain.IdentityProvider, providerID string) (*domain.Identity, error)
	Create(ctx context.Context, ident *domain.Identity) error
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}
