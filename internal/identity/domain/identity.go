package domain

import "time"

// Identity is an authentication credential for a user (one per provider).
// Only the local email/password provider exists today.
type Identity struct {
	ID           string
	UserID       string
	Provider     IdentityProvider
	ProviderID   string // provider-scoped external id; the email for local
	PasswordHash string // bcrypt hash; only for the local provider
	CreatedAt    time.Time
}

type IdentityProvider string

const (
	IdentityProviderLocal IdentityProvider = "local"
)
