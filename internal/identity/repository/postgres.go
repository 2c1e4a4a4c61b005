package repository

import (
	"context"
	"database/sql"
	"errors"

	"teamspace/backend/internal/identity/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an identity repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const identityColumns = `id, user_id, provider, provider_id, password_hash, created_at`

// GetByUserAndProvider returns the identity for the user and provider, or nil
// if not found. It returns an error only for database failures.
func (r *PostgresRepository) GetByUserAndProvider(ctx context.Context, userID string, provider domain.IdentityProvider) (*domain.Identity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE user_id = $1 AND provider = $2`,
		userID, string(provider))
	return scanIdentity(row)
}

// GetByProviderID returns the identity for the provider-scoped external id,
// or nil if not found.
func (r *PostgresRepository) GetByProviderID(ctx context.Context, provider domain.IdentityProvider, providerID string) (*domain.Identity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE provider = $1 AND provider_id = $2`,
		string(provider), providerID)
	return scanIdentity(row)
}

// Create persists the identity. The identity must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, ident *domain.Identity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO identities (id, user_id, provider, provider_id, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ident.ID, ident.UserID, string(ident.Provider), ident.ProviderID,
		nullStr(ident.PasswordHash), ident.CreatedAt)
	return err
}

// UpdatePasswordHash replaces the stored credential hash for the identity.
func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE identities SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	return err
}

func scanIdentity(row *sql.Row) (*domain.Identity, error) {
	var ident domain.Identity
	var provider string
	var passwordHash sql.NullString
	err := row.Scan(&ident.ID, &ident.UserID, &provider, &ident.ProviderID, &passwordHash, &ident.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	ident.Provider = domain.IdentityProvider(provider)
	ident.PasswordHash = passwordHash.String
	return &ident, nil
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
