package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/todo/domain"
)

// Repo is the minimal todo repository needed by the service.
type Repo interface {
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Todo, error)
	ListByOrg(ctx context.Context, orgID string) ([]*domain.Todo, error)
	Create(ctx context.Context, t *domain.Todo) error
	SetCompleted(ctx context.Context, id string, completed bool, at time.Time, userID, activeOrgID string) (bool, error)
	Delete(ctx context.Context, id, userID, activeOrgID string) (bool, error)
}

// Service implements todo operations under the owner-or-member access rule.
// Every method resolves the caller's identity from context; an unauthenticated
// context yields scope.ErrUnauthorized.
type Service struct {
	repo Repo
}

// NewService returns a todo Service backed by repo.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// ListOwned returns the caller's own todos merged with their active org's
// todos, deduplicated by id and ordered newest first. With no active org only
// the personal slice is returned.
func (s *Service) ListOwned(ctx context.Context) ([]*domain.Todo, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, scope.ErrUnauthorized
	}
	own, err := s.repo.ListByOwner(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	var org []*domain.Todo
	if ident.ActiveOrgID != "" {
		org, err = s.repo.ListByOrg(ctx, ident.ActiveOrgID)
		if err != nil {
			return nil, err
		}
	}
	return scope.MergeOwned(own, org,
		func(t *domain.Todo) string { return t.ID },
		func(t *domain.Todo) time.Time { return t.CreatedAt }), nil
}

// Create stamps a new todo with the caller's identity and persists it. The
// stamp is written once and never changes.
func (s *Service) Create(ctx context.Context, title string) (*domain.Todo, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, scope.ErrUnauthorized
	}
	now := time.Now().UTC()
	t := &domain.Todo{
		ID:        uuid.New().String(),
		Title:     title,
		Ownership: scope.StampFor(ident),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Toggle flips the completion flag of the todo. The caller must own the todo
// or share its organization; the write itself re-checks that predicate so the
// check and the update are atomic.
func (s *Service) Toggle(ctx context.Context, id string) (*domain.Todo, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, scope.ErrUnauthorized
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, scope.ErrNotFound
	}
	if err := scope.Authorize(ident, t.Ownership); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ok, err = s.repo.SetCompleted(ctx, id, !t.Completed, now, ident.UserID, ident.ActiveOrgID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The row disappeared between the read and the guarded write.
		return nil, scope.ErrNotFound
	}
	t.Completed = !t.Completed
	t.UpdatedAt = now
	return t, nil
}

// Delete removes the todo under the same access rule as Toggle.
func (s *Service) Delete(ctx context.Context, id string) error {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return scope.ErrUnauthorized
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return scope.ErrNotFound
	}
	if err := scope.Authorize(ident, t.Ownership); err != nil {
		return err
	}
	ok, err = s.repo.Delete(ctx, id, ident.UserID, ident.ActiveOrgID)
	if err != nil {
		return err
	}
	if !ok {
		return scope.ErrNotFound
	}
	return nil
}
