package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"teamspace/backend/internal/notification/domain"
	"teamspace/backend/internal/platform/scope"
)

// DefaultListLimit caps List when the caller does not pass a limit.
const DefaultListLimit = 50

// Repo is the minimal notification repository needed by the service.
type Repo interface {
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

// Service implements notification operations under the owner-or-member access
// rule.
type Service struct {
	repo Repo
}

// NewService returns a notification Service backed by repo.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the caller-supplied fields for Create.
type CreateInput struct {
	Type              domain.Type
	Title             string
	Message           string
	Priority          domain.Priority
	Scope             domain.Scope
	TargetUserID      string // recipient for user-scoped notifications; defaults to the caller
	RelatedEntityID   string
	RelatedEntityType string
	Data              []byte
	ActionURL         string
	ExpiresAt         *time.Time
}

// Create persists a notification authored by the caller. User-scoped
// notifications are addressed to TargetUserID; org-scoped ones to the
// caller's active organization. Exactly one recipient stamp is written, so a
// notification is never counted in both scopes.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Notification, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, scope.ErrUnauthorized
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}
	n := &domain.Notification{
		ID:                uuid.New().String(),
		Type:              in.Type,
		Title:             in.Title,
		Message:           in.Message,
		Priority:          in.Priority,
		Scope:             in.Scope,
		RelatedEntityID:   in.RelatedEntityID,
		RelatedEntityType: in.RelatedEntityType,
		Data:              in.Data,
		ActionURL:         in.ActionURL,
		CreatedBy:         ident.UserID,
		CreatedAt:         time.Now().UTC(),
		ExpiresAt:         in.ExpiresAt,
	}
	switch in.Scope {
	case domain.ScopeOrganization, domain.ScopeProject:
		if ident.ActiveOrgID == "" {
			return nil, scope.ErrForbidden
		}
		n.OrgID = ident.ActiveOrgID
	default:
		n.OwnerUserID = in.TargetUserID
		if n.OwnerUserID == "" {
			n.OwnerUserID = ident.UserID
		}
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// List returns the caller's notifications across both scopes, newest first.
// Each scope is queried with half the limit (floor), personal scope included
// even when no org is active, so one noisy scope cannot starve the other; the
// merged result is truncated back to limit.
func (s *Service) List(ctx context.Context, unreadOnly bool, typeFilter domain.Type, limit int32) ([]*domain.Notification, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, scope.ErrUnauthorized
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	perScope := limit / 2
	own, err := s.repo.ListByOwner(ctx, ident.UserID, unreadOnly, typeFilter, perScope)
	if err != nil {
		return nil, err
	}
	var org []*domain.Notification
	if ident.ActiveOrgID != "" {
		org, err = s.repo.ListByOrg(ctx, ident.ActiveOrgID, unreadOnly, typeFilter, perScope)
		if err != nil {
			return nil, err
		}
	}
	merged := scope.MergeOwned(own, org,
		func(n *domain.Notification) string { return n.ID },
		func(n *domain.Notification) time.Time { return n.CreatedAt })
	if int32(len(merged)) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// Counts holds the caller's unread notification counts, broken down by the
// scope carrying the recipient stamp.
type Counts struct {
	Total        int64
	User         int64
	Organization int64
}

// GetCounts returns the caller's unread notification counts. The total is the
// exact sum of the scope counts because every notification carries exactly one
// recipient stamp.
func (s *Service) GetCounts(ctx context.Context) (*Counts, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, scope.ErrUnauthorized
	}
	user, err := s.repo.CountByOwner(ctx, ident.UserID, true)
	if err != nil {
		return nil, err
	}
	var org int64
	if ident.ActiveOrgID != "" {
		org, err = s.repo.CountByOrg(ctx, ident.ActiveOrgID, true)
		if err != nil {
			return nil, err
		}
	}
	return &Counts{Total: user + org, User: user, Organization: org}, nil
}

// MarkRead marks one notification read. The caller must own it or share its
// organization; the write re-checks that predicate atomically. Marking an
// already read notification succeeds.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return scope.ErrUnauthorized
	}
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return scope.ErrNotFound
	}
	if err := scope.Authorize(ident, n.Ownership); err != nil {
		return err
	}
	ok, err = s.repo.MarkRead(ctx, id, time.Now().UTC(), ident.UserID, ident.ActiveOrgID)
	if err != nil {
		return err
	}
	if !ok {
		return scope.ErrNotFound
	}
	return nil
}

// markAllWorkers bounds the concurrent per-row writes in MarkAllRead so a
// large backlog cannot flood the database with goroutines.
const markAllWorkers = 8

// MarkAllRead marks every unread notification visible to the caller, fanning
// the per-row writes out over a fixed pool of workers. The first failure
// wins; rows already written stay read — the operation is safe to retry.
// Returns the number of rows marked.
func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return 0, scope.ErrUnauthorized
	}
	ids, err := s.repo.ListUnreadIDs(ctx, ident.UserID, ident.ActiveOrgID)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	work := make(chan string)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		marked   int64
	)
	workers := markAllWorkers
	if len(ids) < workers {
		workers = len(ids)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range work {
				ok, err := s.repo.MarkRead(ctx, id, now, ident.UserID, ident.ActiveOrgID)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				if err == nil && ok {
					marked++
				}
				mu.Unlock()
			}
		}()
	}
	for _, id := range ids {
		work <- id
	}
	close(work)
	wg.Wait()
	if firstErr != nil {
		return marked, firstErr
	}
	return marked, nil
}

// Delete removes a notification. Beyond the owner-or-member rule, the
// authoring user may always delete what they created.
func (s *Service) Delete(ctx context.Context, id string) error {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return scope.ErrUnauthorized
	}
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return scope.ErrNotFound
	}
	if err := scope.Authorize(ident, n.Ownership); err != nil {
		if n.CreatedBy == "" || n.CreatedBy != ident.UserID {
			return err
		}
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

// GetPreferences returns the caller's saved preferences for the active org
// context, or the defaults if they never saved any.
func (s *Service) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, scope.ErrUnauthorized
	}
	p, err := s.repo.GetPreferences(ctx, ident.UserID, ident.ActiveOrgID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return domain.DefaultPreferences(ident.UserID, ident.ActiveOrgID), nil
	}
	return p, nil
}

// UpdateInput carries the caller-supplied preference fields.
type UpdateInput struct {
	EmailEnabled      bool
	PushEnabled       bool
	OrgAnnouncements  bool
	DueDateReminders  bool
	DigestFrequency   domain.DigestFrequency
	QuietHoursEnabled bool
	QuietHoursStart   string
	QuietHoursEnd     string
}

// UpdatePreferences saves the caller's preferences for the active org
// context, replacing any prior row.
func (s *Service) UpdatePreferences(ctx context.Context, in UpdateInput) (*domain.Preferences, error) {
	ident, ok := scope.FromContext(ctx)
	if !ok {
		return nil, scope.ErrUnauthorized
	}
	p := &domain.Preferences{
		ID:                uuid.New().String(),
		UserID:            ident.UserID,
		OrgID:             ident.ActiveOrgID,
		EmailEnabled:      in.EmailEnabled,
		PushEnabled:       in.PushEnabled,
		OrgAnnouncements:  in.OrgAnnouncements,
		DueDateReminders:  in.DueDateReminders,
		DigestFrequency:   in.DigestFrequency,
		QuietHoursEnabled: in.QuietHoursEnabled,
		QuietHoursStart:   in.QuietHoursStart,
		QuietHoursEnd:     in.QuietHoursEnd,
		UpdatedAt:         time.Now().UTC(),
	}
	if p.DigestFrequency == "" {
		p.DigestFrequency = domain.DigestImmediate
	}
	if p.QuietHoursStart == "" {
		p.QuietHoursStart = "22:00"
	}
	if p.QuietHoursEnd == "" {
		p.QuietHoursEnd = "08:00"
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertPreferences(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CleanupExpired removes notifications whose expiry has passed. Run
// periodically by the worker.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now().UTC())
}
