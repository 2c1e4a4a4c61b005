package handler

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notificationv1 "teamspace/backend/api/generated/notification/v1"
	"teamspace/backend/internal/notification/domain"
	"teamspace/backend/internal/notification/service"
	"teamspace/backend/internal/platform/scope"
)

type memRepo struct {
	mu    sync.Mutex
	m     map[string]*domain.Notification
	prefs map[string]*domain.Preferences
}

func newMemRepo() *memRepo {
	return &memRepo{m: map[string]*domain.Notification{}, prefs: map[string]*domain.Preferences{}}
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.m[id]; ok {
		n2 := *n
		return &n2, nil
	}
	return nil, nil
}

func (r *memRepo) list(match func(*domain.Notification) bool, unreadOnly bool, typeFilter domain.Type, limit int32) []*domain.Notification {
	var out []*domain.Notification
	for _, n := range r.m {
		if !match(n) || (unreadOnly && n.IsRead) || (typeFilter != "" && n.Type != typeFilter) {
			continue
		}
		n2 := *n
		out = append(out, &n2)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int32(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func (r *memRepo) ListByOwner(ctx context.Context, userID string, unreadOnly bool, typeFilter domain.Type, limit int32) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(n *domain.Notification) bool { return n.OwnerUserID == userID }, unreadOnly, typeFilter, limit), nil
}

func (r *memRepo) ListByOrg(ctx context.Context, orgID string, unreadOnly bool, typeFilter domain.Type, limit int32) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(n *domain.Notification) bool { return n.OrgID != "" && n.OrgID == orgID }, unreadOnly, typeFilter, limit), nil
}

func (r *memRepo) CountByOwner(ctx context.Context, userID string, unreadOnly bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c int64
	for _, n := range r.m {
		if n.OwnerUserID == userID && (!unreadOnly || !n.IsRead) {
			c++
		}
	}
	return c, nil
}

func (r *memRepo) CountByOrg(ctx context.Context, orgID string, unreadOnly bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c int64
	for _, n := range r.m {
		if n.OrgID != "" && n.OrgID == orgID && (!unreadOnly || !n.IsRead) {
			c++
		}
	}
	return c, nil
}

func (r *memRepo) ListUnreadIDs(ctx context.Context, userID, activeOrgID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, n := range r.m {
		if !n.IsRead && (n.OwnerUserID == userID || (activeOrgID != "" && n.OrgID == activeOrgID)) {
			ids = append(ids, n.ID)
		}
	}
	return ids, nil
}

func (r *memRepo) Create(ctx context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n2 := *n
	r.m[n.ID] = &n2
	return nil
}

func (r *memRepo) MarkRead(ctx context.Context, id string, at time.Time, userID, activeOrgID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.m[id]
	if !ok || (n.OwnerUserID != userID && (n.OrgID == "" || n.OrgID != activeOrgID)) {
		return false, nil
	}
	n.IsRead = true
	n.ReadAt = &at
	return true, nil
}

func (r *memRepo) Delete(ctx context.Context, id, userID, activeOrgID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.m[id]
	if !ok {
		return false, nil
	}
	if n.OwnerUserID != userID && (n.OrgID == "" || n.OrgID != activeOrgID) && n.CreatedBy != userID {
		return false, nil
	}
	delete(r.m, id)
	return true, nil
}

func (r *memRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func (r *memRepo) GetPreferences(ctx context.Context, userID, orgID string) (*domain.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.prefs[userID+"|"+orgID]; ok {
		p2 := *p
		return &p2, nil
	}
	return nil, nil
}

func (r *memRepo) UpsertPreferences(ctx context.Context, p *domain.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p2 := *p
	r.prefs[p.UserID+"|"+p.OrgID] = &p2
	return nil
}

func newTestServer() (*Server, *memRepo) {
	repo := newMemRepo()
	return NewServer(service.NewService(repo)), repo
}

func authedCtx(userID, orgID string) context.Context {
	return scope.WithIdentity(context.Background(), scope.Identity{UserID: userID, ActiveOrgID: orgID})
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("status code = %v, want %v", st.Code(), code)
	}
}

func TestCreateNotification_OrgScoped(t *testing.T) {
	srv, _ := newTestServer()

	resp, err := srv.CreateNotification(authedCtx("u1", "org1"), &notificationv1.CreateNotificationRequest{
		Type:    string(domain.TypeOrgAnnouncement),
		Title:   "All hands",
		Message: "Friday 3pm",
		Scope:   string(domain.ScopeOrganization),
	})
	if err != nil {
		t.Fatalf("CreateNotification: %v", err)
	}
	n := resp.GetNotification()
	if n.GetOrgId() != "org1" || n.GetOwnerUserId() != "" {
		t.Fatalf("stamp = (%q, %q), want org-only", n.GetOwnerUserId(), n.GetOrgId())
	}
	if n.GetCreatedBy() != "u1" {
		t.Errorf("created_by = %q, want u1", n.GetCreatedBy())
	}
}

func TestCreateNotification_OrgScopedWithoutOrg(t *testing.T) {
	srv, _ := newTestServer()
	_, err := srv.CreateNotification(authedCtx("u1", ""), &notificationv1.CreateNotificationRequest{
		Type:    string(domain.TypeOrgAnnouncement),
		Title:   "x",
		Message: "y",
		Scope:   string(domain.ScopeOrganization),
	})
	wantCode(t, err, codes.PermissionDenied)
}

func TestCreateNotification_InvalidType(t *testing.T) {
	srv, _ := newTestServer()
	_, err := srv.CreateNotification(authedCtx("u1", ""), &notificationv1.CreateNotificationRequest{
		Type:    "BOGUS",
		Title:   "x",
		Message: "y",
		Scope:   string(domain.ScopeUser),
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGetNotificationCounts(t *testing.T) {
	srv, repo := newTestServer()
	now := time.Now().UTC()
	repo.m["a"] = &domain.Notification{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1"}, CreatedAt: now}
	repo.m["b"] = &domain.Notification{ID: "b", Ownership: scope.Ownership{OrgID: "org1"}, CreatedAt: now, IsRead: true}
	repo.m["c"] = &domain.Notification{ID: "c", Ownership: scope.Ownership{OrgID: "org1"}, CreatedAt: now}

	resp, err := srv.GetNotificationCounts(authedCtx("u1", "org1"), &notificationv1.GetNotificationCountsRequest{})
	if err != nil {
		t.Fatalf("GetNotificationCounts: %v", err)
	}
	// Unread only: the read org notification is not counted.
	if resp.GetUser() != 1 || resp.GetOrganization() != 1 || resp.GetTotal() != 2 {
		t.Fatalf("counts = user %d org %d total %d, want 1/1/2",
			resp.GetUser(), resp.GetOrganization(), resp.GetTotal())
	}
}

func TestMarkAllNotificationsRead_ReturnsCount(t *testing.T) {
	srv, repo := newTestServer()
	now := time.Now().UTC()
	repo.m["a"] = &domain.Notification{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1"}, CreatedAt: now}
	repo.m["b"] = &domain.Notification{ID: "b", Ownership: scope.Ownership{OrgID: "org1"}, CreatedAt: now}

	resp, err := srv.MarkAllNotificationsRead(authedCtx("u1", "org1"), &notificationv1.MarkAllNotificationsReadRequest{})
	if err != nil {
		t.Fatalf("MarkAllNotificationsRead: %v", err)
	}
	if resp.GetMarkedCount() != 2 {
		t.Fatalf("marked_count = %d, want 2", resp.GetMarkedCount())
	}
}

func TestMarkNotificationRead_ErrorMapping(t *testing.T) {
	srv, repo := newTestServer()
	repo.m["a"] = &domain.Notification{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1"}, CreatedAt: time.Now().UTC()}

	_, err := srv.MarkNotificationRead(authedCtx("u2", ""), &notificationv1.MarkNotificationReadRequest{NotificationId: "a"})
	wantCode(t, err, codes.PermissionDenied)

	_, err = srv.MarkNotificationRead(authedCtx("u1", ""), &notificationv1.MarkNotificationReadRequest{NotificationId: "missing"})
	wantCode(t, err, codes.NotFound)

	_, err = srv.MarkNotificationRead(context.Background(), &notificationv1.MarkNotificationReadRequest{NotificationId: "a"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestPreferences_DefaultsThenSaved(t *testing.T) {
	srv, _ := newTestServer()
	ctx := authedCtx("u1", "org1")

	resp, err := srv.GetNotificationPreferences(ctx, &notificationv1.GetNotificationPreferencesRequest{})
	if err != nil {
		t.Fatalf("GetNotificationPreferences: %v", err)
	}
	if !resp.GetPreferences().GetEmailEnabled() {
		t.Fatal("defaults should enable email")
	}

	_, err = srv.UpdateNotificationPreferences(ctx, &notificationv1.UpdateNotificationPreferencesRequest{
		Preferences: &notificationv1.NotificationPreferences{
			EmailEnabled:    false,
			PushEnabled:     true,
			DigestFrequency: string(domain.DigestWeekly),
		},
	})
	if err != nil {
		t.Fatalf("UpdateNotificationPreferences: %v", err)
	}

	resp, err = srv.GetNotificationPreferences(ctx, &notificationv1.GetNotificationPreferencesRequest{})
	if err != nil {
		t.Fatalf("GetNotificationPreferences after save: %v", err)
	}
	p := resp.GetPreferences()
	if p.GetEmailEnabled() || !p.GetPushEnabled() || p.GetDigestFrequency() != string(domain.DigestWeekly) {
		t.Fatalf("saved prefs not returned: %+v", p)
	}
}
