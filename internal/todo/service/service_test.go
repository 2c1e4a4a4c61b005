package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/todo/domain"
)

type memTodoRepo struct {
	mu sync.Mutex
	m  map[string]*domain.Todo

	// vanishOnWrite makes guarded writes report zero rows affected, as if the
	// row was deleted between the read and the write.
	vanishOnWrite bool
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{m: map[string]*domain.Todo{}}
}

func (r *memTodoRepo) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.m[id]; ok {
		t2 := *t
		return &t2, nil
	}
	return nil, nil
}

func (r *memTodoRepo) ListByOwner(ctx context.Context, userID string) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Todo
	for _, t := range r.m {
		if t.OwnerUserID == userID {
			t2 := *t
			out = append(out, &t2)
		}
	}
	return out, nil
}

func (r *memTodoRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Todo
	for _, t := range r.m {
		if t.OrgID != "" && t.OrgID == orgID {
			t2 := *t
			out = append(out, &t2)
		}
	}
	return out, nil
}

func (r *memTodoRepo) Create(ctx context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t2 := *t
	r.m[t.ID] = &t2
	return nil
}

// matches the SQL guard: owner or same non-empty org.
func guard(t *domain.Todo, userID, activeOrgID string) bool {
	if t.OwnerUserID == userID {
		return true
	}
	return t.OrgID != "" && t.OrgID == activeOrgID
}

func (r *memTodoRepo) SetCompleted(ctx context.Context, id string, completed bool, at time.Time, userID, activeOrgID string) (bool, error) {
	if r.vanishOnWrite {
		return false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.m[id]
	if !ok || !guard(t, userID, activeOrgID) {
		return false, nil
	}
	t.Completed = completed
	t.UpdatedAt = at
	return true, nil
}

func (r *memTodoRepo) Delete(ctx context.Context, id, userID, activeOrgID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.m[id]
	if !ok || !guard(t, userID, activeOrgID) {
		return false, nil
	}
	delete(r.m, id)
	return true, nil
}

func authedCtx(userID, orgID string) context.Context {
	return scope.WithIdentity(context.Background(), scope.Identity{UserID: userID, ActiveOrgID: orgID})
}

func TestCreate_StampsCallerIdentity(t *testing.T) {
	repo := newMemTodoRepo()
	svc := NewService(repo)

	todo, err := svc.Create(authedCtx("u1", "org1"), "write report")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if todo.OwnerUserID != "u1" || todo.OrgID != "org1" {
		t.Fatalf("stamp = (%q, %q), want (u1, org1)", todo.OwnerUserID, todo.OrgID)
	}

	personal, err := svc.Create(authedCtx("u1", ""), "personal task")
	if err != nil {
		t.Fatalf("Create personal: %v", err)
	}
	if personal.OrgID != "" {
		t.Fatalf("personal todo got org stamp %q", personal.OrgID)
	}
}

func TestCreate_Unauthenticated(t *testing.T) {
	svc := NewService(newMemTodoRepo())
	if _, err := svc.Create(context.Background(), "x"); !errors.Is(err, scope.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestListOwned_MergesAndDeduplicates(t *testing.T) {
	repo := newMemTodoRepo()
	svc := NewService(repo)
	base := time.Now().UTC()

	// u1's own org-stamped todo appears in both the owner and org queries.
	repo.m["a"] = &domain.Todo{ID: "a", Title: "mine+org", Ownership: scope.Ownership{OwnerUserID: "u1", OrgID: "org1"}, CreatedAt: base.Add(3 * time.Second)}
	// teammate's org todo: visible via org membership only.
	repo.m["b"] = &domain.Todo{ID: "b", Title: "teammate", Ownership: scope.Ownership{OwnerUserID: "u2", OrgID: "org1"}, CreatedAt: base.Add(2 * time.Second)}
	// u1's personal todo.
	repo.m["c"] = &domain.Todo{ID: "c", Title: "personal", Ownership: scope.Ownership{OwnerUserID: "u1"}, CreatedAt: base.Add(1 * time.Second)}
	// unrelated: different owner, different org.
	repo.m["d"] = &domain.Todo{ID: "d", Title: "other", Ownership: scope.Ownership{OwnerUserID: "u3", OrgID: "org2"}, CreatedAt: base}

	got, err := svc.ListOwned(authedCtx("u1", "org1"))
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (deduplicated)", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].ID != want {
			t.Errorf("got[%d].ID = %s, want %s (newest first)", i, got[i].ID, want)
		}
	}
}

func TestListOwned_NoActiveOrg(t *testing.T) {
	repo := newMemTodoRepo()
	svc := NewService(repo)
	repo.m["a"] = &domain.Todo{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1"}, CreatedAt: time.Now()}
	repo.m["b"] = &domain.Todo{ID: "b", Ownership: scope.Ownership{OwnerUserID: "u2", OrgID: "org1"}, CreatedAt: time.Now()}

	got, err := svc.ListOwned(authedCtx("u1", ""))
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %d todos, want only the personal one", len(got))
	}
}

func TestToggle_OwnerAndOrgMember(t *testing.T) {
	repo := newMemTodoRepo()
	svc := NewService(repo)
	repo.m["a"] = &domain.Todo{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1", OrgID: "org1"}}

	// Owner toggles on.
	got, err := svc.Toggle(authedCtx("u1", ""), "a")
	if err != nil {
		t.Fatalf("owner Toggle: %v", err)
	}
	if !got.Completed {
		t.Fatal("owner Toggle did not complete the todo")
	}

	// Org member (not owner) toggles back off.
	got, err = svc.Toggle(authedCtx("u2", "org1"), "a")
	if err != nil {
		t.Fatalf("member Toggle: %v", err)
	}
	if got.Completed {
		t.Fatal("member Toggle did not uncomplete the todo")
	}
}

func TestToggle_ForbiddenForOutsider(t *testing.T) {
	repo := newMemTodoRepo()
	svc := NewService(repo)
	repo.m["a"] = &domain.Todo{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1", OrgID: "org1"}}

	// Different user, different active org.
	if _, err := svc.Toggle(authedCtx("u2", "org2"), "a"); !errors.Is(err, scope.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	// Org member of the record's org, but with no active org: owner check and
	// org check both fail.
	if _, err := svc.Toggle(authedCtx("u2", ""), "a"); !errors.Is(err, scope.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestToggle_PersonalRecordNotReachableViaOrg(t *testing.T) {
	repo := newMemTodoRepo()
	svc := NewService(repo)
	// Personal record: empty OrgID never matches any active org.
	repo.m["a"] = &domain.Todo{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1"}}

	if _, err := svc.Toggle(authedCtx("u2", ""), "a"); !errors.Is(err, scope.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestToggle_NotFound(t *testing.T) {
	svc := NewService(newMemTodoRepo())
	if _, err := svc.Toggle(authedCtx("u1", ""), "missing"); !errors.Is(err, scope.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestToggle_RowGoneBetweenReadAndWrite(t *testing.T) {
	repo := newMemTodoRepo()
	svc := NewService(repo)
	repo.m["a"] = &domain.Todo{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1"}}
	repo.vanishOnWrite = true

	if _, err := svc.Toggle(authedCtx("u1", ""), "a"); !errors.Is(err, scope.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_OwnerOrgMemberForbiddenNotFound(t *testing.T) {
	repo := newMemTodoRepo()
	svc := NewService(repo)
	repo.m["a"] = &domain.Todo{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1", OrgID: "org1"}}
	repo.m["b"] = &domain.Todo{ID: "b", Ownership: scope.Ownership{OwnerUserID: "u1", OrgID: "org1"}}

	if err := svc.Delete(authedCtx("u3", "org9"), "a"); !errors.Is(err, scope.ErrForbidden) {
		t.Fatalf("outsider err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(authedCtx("u2", "org1"), "a"); err != nil {
		t.Fatalf("member Delete: %v", err)
	}
	if err := svc.Delete(authedCtx("u1", ""), "b"); err != nil {
		t.Fatalf("owner Delete: %v", err)
	}
	if err := svc.Delete(authedCtx("u1", ""), "b"); !errors.Is(err, scope.ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}
