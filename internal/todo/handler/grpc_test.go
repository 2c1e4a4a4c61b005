package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	todov1 "teamspace/backend/api/generated/todo/v1"
	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/todo/domain"
	"teamspace/backend/internal/todo/service"
)

type memRepo struct {
	mu sync.Mutex
	m  map[string]*domain.Todo
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.m[id]; ok {
		t2 := *t
		return &t2, nil
	}
	return nil, nil
}

func (r *memRepo) ListByOwner(ctx context.Context, userID string) ([]*domain.Todo, error) {
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

func (r *memRepo) ListByOrg(ctx context.Context, orgID string) ([]*domain.Todo, error) {
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

func (r *memRepo) Create(ctx context.Context, t *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t2 := *t
	r.m[t.ID] = &t2
	return nil
}

func (r *memRepo) SetCompleted(ctx context.Context, id string, completed bool, at time.Time, userID, activeOrgID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.m[id]
	if !ok || (t.OwnerUserID != userID && (t.OrgID == "" || t.OrgID != activeOrgID)) {
		return false, nil
	}
	t.Completed = completed
	t.UpdatedAt = at
	return true, nil
}

func (r *memRepo) Delete(ctx context.Context, id, userID, activeOrgID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.m[id]
	if !ok || (t.OwnerUserID != userID && (t.OrgID == "" || t.OrgID != activeOrgID)) {
		return false, nil
	}
	delete(r.m, id)
	return true, nil
}

func newTestServer() (*Server, *memRepo) {
	repo := &memRepo{m: map[string]*domain.Todo{}}
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

func TestCreateTodo(t *testing.T) {
	srv, _ := newTestServer()

	resp, err := srv.CreateTodo(authedCtx("u1", "org1"), &todov1.CreateTodoRequest{Title: "  write report  "})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	got := resp.GetTodo()
	if got.GetTitle() != "write report" {
		t.Errorf("title = %q, want trimmed", got.GetTitle())
	}
	if got.GetOwnerUserId() != "u1" || got.GetOrgId() != "org1" {
		t.Errorf("stamp = (%q, %q), want (u1, org1)", got.GetOwnerUserId(), got.GetOrgId())
	}
}

func TestCreateTodo_EmptyTitle(t *testing.T) {
	srv, _ := newTestServer()
	_, err := srv.CreateTodo(authedCtx("u1", ""), &todov1.CreateTodoRequest{Title: "   "})
	wantCode(t, err, codes.InvalidArgument)
}

func TestCreateTodo_Unauthenticated(t *testing.T) {
	srv, _ := newTestServer()
	_, err := srv.CreateTodo(context.Background(), &todov1.CreateTodoRequest{Title: "x"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestListTodos_MergedScopes(t *testing.T) {
	srv, repo := newTestServer()
	base := time.Now().UTC()
	repo.m["a"] = &domain.Todo{ID: "a", Title: "mine", Ownership: scope.Ownership{OwnerUserID: "u1"}, CreatedAt: base.Add(time.Second)}
	repo.m["b"] = &domain.Todo{ID: "b", Title: "team", Ownership: scope.Ownership{OwnerUserID: "u2", OrgID: "org1"}, CreatedAt: base}

	resp, err := srv.ListTodos(authedCtx("u1", "org1"), &todov1.ListTodosRequest{})
	if err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if len(resp.GetTodos()) != 2 {
		t.Fatalf("len = %d, want 2", len(resp.GetTodos()))
	}
}

func TestToggleTodo_ErrorMapping(t *testing.T) {
	srv, repo := newTestServer()
	repo.m["a"] = &domain.Todo{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1", OrgID: "org1"}}

	_, err := srv.ToggleTodo(authedCtx("u9", "org9"), &todov1.ToggleTodoRequest{TodoId: "a"})
	wantCode(t, err, codes.PermissionDenied)

	_, err = srv.ToggleTodo(authedCtx("u1", ""), &todov1.ToggleTodoRequest{TodoId: "missing"})
	wantCode(t, err, codes.NotFound)

	_, err = srv.ToggleTodo(authedCtx("u1", ""), &todov1.ToggleTodoRequest{})
	wantCode(t, err, codes.InvalidArgument)

	resp, err := srv.ToggleTodo(authedCtx("u1", ""), &todov1.ToggleTodoRequest{TodoId: "a"})
	if err != nil {
		t.Fatalf("ToggleTodo: %v", err)
	}
	if !resp.GetTodo().GetCompleted() {
		t.Fatal("todo not completed")
	}
}

func TestDeleteTodo(t *testing.T) {
	srv, repo := newTestServer()
	repo.m["a"] = &domain.Todo{ID: "a", Ownership: scope.Ownership{OwnerUserID: "u1"}}

	if _, err := srv.DeleteTodo(authedCtx("u1", ""), &todov1.DeleteTodoRequest{TodoId: "a"}); err != nil {
		t.Fatalf("DeleteTodo: %v", err)
	}
	_, err := srv.DeleteTodo(authedCtx("u1", ""), &todov1.DeleteTodoRequest{TodoId: "a"})
	wantCode(t, err, codes.NotFound)
}
