package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	todov1 "teamspace/backend/api/generated/todo/v1"
	"teamspace/backend/internal/platform/scope"
	"teamspace/backend/internal/todo/domain"
	"teamspace/backend/internal/todo/service"
)

// Server implements TodoService (proto server).
// Proto: todo/todo.proto -> internal/todo/handler.
type Server struct {
	todov1.UnimplementedTodoServiceServer
	svc *service.Service
}

// NewServer returns a new Todo gRPC server.
func NewServer(svc *service.Service) *Server {
	return &Server{svc: svc}
}

// CreateTodo creates a todo stamped with the caller's identity.
func (s *Server) CreateTodo(ctx context.Context, req *todov1.CreateTodoRequest) (*todov1.CreateTodoResponse, error) {
	title := strings.TrimSpace(req.GetTitle())
	if title == "" {
		return nil, status.Error(codes.InvalidArgument, "title required")
	}
	t, err := s.svc.Create(ctx, title)
	if err != nil {
		return nil, mapScopeErr(err, "failed to create todo")
	}
	return &todov1.CreateTodoResponse{Todo: domainTodoToProto(t)}, nil
}

// ListTodos returns the caller's own todos merged with their active org's,
// newest first.
func (s *Server) ListTodos(ctx context.Context, req *todov1.ListTodosRequest) (*todov1.ListTodosResponse, error) {
	list, err := s.svc.ListOwned(ctx)
	if err != nil {
		return nil, mapScopeErr(err, "failed to list todos")
	}
	todos := make([]*todov1.Todo, len(list))
	for i := range list {
		todos[i] = domainTodoToProto(list[i])
	}
	return &todov1.ListTodosResponse{Todos: todos}, nil
}

// ToggleTodo flips a todo's completion flag.
func (s *Server) ToggleTodo(ctx context.Context, req *todov1.ToggleTodoRequest) (*todov1.ToggleTodoResponse, error) {
	id := req.GetTodoId()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "todo_id required")
	}
	t, err := s.svc.Toggle(ctx, id)
	if err != nil {
		return nil, mapScopeErr(err, "failed to toggle todo")
	}
	return &todov1.ToggleTodoResponse{Todo: domainTodoToProto(t)}, nil
}

// DeleteTodo removes a todo.
func (s *Server) DeleteTodo(ctx context.Context, req *todov1.DeleteTodoRequest) (*todov1.DeleteTodoResponse, error) {
	id := req.GetTodoId()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "todo_id required")
	}
	if err := s.svc.Delete(ctx, id); err != nil {
		return nil, mapScopeErr(err, "failed to delete todo")
	}
	return &todov1.DeleteTodoResponse{}, nil
}

// mapScopeErr maps the access-policy sentinel errors to gRPC codes; anything
// else becomes Internal with msg.
func mapScopeErr(err error, msg string) error {
	switch {
	case errors.Is(err, scope.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "authentication required")
	case errors.Is(err, scope.ErrForbidden):
		return status.Error(codes.PermissionDenied, "access denied")
	case errors.Is(err, scope.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	}
	return status.Error(codes.Internal, msg)
}

func domainTodoToProto(t *domain.Todo) *todov1.Todo {
	return &todov1.Todo{
		Id:          t.ID,
		Title:       t.Title,
		Completed:   t.Completed,
		OwnerUserId: t.OwnerUserID,
		OrgId:       t.OrgID,
		CreatedAt:   timestamppb.New(t.CreatedAt),
		UpdatedAt:   timestamppb.New(t.UpdatedAt),
	}
}
