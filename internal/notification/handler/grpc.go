package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	notificationv1 "teamspace/backend/api/generated/notification/v1"
	"teamspace/backend/internal/notification/domain"
	"teamspace/backend/internal/notification/service"
	"teamspace/backend/internal/platform/scope"
)

// Server implements NotificationService (proto server).
// Proto: notification/notification.proto -> internal/notification/handler.
type Server struct {
	notificationv1.UnimplementedNotificationServiceServer
	svc *service.Service
}

// NewServer returns a new Notification gRPC server.
func NewServer(svc *service.Service) *Server {
	return &Server{svc: svc}
}

// CreateNotification creates a notification authored by the caller.
func (s *Server) CreateNotification(ctx context.Context, req *notificationv1.CreateNotificationRequest) (*notificationv1.CreateNotificationResponse, error) {
	in := service.CreateInput{
		Type:              domain.Type(req.GetType()),
		Title:             strings.TrimSpace(req.GetTitle()),
		Message:           strings.TrimSpace(req.GetMessage()),
		Priority:          domain.Priority(req.GetPriority()),
		Scope:             domain.Scope(req.GetScope()),
		TargetUserID:      req.GetTargetUserId(),
		RelatedEntityID:   req.GetRelatedEntityId(),
		RelatedEntityType: req.GetRelatedEntityType(),
		Data:              req.GetData(),
		ActionURL:         req.GetActionUrl(),
	}
	if req.GetExpiresAt() != nil {
		t := req.GetExpiresAt().AsTime()
		in.ExpiresAt = &t
	}
	n, err := s.svc.Create(ctx, in)
	if err != nil {
		if isScopeErr(err) {
			return nil, mapScopeErr(err)
		}
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &notificationv1.CreateNotificationResponse{Notification: domainNotificationToProto(n)}, nil
}

// ListNotifications returns the caller's notifications across both scopes.
func (s *Server) ListNotifications(ctx context.Context, req *notificationv1.ListNotificationsRequest) (*notificationv1.ListNotificationsResponse, error) {
	list, err := s.svc.List(ctx, req.GetUnreadOnly(), domain.Type(req.GetType()), req.GetLimit())
	if err != nil {
		if isScopeErr(err) {
			return nil, mapScopeErr(err)
		}
		return nil, status.Error(codes.Internal, "failed to list notifications")
	}
	out := make([]*notificationv1.Notification, len(list))
	for i := range list {
		out[i] = domainNotificationToProto(list[i])
	}
	return &notificationv1.ListNotificationsResponse{Notifications: out}, nil
}

// GetNotificationCounts returns unread counts per scope and their sum.
func (s *Server) GetNotificationCounts(ctx context.Context, req *notificationv1.GetNotificationCountsRequest) (*notificationv1.GetNotificationCountsResponse, error) {
	c, err := s.svc.GetCounts(ctx)
	if err != nil {
		if isScopeErr(err) {
			return nil, mapScopeErr(err)
		}
		return nil, status.Error(codes.Internal, "failed to count notifications")
	}
	return &notificationv1.GetNotificationCountsResponse{Total: c.Total, User: c.User, Organization: c.Organization}, nil
}

// MarkNotificationRead marks one notification read. Idempotent.
func (s *Server) MarkNotificationRead(ctx context.Context, req *notificationv1.MarkNotificationReadRequest) (*notificationv1.MarkNotificationReadResponse, error) {
	id := req.GetNotificationId()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "notification_id required")
	}
	if err := s.svc.MarkRead(ctx, id); err != nil {
		if isScopeErr(err) {
			return nil, mapScopeErr(err)
		}
		return nil, status.Error(codes.Internal, "failed to mark notification read")
	}
	return &notificationv1.MarkNotificationReadResponse{}, nil
}

// MarkAllNotificationsRead marks every unread notification visible to the caller.
func (s *Server) MarkAllNotificationsRead(ctx context.Context, req *notificationv1.MarkAllNotificationsReadRequest) (*notificationv1.MarkAllNotificationsReadResponse, error) {
	n, err := s.svc.MarkAllRead(ctx)
	if err != nil {
		if isScopeErr(err) {
			return nil, mapScopeErr(err)
		}
		return nil, status.Error(codes.Internal, "failed to mark notifications read")
	}
	return &notificationv1.MarkAllNotificationsReadResponse{MarkedCount: n}, nil
}

// DeleteNotification removes a notification.
func (s *Server) DeleteNotification(ctx context.Context, req *notificationv1.DeleteNotificationRequest) (*notificationv1.DeleteNotificationResponse, error) {
	id := req.GetNotificationId()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "notification_id required")
	}
	if err := s.svc.Delete(ctx, id); err != nil {
		if isScopeErr(err) {
			return nil, mapScopeErr(err)
		}
		return nil, status.Error(codes.Internal, "failed to delete notification")
	}
	return &notificationv1.DeleteNotificationResponse{}, nil
}

// GetNotificationPreferences returns saved preferences or the defaults.
func (s *Server) GetNotificationPreferences(ctx context.Context, req *notificationv1.GetNotificationPreferencesRequest) (*notificationv1.GetNotificationPreferencesResponse, error) {
	p, err := s.svc.GetPreferences(ctx)
	if err != nil {
		if isScopeErr(err) {
			return nil, mapScopeErr(err)
		}
		return nil, status.Error(codes.Internal, "failed to get preferences")
	}
	return &notificationv1.GetNotificationPreferencesResponse{Preferences: domainPreferencesToProto(p)}, nil
}

// UpdateNotificationPreferences saves the caller's preferences for the active
// org context.
func (s *Server) UpdateNotificationPreferences(ctx context.Context, req *notificationv1.UpdateNotificationPreferencesRequest) (*notificationv1.UpdateNotificationPreferencesResponse, error) {
	prefs := req.GetPreferences()
	if prefs == nil {
		return nil, status.Error(codes.InvalidArgument, "preferences required")
	}
	p, err := s.svc.UpdatePreferences(ctx, service.UpdateInput{
		EmailEnabled:      prefs.GetEmailEnabled(),
		PushEnabled:       prefs.GetPushEnabled(),
		OrgAnnouncements:  prefs.GetOrgAnnouncements(),
		DueDateReminders:  prefs.GetDueDateReminders(),
		DigestFrequency:   domain.DigestFrequency(prefs.GetDigestFrequency()),
		QuietHoursEnabled: prefs.GetQuietHoursEnabled(),
		QuietHoursStart:   prefs.GetQuietHoursStart(),
		QuietHoursEnd:     prefs.GetQuietHoursEnd(),
	})
	if err != nil {
		if isScopeErr(err) {
			return nil, mapScopeErr(err)
		}
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &notificationv1.UpdateNotificationPreferencesResponse{Preferences: domainPreferencesToProto(p)}, nil
}

func isScopeErr(err error) bool {
	return errors.Is(err, scope.ErrUnauthorized) ||
		errors.Is(err, scope.ErrForbidden) ||
		errors.Is(err, scope.ErrNotFound)
}

func mapScopeErr(err error) error {
	switch {
	case errors.Is(err, scope.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "authentication required")
	case errors.Is(err, scope.ErrForbidden):
		return status.Error(codes.PermissionDenied, "access denied")
	default:
		return status.Error(codes.NotFound, "not found")
	}
}

func domainNotificationToProto(n *domain.Notification) *notificationv1.Notification {
	out := &notificationv1.Notification{
		Id:                n.ID,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		Priority:          string(n.Priority),
		Scope:             string(n.Scope),
		OwnerUserId:       n.OwnerUserID,
		OrgId:             n.OrgID,
		RelatedEntityId:   n.RelatedEntityID,
		RelatedEntityType: n.RelatedEntityType,
		Data:              n.Data,
		ActionUrl:         n.ActionURL,
		IsRead:            n.IsRead,
		CreatedBy:         n.CreatedBy,
		CreatedAt:         timestamppb.New(n.CreatedAt),
	}
	out.ReadAt = timeToProto(n.ReadAt)
	out.ExpiresAt = timeToProto(n.ExpiresAt)
	return out
}

func domainPreferencesToProto(p *domain.Preferences) *notificationv1.NotificationPreferences {
	return &notificationv1.NotificationPreferences{
		EmailEnabled:      p.EmailEnabled,
		PushEnabled:       p.PushEnabled,
		OrgAnnouncements:  p.OrgAnnouncements,
		DueDateReminders:  p.DueDateReminders,
		DigestFrequency:   string(p.DigestFrequency),
		QuietHoursEnabled: p.QuietHoursEnabled,
		QuietHoursStart:   p.QuietHoursStart,
		QuietHoursEnd:     p.QuietHoursEnd,
	}
}

func timeToProto(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
