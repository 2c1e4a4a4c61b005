package handler

import (
	"context"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	auditv1 "teamspace/backend/api/generated/audit/v1"
	"teamspace/backend/internal/audit/domain"
	auditrepo "teamspace/backend/internal/audit/repository"
	membershiprepo "teamspace/backend/internal/membership/repository"
	"teamspace/backend/internal/platform/rbac"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// Server implements AuditService (proto server) for the org audit trail.
// Proto: audit/audit.proto -> internal/audit/handler.
type Server struct {
	auditv1.UnimplementedAuditServiceServer
	auditRepo      auditrepo.Repository
	membershipRepo membershiprepo.Repository
}

// NewServer returns a new Audit gRPC server.
func NewServer(auditRepo auditrepo.Repository, membershipRepo membershiprepo.Repository) *Server {
	return &Server{auditRepo: auditRepo, membershipRepo: membershipRepo}
}

// ListAuditLogs returns a paginated list of the active org's audit entries,
// newest first. Caller must be org admin or owner.
func (s *Server) ListAuditLogs(ctx context.Context, req *auditv1.ListAuditLogsRequest) (*auditv1.ListAuditLogsResponse, error) {
	orgID, _, err := rbac.RequireOrgAdmin(ctx, s.membershipRepo)
	if err != nil {
		return nil, err
	}
	pageSize := int32(defaultPageSize)
	offset := int32(0)
	if pag := req.GetPagination(); pag != nil {
		if ps := pag.GetPageSize(); ps > 0 {
			pageSize = ps
		}
		if tok := pag.GetPageToken(); tok != "" {
			if n, err := strconv.ParseInt(tok, 10, 32); err == nil && n >= 0 {
				offset = int32(n)
			}
		}
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	list, err := s.auditRepo.ListByOrg(ctx, orgID, pageSize, offset)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list audit logs")
	}
	logs := make([]*auditv1.AuditLog, len(list))
	for i := range list {
		logs[i] = domainAuditLogToProto(list[i])
	}
	nextToken := ""
	if int32(len(list)) == pageSize {
		nextToken = strconv.FormatInt(int64(offset+pageSize), 10)
	}
	return &auditv1.ListAuditLogsResponse{Logs: logs, NextPageToken: nextToken}, nil
}

func domainAuditLogToProto(l *domain.AuditLog) *auditv1.AuditLog {
	return &auditv1.AuditLog{
		Id:        l.ID,
		OrgId:     l.OrgID,
		UserId:    l.UserID,
		Action:    l.Action,
		Resource:  l.Resource,
		Ip:        l.IP,
		Metadata:  l.Metadata,
		CreatedAt: timestamppb.New(l.CreatedAt),
	}
}
