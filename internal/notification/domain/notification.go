package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"teamspace/backend/internal/platform/scope"
)

// Notification is a user- or organization-directed message. The ownership
// stamp addresses the recipients: OwnerUserID for user-scoped notifications,
// OrgID for org-wide ones (both may be set). CreatedBy is the authoring user
// and additionally grants delete rights.
type Notification struct {
	ID       string
	Type     Type
	Title    string
	Message  string
	Priority Priority
	Scope    Scope
	scope.Ownership
	RelatedEntityID   string
	RelatedEntityType string
	Data              json.RawMessage // optional structured payload
	ActionURL         string
	IsRead            bool
	ReadAt            *time.Time
	CreatedBy         string
	CreatedAt         time.Time
	ExpiresAt         *time.Time // nil means the notification never expires
}

// Scope tags who a notification addresses.
type Scope string

const (
	ScopeUser         Scope = "USER"
	ScopeOrganization Scope = "ORGANIZATION"
	ScopeProject      Scope = "PROJECT"
)

// Priority orders notifications in the UI; it carries no semantics here.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Type is the notification category, used for preference filtering.
type Type string

const (
	TypeTodoAssigned       Type = "TODO_ASSIGNED"
	TypeTodoCompleted      Type = "TODO_COMPLETED"
	TypeDueDateApproaching Type = "DUE_DATE_APPROACHING"
	TypeOrgAnnouncement    Type = "ORG_ANNOUNCEMENT"
	TypeOrgMemberJoined    Type = "ORG_MEMBER_JOINED"
	TypeSystemUpdate       Type = "SYSTEM_UPDATE"
)

var validScopes = map[Scope]bool{
	ScopeUser:         true,
	ScopeOrganization: true,
	ScopeProject:      true,
}

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

var validTypes = map[Type]bool{
	TypeTodoAssigned:       true,
	TypeTodoCompleted:      true,
	TypeDueDateApproaching: true,
	TypeOrgAnnouncement:    true,
	TypeOrgMemberJoined:    true,
	TypeSystemUpdate:       true,
}

// Validate validates the notification for persistence. Scope, priority, and
// type must be known values; stringly-typed passthrough is rejected here
// rather than trusted by convention.
func (n *Notification) Validate() error {
	if n.Title == "" {
		return errors.New("title is required")
	}
	if n.Message == "" {
		return errors.New("message is required")
	}
	if !validTypes[n.Type] {
		return fmt.Errorf("unknown notification type %q", n.Type)
	}
	if !validPriorities[n.Priority] {
		return fmt.Errorf("unknown priority %q", n.Priority)
	}
	if !validScopes[n.Scope] {
		return fmt.Errorf("unknown scope %q", n.Scope)
	}
	return nil
}
