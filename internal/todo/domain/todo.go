package domain

import (
	"errors"
	"time"

	"teamspace/backend/internal/platform/scope"
)

// Todo is a task record governed by the owner-or-member access rule. The
// ownership stamp (OwnerUserID, OrgID) is written at creation and never
// changes; OrgID is empty for personal todos.
type Todo struct {
	ID        string
	Title     string
	Completed bool
	scope.Ownership
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the todo for persistence.
func (t *Todo) Validate() error {
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.OwnerUserID == "" {
		return errors.New("owner is required")
	}
	return nil
}
