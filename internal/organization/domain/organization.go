package domain

import (
	"errors"
	"time"
)

// Org represents an organization/tenant. Slug is the URL-safe unique handle
// shown in the org switcher.
type Org struct {
	ID        string
	Name      string
	Slug      string
	Logo      string // optional
	CreatedAt time.Time
}

// Validate validates the organization for persistence.
func (o *Org) Validate() error {
	if o.Name == "" {
		return errors.New("name is required")
	}
	if o.Slug == "" {
		return errors.New("slug is required")
	}
	return nil
}
