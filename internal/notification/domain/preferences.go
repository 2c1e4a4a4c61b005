package domain

import (
	"fmt"
	"time"
)

// DigestFrequency controls how notification digests are batched.
type DigestFrequency string

const (
	DigestImmediate DigestFrequency = "IMMEDIATE"
	DigestHourly    DigestFrequency = "HOURLY"
	DigestDaily     DigestFrequency = "DAILY"
	DigestWeekly    DigestFrequency = "WEEKLY"
	DigestNever     DigestFrequency = "NEVER"
)

var validDigestFrequencies = map[DigestFrequency]bool{
	DigestImmediate: true,
	DigestHourly:    true,
	DigestDaily:     true,
	DigestWeekly:    true,
	DigestNever:     true,
}

// Preferences holds a user's notification settings, scoped to one
// organization (OrgID empty for the personal context). One row per
// (user, org) pair, upserted on change.
type Preferences struct {
	ID                string
	UserID            string
	OrgID             string
	EmailEnabled      bool
	PushEnabled       bool
	OrgAnnouncements  bool
	DueDateReminders  bool
	DigestFrequency   DigestFrequency
	QuietHoursEnabled bool
	QuietHoursStart   string // HH:MM
	QuietHoursEnd     string // HH:MM
	UpdatedAt         time.Time
}

// DefaultPreferences returns the settings reported when a user has never
// saved any: everything enabled, immediate delivery, quiet hours off.
func DefaultPreferences(userID, orgID string) *Preferences {
	return &Preferences{
		UserID:           userID,
		OrgID:            orgID,
		EmailEnabled:     true,
		PushEnabled:      true,
		OrgAnnouncements: true,
		DueDateReminders: true,
		DigestFrequency:  DigestImmediate,
		QuietHoursStart:  "22:00",
		QuietHoursEnd:    "08:00",
	}
}

// Validate validates the preferences for persistence.
func (p *Preferences) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if !validDigestFrequencies[p.DigestFrequency] {
		return fmt.Errorf("unknown digest frequency %q", p.DigestFrequency)
	}
	return nil
}
