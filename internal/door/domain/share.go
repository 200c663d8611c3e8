package domain

import "time"

// ShareState is derived from the validated/blacklisted flags of a record.
type ShareState string

const (
	ShareUnvalidated ShareState = "unvalidated"
	ShareValidated   ShareState = "validated"
	ShareBlacklisted ShareState = "blacklisted"
)

// Share is a persisted user share for one (user, door) pair. Blacklisted
// records are kept for audit and never modified.
type Share struct {
	ID            string // ULID
	UserName      string
	DoorName      string
	Value         []byte // 4L bytes
	IsValidated   bool
	IsBlacklisted bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s Share) State() ShareState {
	switch {
	case s.IsBlacklisted:
		return ShareBlacklisted
	case s.IsValidated:
		return ShareValidated
	default:
		return ShareUnvalidated
	}
}

// Active reports whether the record counts towards the one-active-share rule.
func (s Share) Active() bool { return !s.IsBlacklisted }

// ShareFilter narrows admin share listings. Nil flags match both values.
type ShareFilter struct {
	UserName      string
	DoorName      string
	IsValidated   *bool
	IsBlacklisted *bool
	Page          Page
}

// VerifyResult is what a door reader learns from presenting a user share.
type VerifyResult struct {
	Granted  bool
	UserName string
	ShareID  string
	Reason   string // set when access is denied
}
