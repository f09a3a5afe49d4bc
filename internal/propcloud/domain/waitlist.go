package domain

import "time"

type WaitlistStatus string

const (
	WaitlistPending WaitlistStatus = "pending"
	WaitlistInvited WaitlistStatus = "invited"
	WaitlistActive  WaitlistStatus = "active"
)

func (s WaitlistStatus) Valid() bool {
	switch s {
	case WaitlistPending, WaitlistInvited, WaitlistActive:
		return true
	}
	return false
}

// WaitlistEntry is one signup. Position is assigned by the store on insert
// and never changes afterwards.
type WaitlistEntry struct {
	ID               string
	Email            string
	FullName         *string
	CompanyName      *string
	PropertiesCount  *int
	Phone            *string
	Website          *string
	CurrentSoftware  *string
	PainPoints       *string
	MarketingConsent bool
	Position         int64
	Status           WaitlistStatus
	CreatedAt        time.Time
	InvitedAt        *time.Time // set on every pending->invited (re)invite
	ActivatedAt      *time.Time // set when the invitee signs up
}

// DisplayName is the name to greet the entry with.
func (e WaitlistEntry) DisplayName() string {
	if e.FullName != nil && *e.FullName != "" {
		return *e.FullName
	}
	return "there"
}
