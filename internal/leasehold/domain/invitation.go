package domain

import (
	"strings"
	"time"
)

// DefaultInvitationTTL is how long an invitation link stays redeemable.
const DefaultInvitationTTL = 7 * 24 * time.Hour

// InvitationStatus is derived from the stored flags and the clock.
type InvitationStatus string

const (
	InvitationValid    InvitationStatus = "valid"
	InvitationExpired  InvitationStatus = "expired"
	InvitationConsumed InvitationStatus = "consumed"
	InvitationRevoked  InvitationStatus = "revoked"
)

type Invitation struct {
	Token        string // canonical 8-4-4-4-12 lowercase hex
	LandlordID   string
	PropertyID   string
	InvitedEmail string
	CreatedAt    time.Time
	ExpiresAt    time.Time
	Used         bool // never reverts; set by redemption or revocation
	UsedAt       *time.Time
	UsedBy       string // tenant account id, empty when revoked
	RevokedAt    *time.Time
}

// Check reports why the invitation cannot be redeemed at now, or nil.
// A used invitation reports ErrAlreadyUsed even once it is past expiry.
func (i Invitation) Check(now time.Time) error {
	if i.Used {
		return ErrAlreadyUsed
	}
	if !now.Before(i.ExpiresAt) {
		return ErrExpired
	}
	return nil
}

// Status derives the lifecycle state at now.
func (i Invitation) Status(now time.Time) InvitationStatus {
	switch {
	case i.RevokedAt != nil:
		return InvitationRevoked
	case i.Used:
		return InvitationConsumed
	case !now.Before(i.ExpiresAt):
		return InvitationExpired
	default:
		return InvitationValid
	}
}

// NormalizeInvitedEmail trims an optional invited email and checks its shape.
func NormalizeInvitedEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if len(s) > 254 || !validEmail(s) {
		return "", FieldError("invited_email", "must be a valid email address")
	}
	return s, nil
}
