package domain

import "time"

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// BindingStatus is the lifecycle stage of a tenancy.
type BindingStatus string

const (
	BindingActive             BindingStatus = "active"
	BindingPendingTermination BindingStatus = "pending_termination"
	BindingTerminated         BindingStatus = "terminated"
)

// Current reports whether the binding still holds its property.
func (s BindingStatus) Current() bool { return s != BindingTerminated }

// Party is a side of a tenancy that can ask for it to end.
type Party string

const (
	PartyLandlord Party = "landlord"
	PartyTenant   Party = "tenant"
)

// Binding ties exactly one tenant to exactly one property. Terminated
// bindings are kept as history; a property has at most one current binding.
type Binding struct {
	ID                 string
	TenantID           string
	LandlordID         string
	PropertyID         string
	MoveInDate         time.Time // UTC midnight
	InvitationToken    string
	Status             BindingStatus
	LandlordTerminated bool
	TenantTerminated   bool
	TerminatedAt       *time.Time
	CreatedAt          time.Time
}

// RequestTermination records that party wants the tenancy to end. Once both
// parties have asked, the binding is terminated at now. Asking again is a
// no-op; a terminated binding yields ErrConflict.
func (b Binding) RequestTermination(party Party, now time.Time) (Binding, error) {
	if !b.Status.Current() {
		return b, ErrConflict
	}

	switch party {
	case PartyLandlord:
		b.LandlordTerminated = true
	case PartyTenant:
		b.TenantTerminated = true
	default:
		return b, ErrForbidden
	}

	if b.LandlordTerminated && b.TenantTerminated {
		return b.terminate(now), nil
	}
	b.Status = BindingPendingTermination
	return b, nil
}

// Terminate ends the binding immediately, whatever the other party wants.
func (b Binding) Terminate(now time.Time) (Binding, error) {
	if !b.Status.Current() {
		return b, ErrConflict
	}
	return b.terminate(now), nil
}

func (b Binding) terminate(now time.Time) Binding {
	at := now.UTC()
	b.Status = BindingTerminated
	b.TerminatedAt = &at
	return b
}

// Tenancy is a binding with the records it references.
type Tenancy struct {
	Binding  Binding
	Tenant   Account
	Property Property
}

// Today truncates t to its UTC calendar date.
func Today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
