// Package access decides whether an authenticated subject may act on a
// resource. Decisions are a pure function of the subject, the action and the
// resource's resolved ownership; Gate does the resolving.
package access

import (
	"fmt"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/pkg/cryptox"
)

// Subject is the authenticated caller, taken from a verified session.
type Subject struct {
	AccountID string
	Role      domain.Role
}

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionModify Action = "modify"
	ActionDelete Action = "delete"

	// ActionInvite issues invitations against a property.
	ActionInvite Action = "invite"

	// ActionRemoveTenant ends the tenancy on a property at once.
	ActionRemoveTenant Action = "remove_tenant"

	// ActionTerminate asks for a tenancy to end. Either party may.
	ActionTerminate Action = "terminate"
)

var actions = map[Action]struct{}{
	ActionRead: {}, ActionCreate: {}, ActionModify: {}, ActionDelete: {},
	ActionInvite: {}, ActionRemoveTenant: {}, ActionTerminate: {},
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := actions[a]; !ok {
		return "", fmt.Errorf("unknown action %q", s)
	}
	return a, nil
}

type Kind string

const (
	KindAccount    Kind = "account"
	KindProperty   Kind = "property"
	KindInvitation Kind = "invitation"
	KindBinding    Kind = "binding"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindAccount, KindProperty, KindInvitation, KindBinding:
		return k, nil
	default:
		return "", fmt.Errorf("unknown resource kind %q", s)
	}
}

// Resource names the target of an action. An empty ID addresses a
// collection: the one on a property when InProperty is set, the one of a
// landlord when OwnedBy is set, otherwise the unscoped collection, which is
// only meaningful for ActionCreate.
type Resource struct {
	Kind       Kind
	ID         string
	InProperty string
	OwnedBy    string
}

func Property(id string) Resource   { return Resource{Kind: KindProperty, ID: id} }
func Invitation(tok string) Resource { return Resource{Kind: KindInvitation, ID: tok} }
func Binding(id string) Resource    { return Resource{Kind: KindBinding, ID: id} }
func Account(id string) Resource    { return Resource{Kind: KindAccount, ID: id} }

// PropertyInvitations addresses the invitations issued against a property.
func PropertyInvitations(propertyID string) Resource {
	return Resource{Kind: KindInvitation, InProperty: propertyID}
}

// OwnedBy addresses every resource of kind k held by a landlord.
func OwnedBy(k Kind, landlordID string) Resource {
	return Resource{Kind: k, OwnedBy: landlordID}
}

// logID is r.ID with invitation tokens, which are bearer secrets, replaced
// by their fingerprint.
func (r Resource) logID() string {
	switch {
	case r.Kind == KindInvitation && r.ID != "":
		return "fp:" + cryptox.TokenFingerprint(r.ID)
	case r.ID == "" && r.InProperty != "":
		return "property:" + r.InProperty
	case r.ID == "" && r.OwnedBy != "":
		return "landlord:" + r.OwnedBy
	}
	return r.ID
}

// Ownership is a resource's resolved relationships to accounts.
type Ownership struct {
	Kind Kind

	// LandlordID owns the resource, directly or through a property. For a
	// tenant account it is the landlord of the property the tenant is bound to.
	LandlordID string

	// TenantID is the tenant bound to the resource, if any.
	TenantID string

	// AccountID is set for account resources only.
	AccountID string
}

// Decide applies the role rules. It never looks anything up.
func Decide(s Subject, a Action, o Ownership) bool {
	if s.AccountID == "" {
		return false
	}

	switch s.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleLandlord:
		return decideLandlord(s.AccountID, a, o)
	case domain.RoleTenant:
		return decideTenant(s.AccountID, a, o)
	default:
		return false
	}
}

func decideLandlord(id string, a Action, o Ownership) bool {
	switch o.Kind {
	case KindProperty:
		if a == ActionCreate {
			return true
		}
		return o.LandlordID == id
	case KindInvitation:
		return o.LandlordID == id && (a == ActionRead || a == ActionModify || a == ActionDelete)
	case KindBinding:
		return o.LandlordID == id && (a == ActionRead || a == ActionTerminate)
	case KindAccount:
		if o.AccountID == id {
			return a == ActionRead || a == ActionModify
		}
		// Tenants on own properties are readable.
		return a == ActionRead && o.LandlordID == id
	default:
		return false
	}
}

func decideTenant(id string, a Action, o Ownership) bool {
	switch o.Kind {
	case KindBinding:
		return o.TenantID == id && (a == ActionRead || a == ActionModify || a == ActionTerminate)
	case KindProperty:
		return o.TenantID == id && a == ActionRead
	case KindAccount:
		return o.AccountID == id && (a == ActionRead || a == ActionModify)
	default:
		return false
	}
}
