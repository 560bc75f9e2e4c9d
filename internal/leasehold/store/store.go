package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict is returned when a compare-and-set update matched no row
	// because the guarded flag had already flipped.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories; multi-step writes go through WithTx and must only touch
// the Tx they are handed.
type Store interface {
	Accounts() Accounts
	Properties() Properties
	Invitations() Invitations
	Bindings() Bindings

	ApplyMigrations() error

	// Tx starts a write transaction and returns a Tx-scoped Store. The caller
	// MUST call Commit() or Rollback().
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a write transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount returns ErrAlreadyExists on a duplicate username or email.
	CreateAccount(ctx context.Context, a domain.Account) error

	GetAccountByID(ctx context.Context, id string) (domain.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	// GetAccountByEmail matches case-insensitively.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	CountAccountsByRole(ctx context.Context, role domain.Role) (int, error)

	// DeleteAccount returns ErrNotFound when no row was removed.
	DeleteAccount(ctx context.Context, id string) error
}

type Properties interface {
	CreateProperty(ctx context.Context, p domain.Property) error
	GetPropertyByID(ctx context.Context, id string) (domain.Property, error)

	// ListPropertiesByLandlord returns newest first.
	ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error)

	UpdatePropertyDetails(ctx context.Context, id string, d domain.PropertyDetails, at time.Time) error

	// MarkPropertyOccupied flips occupied 0->1, ErrConflict if it was already 1.
	MarkPropertyOccupied(ctx context.Context, id string, at time.Time) error

	// MarkPropertyVacant flips occupied 1->0, ErrConflict if it was already 0.
	MarkPropertyVacant(ctx context.Context, id string, at time.Time) error

	DeleteProperty(ctx context.Context, id string) error
}

type Invitations interface {
	CreateInvitation(ctx context.Context, inv domain.Invitation) error
	GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error)

	// ListOutstandingInvitations returns unused invitations, expired ones
	// included, newest first.
	ListOutstandingInvitations(ctx context.Context, propertyID string) ([]domain.Invitation, error)

	// MarkInvitationUsed flips used 0->1 recording who redeemed it,
	// ErrConflict if it was already used.
	MarkInvitationUsed(ctx context.Context, token, tenantID string, at time.Time) error

	// RevokeInvitation flips used 0->1 with revoked_at, ErrConflict if it
	// was already used.
	RevokeInvitation(ctx context.Context, token string, at time.Time) error

	DeleteInvitationsByProperty(ctx context.Context, propertyID string) (int, error)

	// DeleteStaleInvitations removes never-redeemed invitations that expired
	// before the cutoff.
	DeleteStaleInvitations(ctx context.Context, cutoff time.Time) (int, error)
}

type Bindings interface {
	// CreateBinding returns ErrAlreadyExists if the property already has a
	// current binding or the tenant is already bound.
	CreateBinding(ctx context.Context, b domain.Binding) error

	GetBindingByID(ctx context.Context, id string) (domain.Binding, error)
	GetBindingByTenant(ctx context.Context, tenantID string) (domain.Binding, error)

	// GetBindingByProperty returns the property's current binding and
	// ErrNotFound when it is vacant.
	GetBindingByProperty(ctx context.Context, propertyID string) (domain.Binding, error)

	// ListBindingsByLandlord lists current bindings, newest first, or ended
	// ones, most recently terminated first.
	ListBindingsByLandlord(ctx context.Context, landlordID string, ended bool) ([]domain.Binding, error)
	ListBindingsByProperty(ctx context.Context, propertyID string) ([]domain.Binding, error)

	// UpdateBindingTermination stores the status, the termination flags and
	// the termination time of b. It returns ErrConflict when the stored
	// binding has already been terminated.
	UpdateBindingTermination(ctx context.Context, b domain.Binding) error

	// DeleteBindingsByProperty removes a property's bindings, history
	// included, and returns how many went.
	DeleteBindingsByProperty(ctx context.Context, propertyID string) (int, error)
}
