package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/stretchr/testify/require"
)

// TestLettingScenario walks a landlord from sign-up to a bound tenant.
func TestLettingScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	// Landlord signs up and logs in.
	_, err := f.identity.RegisterLandlord(ctx, landlordForm("lana"))
	require.NoError(t, err)
	acc, err := f.identity.Authenticate(ctx, "lana@example.com", "correct horse")
	require.NoError(t, err)
	lana := access.Subject{AccountID: acc.ID, Role: acc.Role}

	// Lists a flat and sends a link.
	p, err := f.properties.Create(ctx, lana, domain.PropertyDetails{Name: "Flat 3", Address: "9 Elm Rd", UnitNumber: "3"})
	require.NoError(t, err)
	inv, err := f.invitations.Issue(ctx, lana, p.ID, "tess@example.com")
	require.NoError(t, err)

	// The tenant opens the link, sees the pre-filled email and registers.
	view, err := f.invitations.Validate(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationValid, view.Status(f.clock.Now()))

	reg := f.tenantForm("tess")
	reg.Email = view.InvitedEmail
	red, err := f.invitations.Accept(ctx, inv.Token, reg)
	require.NoError(t, err)

	// The tenant can log in and read its tenancy.
	acc, err = f.identity.Authenticate(ctx, "tess", "correct horse")
	require.NoError(t, err)
	require.Equal(t, red.Account.ID, acc.ID)
	tess := access.Subject{AccountID: acc.ID, Role: acc.Role}

	ten, err := f.tenancy.GetOwn(ctx, tess)
	require.NoError(t, err)
	require.Equal(t, p.ID, ten.Property.ID)
	require.True(t, ten.Property.Occupied)
	require.True(t, reg.MoveInDate.Equal(ten.Binding.MoveInDate))

	// The link is dead now.
	_, err = f.invitations.Accept(ctx, inv.Token, f.tenantForm("mallory"))
	require.ErrorIs(t, err, domain.ErrAlreadyUsed)

	// And the flat cannot be offered twice.
	_, err = f.invitations.Issue(ctx, lana, p.ID, "")
	require.ErrorIs(t, err, domain.ErrPropertyOccupied)
}
