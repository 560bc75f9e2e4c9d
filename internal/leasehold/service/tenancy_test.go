package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/metrics"
	"github.com/aussiebroadwan/leasehold/pkg/idx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestTenantIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	pa := f.property(t, alice)
	pb := f.property(t, bob)

	tessA, redA := f.accept(t, f.issue(t, alice, pa).Token, "tess")
	tessB, redB := f.accept(t, f.issue(t, bob, pb).Token, "tom")

	own, err := f.tenancy.GetOwn(ctx, tessA)
	require.NoError(t, err)
	require.Equal(t, redA.Binding.ID, own.Binding.ID)
	require.Equal(t, pa.ID, own.Property.ID)
	require.Equal(t, "tess", own.Tenant.Username)

	own, err = f.tenancy.GetOwn(ctx, tessB)
	require.NoError(t, err)
	require.Equal(t, redB.Binding.ID, own.Binding.ID)

	_, err = f.tenancy.GetForProperty(ctx, tessA, pb.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.properties.Get(ctx, tessA, pb.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.tenancy.GetForProperty(ctx, alice, pb.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	got, err := f.tenancy.GetForProperty(ctx, alice, pa.ID)
	require.NoError(t, err)
	require.Equal(t, tessA.AccountID, got.Tenant.ID)

	_, err = f.tenancy.GetOwn(ctx, alice)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveTenant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	p := f.property(t, alice)
	inv := f.issue(t, alice, p)
	tess, red := f.accept(t, inv.Token, "tess")

	require.ErrorIs(t, f.tenancy.RemoveTenant(ctx, bob, p.ID), domain.ErrForbidden)
	require.ErrorIs(t, f.tenancy.RemoveTenant(ctx, tess, p.ID), domain.ErrForbidden)

	require.NoError(t, f.tenancy.RemoveTenant(ctx, alice, p.ID))

	got, err := f.store.Properties().GetPropertyByID(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, got.Occupied)

	// The ended tenancy stays on record for both parties.
	ended, err := f.store.Bindings().GetBindingByID(ctx, red.Binding.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BindingTerminated, ended.Status)
	require.True(t, ended.LandlordTerminated)
	require.False(t, ended.TenantTerminated)
	require.NotNil(t, ended.TerminatedAt)

	own, err := f.tenancy.GetOwn(ctx, tess)
	require.NoError(t, err)
	require.Equal(t, domain.BindingTerminated, own.Binding.Status)

	_, err = f.properties.Get(ctx, tess, p.ID)
	require.ErrorIs(t, err, domain.ErrForbidden, "a former tenant loses the property")

	used, err := f.store.Invitations().GetInvitationByToken(ctx, inv.Token)
	require.NoError(t, err)
	require.True(t, used.Used)
	require.Equal(t, tess.AccountID, used.UsedBy)

	require.ErrorIs(t, f.tenancy.RemoveTenant(ctx, alice, p.ID), domain.ErrNotFound)
	_, err = f.tenancy.GetForProperty(ctx, alice, p.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// A vacant property can be let again.
	f.accept(t, f.issue(t, alice, p).Token, "tom")
}

func TestTerminateByAgreement(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	p := f.property(t, alice)
	tess, red := f.accept(t, f.issue(t, alice, p).Token, "tess")
	id := red.Binding.ID

	_, err := f.tenancy.Terminate(ctx, bob, id)
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.tenancy.Terminate(ctx, alice, idx.New().String())
	require.ErrorIs(t, err, domain.ErrNotFound)

	t.Run("tenant asks first", func(t *testing.T) {
		got, err := f.tenancy.Terminate(ctx, tess, id)
		require.NoError(t, err)
		require.Equal(t, domain.BindingPendingTermination, got.Binding.Status)
		require.True(t, got.Binding.TenantTerminated)

		again, err := f.tenancy.Terminate(ctx, tess, id)
		require.NoError(t, err)
		require.Equal(t, domain.BindingPendingTermination, again.Binding.Status)

		prop, err := f.store.Properties().GetPropertyByID(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, prop.Occupied, "one party alone does not end it")
	})

	t.Run("landlord confirms", func(t *testing.T) {
		got, err := f.tenancy.Terminate(ctx, alice, id)
		require.NoError(t, err)
		require.Equal(t, domain.BindingTerminated, got.Binding.Status)
		require.NotNil(t, got.Binding.TerminatedAt)
		require.False(t, got.Property.Occupied)

		_, err = f.tenancy.Terminate(ctx, alice, id)
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.TenanciesEnded.WithLabelValues(metrics.EndedByAgreement)))

	// The property takes a new tenant while the old binding stays.
	f.accept(t, f.issue(t, alice, p).Token, "tom")
	history, err := f.store.Bindings().ListBindingsByProperty(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestAdminTerminatesOutright(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	p := f.property(t, alice)
	_, red := f.accept(t, f.issue(t, alice, p).Token, "tess")

	admin := access.Subject{AccountID: "admin", Role: domain.RoleAdmin}
	got, err := f.tenancy.Terminate(ctx, admin, red.Binding.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BindingTerminated, got.Binding.Status)
	require.False(t, got.Binding.LandlordTerminated)
	require.False(t, got.Binding.TenantTerminated)
}

func TestListForLandlord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	home := f.property(t, alice)
	flat := f.property(t, alice)
	other := f.property(t, bob)

	tess, _ := f.accept(t, f.issue(t, alice, home).Token, "tess")
	f.accept(t, f.issue(t, alice, flat).Token, "tom")
	f.accept(t, f.issue(t, bob, other).Token, "tia")
	require.NoError(t, f.tenancy.RemoveTenant(ctx, alice, flat.ID))

	current, err := f.tenancy.ListForLandlord(ctx, alice, false)
	require.NoError(t, err)
	require.Len(t, current, 1)
	require.Equal(t, home.ID, current[0].Property.ID)
	require.Equal(t, "tess", current[0].Tenant.Username)

	past, err := f.tenancy.ListForLandlord(ctx, alice, true)
	require.NoError(t, err)
	require.Len(t, past, 1)
	require.Equal(t, flat.ID, past[0].Property.ID)
	require.Equal(t, "tom", past[0].Tenant.Username)

	_, err = f.tenancy.ListForLandlord(ctx, tess, false)
	require.ErrorIs(t, err, domain.ErrForbidden)
}
