package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/stretchr/testify/require"
)

func TestRegisterLandlord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	reg := landlordForm("alice")
	reg.Username = "  alice "
	acc, err := f.identity.RegisterLandlord(ctx, reg)
	require.NoError(t, err)
	require.Equal(t, "alice", acc.Username)
	require.Equal(t, domain.RoleLandlord, acc.Role)
	require.NotEqual(t, "correct horse", acc.PasswordHash)

	t.Run("duplicate username and email", func(t *testing.T) {
		reg := landlordForm("alice")
		reg.Email = "ALICE@example.com"
		_, err := f.identity.RegisterLandlord(ctx, reg)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, msgTaken, verr.Fields["username"])
		require.Equal(t, msgTaken, verr.Fields["email"])
	})

	t.Run("gender is required for landlords", func(t *testing.T) {
		reg := landlordForm("bob")
		reg.Gender = ""
		_, err := f.identity.RegisterLandlord(ctx, reg)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")

	tests := []struct {
		name     string
		login    string
		password string
		wantErr  error
	}{
		{"username", "alice", "correct horse", nil},
		{"email any case", "Alice@Example.com", "correct horse", nil},
		{"wrong password", "alice", "battery staple", domain.ErrInvalidLogin},
		{"unknown account", "nobody", "correct horse", domain.ErrInvalidLogin},
		{"unknown email", "nobody@example.com", "correct horse", domain.ErrInvalidLogin},
		{"empty", "", "", domain.ErrInvalidLogin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			acc, err := f.identity.Authenticate(ctx, tc.login, tc.password)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, alice.AccountID, acc.ID)
		})
	}
}

func TestGetAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	p := f.property(t, alice)
	tess, _ := f.accept(t, f.issue(t, alice, p).Token, "tess")

	_, err := f.identity.GetAccount(ctx, alice, tess.AccountID)
	require.NoError(t, err)

	_, err = f.identity.GetAccount(ctx, tess, tess.AccountID)
	require.NoError(t, err)

	_, err = f.identity.GetAccount(ctx, bob, tess.AccountID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.identity.GetAccount(ctx, tess, alice.AccountID)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBootstrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	reg := landlordForm("root")

	done, err := f.bootstrap.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.False(t, done)

	_, err = f.bootstrap.Bootstrap(ctx, "guess", reg)
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)

	admin, err := f.bootstrap.Bootstrap(ctx, "operator-secret", reg)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.Role)
	require.Empty(t, admin.Gender)

	reg.Username = "root2"
	reg.Email = "root2@example.com"
	_, err = f.bootstrap.Bootstrap(ctx, "operator-secret", reg)
	require.ErrorIs(t, err, ErrBootstrapAlready)

	disabled := &BootstrapService{Store: f.store}
	_, err = disabled.Bootstrap(ctx, "", reg)
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)
}

func TestDeleteLandlordCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	occupied := f.property(t, alice)
	vacant := f.property(t, alice)
	tess, _ := f.accept(t, f.issue(t, alice, occupied).Token, "tess")
	pending := f.issue(t, alice, vacant)

	admin := access.Subject{AccountID: "root", Role: domain.RoleAdmin}

	require.ErrorIs(t, f.identity.DeleteLandlord(ctx, bob, alice.AccountID), domain.ErrForbidden)
	require.ErrorIs(t, f.identity.DeleteLandlord(ctx, alice, alice.AccountID), domain.ErrForbidden)
	require.ErrorIs(t, f.identity.DeleteLandlord(ctx, admin, tess.AccountID), domain.ErrValidation)

	require.NoError(t, f.identity.DeleteLandlord(ctx, admin, alice.AccountID))

	_, err := f.store.Accounts().GetAccountByID(ctx, alice.AccountID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = f.store.Accounts().GetAccountByID(ctx, tess.AccountID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = f.store.Properties().GetPropertyByID(ctx, occupied.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = f.store.Invitations().GetInvitationByToken(ctx, pending.Token)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.store.Accounts().GetAccountByID(ctx, bob.AccountID)
	require.NoError(t, err)

	require.ErrorIs(t, f.identity.DeleteLandlord(ctx, admin, alice.AccountID), domain.ErrNotFound)
}
