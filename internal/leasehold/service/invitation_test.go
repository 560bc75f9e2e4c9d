package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/metrics"
	"github.com/aussiebroadwan/leasehold/pkg/idx"
	"github.com/aussiebroadwan/leasehold/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var reToken = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestIssue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	p := f.property(t, alice)

	t.Run("owner issues a week-long token", func(t *testing.T) {
		inv, err := f.invitations.Issue(ctx, alice, p.ID, " tess@example.com ")
		require.NoError(t, err)
		require.Regexp(t, reToken, inv.Token)
		require.Equal(t, p.ID, inv.PropertyID)
		require.Equal(t, alice.AccountID, inv.LandlordID)
		require.Equal(t, "tess@example.com", inv.InvitedEmail)
		require.Equal(t, 7*24*time.Hour, inv.ExpiresAt.Sub(inv.CreatedAt))
		require.Equal(t, "https://leasehold.test/invitations/"+inv.Token, f.invitations.Link(inv.Token))
	})

	t.Run("tokens are distinct", func(t *testing.T) {
		a := f.issue(t, alice, p)
		b := f.issue(t, alice, p)
		require.NotEqual(t, a.Token, b.Token)
	})

	t.Run("other landlord is forbidden", func(t *testing.T) {
		_, err := f.invitations.Issue(ctx, bob, p.ID, "")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing property", func(t *testing.T) {
		_, err := f.invitations.Issue(ctx, alice, "01HZZZZZZZZZZZZZZZZZZZZZZZ", "")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bad invited email", func(t *testing.T) {
		_, err := f.invitations.Issue(ctx, alice, p.ID, "not an email")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("occupied property gets no token", func(t *testing.T) {
		q := f.property(t, alice)
		inv := f.issue(t, alice, q)
		f.accept(t, inv.Token, "tenant-q")

		before, err := f.store.Invitations().ListOutstandingInvitations(ctx, q.ID)
		require.NoError(t, err)

		_, err = f.invitations.Issue(ctx, alice, q.ID, "")
		require.ErrorIs(t, err, domain.ErrPropertyOccupied)

		after, err := f.store.Invitations().ListOutstandingInvitations(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})

	require.GreaterOrEqual(t, testutil.ToFloat64(f.metrics.InvitationsIssued), 4.0)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	p := f.property(t, alice)
	inv := f.issue(t, alice, p)

	t.Run("repeated reads agree and change nothing", func(t *testing.T) {
		first, err := f.invitations.Validate(ctx, inv.Token)
		require.NoError(t, err)
		second, err := f.invitations.Validate(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.False(t, second.Used)
	})

	t.Run("uppercase token is the same token", func(t *testing.T) {
		got, err := f.invitations.Validate(ctx, strings.ToUpper(inv.Token))
		require.NoError(t, err)
		require.Equal(t, inv.Token, got.Token)
	})

	t.Run("malformed and unknown tokens are not found", func(t *testing.T) {
		for _, tok := range []string{"", "abc", "{" + inv.Token + "}", strings.ReplaceAll(inv.Token, "-", ""), "00000000-0000-0000-0000-000000000000"} {
			_, err := f.invitations.Validate(ctx, tok)
			require.ErrorIs(t, err, domain.ErrNotFound, tok)
		}
	})
}

func TestExpiryBoundary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	p := f.property(t, alice)

	issuedAt := f.clock.Now()
	inv := f.issue(t, alice, p)

	f.clock.Set(issuedAt.Add(7*24*time.Hour - time.Second))
	_, err := f.invitations.Validate(ctx, inv.Token)
	require.NoError(t, err, "valid at 6d23:59:59")

	f.clock.Set(issuedAt.Add(7 * 24 * time.Hour))
	_, err = f.invitations.Validate(ctx, inv.Token)
	require.ErrorIs(t, err, domain.ErrExpired, "expired at exactly 7d")

	f.clock.Set(issuedAt.Add(7*24*time.Hour + time.Second))
	_, err = f.invitations.Validate(ctx, inv.Token)
	require.ErrorIs(t, err, domain.ErrExpired, "expired at 7d00:00:01")

	_, err = f.invitations.Accept(ctx, inv.Token, f.tenantForm("late"))
	require.ErrorIs(t, err, domain.ErrExpired)

	got, err := f.store.Properties().GetPropertyByID(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, got.Occupied)
}

func TestAccept(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	p := f.property(t, alice)
	inv := f.issue(t, alice, p)

	t.Run("invalid form changes nothing", func(t *testing.T) {
		reg := f.tenantForm("tess")
		reg.PasswordConfirm = "something else"
		reg.MoveInDate = domain.Today(f.clock.Now()).AddDate(0, 0, -1)

		_, err := f.invitations.Accept(ctx, inv.Token, reg)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "password_confirm")
		require.Contains(t, verr.Fields, "move_in_date")

		_, err = f.invitations.Validate(ctx, inv.Token)
		require.NoError(t, err)
	})

	t.Run("taken username is a field error", func(t *testing.T) {
		reg := f.tenantForm("alice")
		reg.Email = "fresh@example.com"

		_, err := f.invitations.Accept(ctx, inv.Token, reg)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, msgTaken, verr.Fields["username"])

		_, err = f.store.Accounts().GetAccountByEmail(ctx, "fresh@example.com")
		require.Error(t, err)
	})

	var red Redemption
	t.Run("redemption binds the tenant", func(t *testing.T) {
		_, red = f.accept(t, inv.Token, "tess")

		require.Equal(t, domain.RoleTenant, red.Account.Role)
		require.Equal(t, p.ID, red.Binding.PropertyID)
		require.Equal(t, alice.AccountID, red.Binding.LandlordID)
		require.Equal(t, inv.Token, red.Binding.InvitationToken)

		got, err := f.store.Properties().GetPropertyByID(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, got.Occupied)

		used, err := f.store.Invitations().GetInvitationByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.True(t, used.Used)
		require.Equal(t, red.Account.ID, used.UsedBy)
		require.NotNil(t, used.UsedAt)

		b, err := f.store.Bindings().GetBindingByProperty(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, red.Binding.ID, b.ID)
	})

	t.Run("session verifies", func(t *testing.T) {
		require.Equal(t, "Bearer", red.Session.TokenType)
		claims, err := f.keys.Verifier.Verify(red.Session.AccessToken)
		require.NoError(t, err)
		require.Equal(t, red.Account.ID, claims.Subject)
		require.Equal(t, "tenant", claims.Role)
	})

	t.Run("second redemption is already used", func(t *testing.T) {
		_, err := f.invitations.Accept(ctx, inv.Token, f.tenantForm("copycat"))
		require.ErrorIs(t, err, domain.ErrAlreadyUsed)

		_, err = f.invitations.Validate(ctx, inv.Token)
		require.ErrorIs(t, err, domain.ErrAlreadyUsed)
	})

	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Redemptions.WithLabelValues(metrics.OutcomeAccepted)))
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Redemptions.WithLabelValues(metrics.OutcomeUsed)))
}

func TestAcceptConcurrentSameToken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	p := f.property(t, alice)
	inv := f.issue(t, alice, p)

	const racers = 8
	results := make([]error, racers)

	var g errgroup.Group
	for i := range racers {
		g.Go(func() error {
			reg := f.tenantForm("racer" + string(rune('a'+i)))
			_, results[i] = f.invitations.Accept(context.Background(), inv.Token, reg)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var won int
	for _, err := range results {
		if err == nil {
			won++
			continue
		}
		require.ErrorIs(t, err, domain.ErrAlreadyUsed)
	}
	require.Equal(t, 1, won)

	n, err := f.store.Accounts().CountAccountsByRole(context.Background(), domain.RoleTenant)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAcceptConcurrentSameProperty(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	p := f.property(t, alice)
	first := f.issue(t, alice, p)
	second := f.issue(t, alice, p)

	var g errgroup.Group
	errs := make([]error, 2)
	for i, tok := range []string{first.Token, second.Token} {
		g.Go(func() error {
			_, errs[i] = f.invitations.Accept(context.Background(), tok, f.tenantForm("tenant"+string(rune('a'+i))))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var won, occupied int
	var loser string
	for i, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrPropertyOccupied):
			occupied++
			loser = []string{first.Token, second.Token}[i]
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, 1, occupied)

	t.Run("occupancy is reported before form errors", func(t *testing.T) {
		reg := f.tenantForm("latecomer")
		reg.PasswordConfirm = "not the same"

		_, err := f.invitations.Accept(context.Background(), loser, reg)
		require.ErrorIs(t, err, domain.ErrPropertyOccupied)
		require.NotErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAcceptKeepsRedemptionWhenSigningFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	p := f.property(t, alice)
	inv := f.issue(t, alice, p)

	f.invitations.Sessions = &SessionService{KeyManager: &jwtx.KeyManager{}, Clock: f.clock.Now}

	red, err := f.invitations.Accept(ctx, inv.Token, f.tenantForm("tess"))
	require.NoError(t, err)
	require.Empty(t, red.Session.AccessToken)
	require.Equal(t, p.ID, red.Binding.PropertyID)

	got, err := f.store.Properties().GetPropertyByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.Occupied)

	// The tenant signs in with the password just chosen.
	acc, err := f.identity.Authenticate(ctx, "tess", "correct horse")
	require.NoError(t, err)
	require.Equal(t, red.Account.ID, acc.ID)

	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Redemptions.WithLabelValues(metrics.OutcomeAccepted)))
}

func TestRevoke(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	p := f.property(t, alice)
	inv := f.issue(t, alice, p)

	require.ErrorIs(t, f.invitations.Revoke(ctx, bob, inv.Token), domain.ErrForbidden)
	require.ErrorIs(t, f.invitations.Revoke(ctx, alice, "nope"), domain.ErrNotFound)

	require.NoError(t, f.invitations.Revoke(ctx, alice, inv.Token))
	require.ErrorIs(t, f.invitations.Revoke(ctx, alice, inv.Token), domain.ErrAlreadyUsed)

	_, err := f.invitations.Validate(ctx, inv.Token)
	require.ErrorIs(t, err, domain.ErrAlreadyUsed)

	_, err = f.invitations.Accept(ctx, inv.Token, f.tenantForm("tess"))
	require.ErrorIs(t, err, domain.ErrAlreadyUsed)

	got, err := f.store.Invitations().GetInvitationByToken(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationRevoked, got.Status(f.clock.Now()))
}

func TestListForProperty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	alice := f.landlord(t, "alice")
	bob := f.landlord(t, "bob")
	p := f.property(t, alice)

	open := f.issue(t, alice, p)
	revoked := f.issue(t, alice, p)
	require.NoError(t, f.invitations.Revoke(ctx, alice, revoked.Token))

	list, err := f.invitations.ListForProperty(ctx, alice, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, open.Token, list[0].Token)

	_, err = f.invitations.ListForProperty(ctx, bob, p.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.invitations.ListForProperty(ctx, alice, idx.New().String())
	require.ErrorIs(t, err, domain.ErrNotFound)

	tess, _ := f.accept(t, open.Token, "tess")
	_, err = f.invitations.ListForProperty(ctx, tess, p.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	admin := access.Subject{AccountID: "admin", Role: domain.RoleAdmin}
	list, err = f.invitations.ListForProperty(ctx, admin, p.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}
