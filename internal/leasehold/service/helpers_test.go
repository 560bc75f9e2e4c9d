package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/metrics"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store/drivers/sqlite"
	"github.com/aussiebroadwan/leasehold/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// testClock is a settable clock shared by every service of a fixture.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fixture struct {
	store       *sqlite.Store
	clock       *testClock
	keys        *jwtx.KeyManager
	metrics     *metrics.Metrics
	identity    *IdentityService
	properties  *PropertyService
	invitations *InvitationService
	tenancy     *TenancyService
	bootstrap   *BootstrapService
}

// newFixture wires every service against a migrated sqlite file in a temp
// dir, so concurrent transactions behave as they do in production.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "leasehold.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "leasehold-test"})
	require.NoError(t, err)

	clock := &testClock{now: time.Now().UTC().Truncate(time.Second)}
	m := metrics.New(prometheus.NewRegistry())
	gate := &access.Gate{Store: st}
	sessions := &SessionService{KeyManager: km, Issuer: "leasehold-test", Clock: clock.Now}

	return &fixture{
		store:      st,
		clock:      clock,
		keys:       km,
		metrics:    m,
		identity:   &IdentityService{Store: st, Gate: gate, Clock: clock.Now},
		properties: &PropertyService{Store: st, Gate: gate, Clock: clock.Now},
		invitations: &InvitationService{
			Store:    st,
			Gate:     gate,
			Sessions: sessions,
			Metrics:  m,
			BaseURL:  "https://leasehold.test/",
			Clock:    clock.Now,
		},
		tenancy:   &TenancyService{Store: st, Gate: gate, Metrics: m, Clock: clock.Now},
		bootstrap: &BootstrapService{Store: st, Token: "operator-secret", Clock: clock.Now},
	}
}

func landlordForm(name string) domain.Registration {
	return domain.Registration{
		Username:        name,
		Email:           name + "@example.com",
		Password:        "correct horse",
		PasswordConfirm: "correct horse",
		FirstName:       "Lana",
		LastName:        "Lord",
		Gender:          domain.GenderFemale,
	}
}

func (f *fixture) tenantForm(name string) domain.Registration {
	reg := landlordForm(name)
	reg.FirstName = "Tess"
	reg.LastName = "Tenant"
	reg.MoveInDate = domain.Today(f.clock.Now()).AddDate(0, 0, 7)
	return reg
}

// landlord registers a landlord and returns its subject.
func (f *fixture) landlord(t *testing.T, name string) access.Subject {
	t.Helper()

	acc, err := f.identity.RegisterLandlord(context.Background(), landlordForm(name))
	require.NoError(t, err)
	return access.Subject{AccountID: acc.ID, Role: acc.Role}
}

// property creates a vacant property owned by owner.
func (f *fixture) property(t *testing.T, owner access.Subject) domain.Property {
	t.Helper()

	p, err := f.properties.Create(context.Background(), owner, domain.PropertyDetails{
		Name:    fmt.Sprintf("Flat of %s", owner.AccountID[:6]),
		Address: "1 Quay St",
	})
	require.NoError(t, err)
	return p
}

// issue mints an invitation for p as owner.
func (f *fixture) issue(t *testing.T, owner access.Subject, p domain.Property) domain.Invitation {
	t.Helper()

	inv, err := f.invitations.Issue(context.Background(), owner, p.ID, "")
	require.NoError(t, err)
	return inv
}

// accept redeems tok as a new tenant called name and returns its subject.
func (f *fixture) accept(t *testing.T, tok, name string) (access.Subject, Redemption) {
	t.Helper()

	red, err := f.invitations.Accept(context.Background(), tok, f.tenantForm(name))
	require.NoError(t, err)
	return access.Subject{AccountID: red.Account.ID, Role: domain.RoleTenant}, red
}
