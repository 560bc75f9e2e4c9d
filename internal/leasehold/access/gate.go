package access

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/metrics"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/pkg/cryptox"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
)

// Gate resolves resource ownership through the store and applies Decide.
type Gate struct {
	Store   store.Store
	Metrics *metrics.Metrics
}

// Authorize returns nil when s may perform a on r, domain.ErrNotFound when r
// does not exist and domain.ErrForbidden otherwise.
func (g *Gate) Authorize(ctx context.Context, s Subject, a Action, r Resource) error {
	log := slogx.FromContext(ctx)

	o, err := g.Resolve(ctx, r)
	if err != nil {
		return err
	}

	if !Decide(s, a, o) {
		log.Warn("access denied",
			slog.String("subject", s.AccountID),
			slog.String("role", s.Role.String()),
			slog.String("action", string(a)),
			slog.String("kind", string(r.Kind)),
			slog.String("resource", r.logID()))
		g.Metrics.IncAccessDenied(string(a))
		return domain.ErrForbidden
	}
	return nil
}

// Resolve loads the ownership facts of r.
func (g *Gate) Resolve(ctx context.Context, r Resource) (Ownership, error) {
	o := Ownership{Kind: r.Kind}
	if r.ID == "" {
		return g.resolveCollection(ctx, r)
	}

	switch r.Kind {
	case KindProperty:
		p, err := g.Store.Properties().GetPropertyByID(ctx, r.ID)
		if err != nil {
			return o, mapStoreErr(err)
		}
		o.LandlordID = p.LandlordID
		if p.Occupied {
			b, err := g.Store.Bindings().GetBindingByProperty(ctx, p.ID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return o, err
			}
			o.TenantID = b.TenantID
		}

	case KindInvitation:
		tok, err := cryptox.ParseInvitationToken(r.ID)
		if err != nil {
			return o, domain.ErrNotFound
		}
		inv, err := g.Store.Invitations().GetInvitationByToken(ctx, tok)
		if err != nil {
			return o, mapStoreErr(err)
		}
		o.LandlordID = inv.LandlordID

	case KindBinding:
		b, err := g.Store.Bindings().GetBindingByID(ctx, r.ID)
		if err != nil {
			return o, mapStoreErr(err)
		}
		o.LandlordID = b.LandlordID
		o.TenantID = b.TenantID

	case KindAccount:
		acc, err := g.Store.Accounts().GetAccountByID(ctx, r.ID)
		if err != nil {
			return o, mapStoreErr(err)
		}
		o.AccountID = acc.ID
		if acc.Role == domain.RoleTenant {
			b, err := g.Store.Bindings().GetBindingByTenant(ctx, acc.ID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return o, err
			}
			o.LandlordID = b.LandlordID
			o.TenantID = b.TenantID
		}

	default:
		return o, domain.ErrNotFound
	}

	return o, nil
}

// resolveCollection gives a scoped collection the ownership of its scope: the
// property it hangs off, or the landlord named as its holder.
func (g *Gate) resolveCollection(ctx context.Context, r Resource) (Ownership, error) {
	o := Ownership{Kind: r.Kind}
	switch {
	case r.InProperty != "":
		p, err := g.Store.Properties().GetPropertyByID(ctx, r.InProperty)
		if err != nil {
			return o, mapStoreErr(err)
		}
		o.LandlordID = p.LandlordID
	case r.OwnedBy != "":
		o.LandlordID = r.OwnedBy
	}
	return o, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.ErrNotFound
	}
	return err
}
