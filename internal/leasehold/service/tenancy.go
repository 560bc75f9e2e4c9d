package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/metrics"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
)

// TenancyService reads tenant bindings and ends them. Ended bindings are
// kept, so a landlord's past tenancies stay on record.
type TenancyService struct {
	Store   store.Store
	Gate    *access.Gate
	Metrics *metrics.Metrics
	Clock   Clock
}

// GetOwn returns the subject's own tenancy, ended or not. Only tenants have
// one.
func (s *TenancyService) GetOwn(ctx context.Context, sub access.Subject) (domain.Tenancy, error) {
	if sub.Role != domain.RoleTenant {
		return domain.Tenancy{}, domain.ErrNotFound
	}

	b, err := s.Store.Bindings().GetBindingByTenant(ctx, sub.AccountID)
	if err != nil {
		return domain.Tenancy{}, notFound(err)
	}
	if err := s.Gate.Authorize(ctx, sub, access.ActionRead, access.Binding(b.ID)); err != nil {
		return domain.Tenancy{}, err
	}
	return s.load(ctx, s.Store, b)
}

// GetForProperty returns the current tenancy on a property, ErrNotFound when
// vacant.
func (s *TenancyService) GetForProperty(ctx context.Context, sub access.Subject, propertyID string) (domain.Tenancy, error) {
	if err := s.Gate.Authorize(ctx, sub, access.ActionRead, access.Property(propertyID)); err != nil {
		return domain.Tenancy{}, err
	}

	b, err := s.Store.Bindings().GetBindingByProperty(ctx, propertyID)
	if err != nil {
		return domain.Tenancy{}, notFound(err)
	}
	if err := s.Gate.Authorize(ctx, sub, access.ActionRead, access.Binding(b.ID)); err != nil {
		return domain.Tenancy{}, err
	}
	return s.load(ctx, s.Store, b)
}

// ListForLandlord lists the subject's current tenancies, newest first, or
// the ended ones, most recently ended first.
func (s *TenancyService) ListForLandlord(ctx context.Context, sub access.Subject, ended bool) ([]domain.Tenancy, error) {
	if err := s.Gate.Authorize(ctx, sub, access.ActionRead, access.OwnedBy(access.KindBinding, sub.AccountID)); err != nil {
		return nil, err
	}

	bindings, err := s.Store.Bindings().ListBindingsByLandlord(ctx, sub.AccountID, ended)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Tenancy, 0, len(bindings))
	for _, b := range bindings {
		t, err := s.load(ctx, s.Store, b)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TenancyService) load(ctx context.Context, st store.Store, b domain.Binding) (domain.Tenancy, error) {
	tenant, err := st.Accounts().GetAccountByID(ctx, b.TenantID)
	if err != nil {
		return domain.Tenancy{}, notFound(err)
	}
	p, err := st.Properties().GetPropertyByID(ctx, b.PropertyID)
	if err != nil {
		return domain.Tenancy{}, notFound(err)
	}
	return domain.Tenancy{Binding: b, Tenant: tenant, Property: p}, nil
}

// Terminate records the subject's request to end a tenancy. The landlord and
// the tenant each ask once; when both have, the binding is terminated and
// the property becomes vacant in the same transaction. An admin ends the
// tenancy outright. Terminating an ended tenancy is ErrConflict.
func (s *TenancyService) Terminate(ctx context.Context, sub access.Subject, bindingID string) (domain.Tenancy, error) {
	ctx = slogx.With(ctx, "binding_id", bindingID)
	log := slogx.FromContext(ctx)

	if err := s.Gate.Authorize(ctx, sub, access.ActionTerminate, access.Binding(bindingID)); err != nil {
		return domain.Tenancy{}, err
	}

	now := s.Clock.now()
	var t domain.Tenancy
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		b, err := tx.Bindings().GetBindingByID(ctx, bindingID)
		if err != nil {
			return notFound(err)
		}

		switch sub.AccountID {
		case b.LandlordID:
			b, err = b.RequestTermination(domain.PartyLandlord, now)
		case b.TenantID:
			b, err = b.RequestTermination(domain.PartyTenant, now)
		default:
			b, err = b.Terminate(now)
		}
		if err != nil {
			return err
		}

		if err := s.endBinding(ctx, tx, b, now); err != nil {
			return err
		}
		t, err = s.load(ctx, tx, b)
		return err
	})
	if err != nil {
		if !isRejection(err) && !errors.Is(err, domain.ErrConflict) {
			log.Error("failed to terminate tenancy", slog.Any("error", err))
		}
		return domain.Tenancy{}, err
	}

	if t.Binding.Status.Current() {
		log.Info("tenancy termination requested", slog.String("status", string(t.Binding.Status)))
		return t, nil
	}
	s.Metrics.IncTenancyEnded(metrics.EndedByAgreement)
	log.Info("tenancy terminated",
		slog.String("property_id", t.Binding.PropertyID),
		slog.String("tenant_id", t.Binding.TenantID),
	)
	return t, nil
}

// RemoveTenant ends the current tenancy on a property at once, without
// waiting for the tenant, and frees the property. The binding is kept as an
// ended tenancy together with the consumed invitation.
func (s *TenancyService) RemoveTenant(ctx context.Context, sub access.Subject, propertyID string) error {
	log := slogx.FromContext(ctx)

	if err := s.Gate.Authorize(ctx, sub, access.ActionRemoveTenant, access.Property(propertyID)); err != nil {
		return err
	}

	now := s.Clock.now()
	var tenantID string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		b, err := tx.Bindings().GetBindingByProperty(ctx, propertyID)
		if err != nil {
			return notFound(err)
		}
		tenantID = b.TenantID

		b.LandlordTerminated = true
		if b, err = b.Terminate(now); err != nil {
			return err
		}
		return s.endBinding(ctx, tx, b, now)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error("failed to remove tenant", slog.String("property_id", propertyID), slog.Any("error", err))
		}
		return err
	}

	s.Metrics.IncTenancyEnded(metrics.EndedByRemoval)
	log.Info("tenant removed",
		slog.String("property_id", propertyID),
		slog.String("tenant_id", tenantID),
	)
	return nil
}

// endBinding stores b's termination state and, once b is terminated, marks
// its property vacant.
func (s *TenancyService) endBinding(ctx context.Context, tx store.Tx, b domain.Binding, now time.Time) error {
	if err := tx.Bindings().UpdateBindingTermination(ctx, b); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return domain.ErrConflict
		}
		return err
	}
	if b.Status.Current() {
		return nil
	}
	if err := tx.Properties().MarkPropertyVacant(ctx, b.PropertyID, now); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}
