package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/pkg/idx"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
)

// PropertyService manages properties on behalf of their landlord.
type PropertyService struct {
	Store store.Store
	Gate  *access.Gate
	Clock Clock
}

// Create registers a vacant property owned by the subject.
func (s *PropertyService) Create(ctx context.Context, sub access.Subject, d domain.PropertyDetails) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	if err := s.Gate.Authorize(ctx, sub, access.ActionCreate, access.Resource{Kind: access.KindProperty}); err != nil {
		return domain.Property{}, err
	}

	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return domain.Property{}, err
	}

	now := s.Clock.now()
	p := domain.Property{
		ID:         idx.NewAt(now).String(),
		LandlordID: sub.AccountID,
		Name:       d.Name,
		Address:    d.Address,
		UnitNumber: d.UnitNumber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Store.Properties().CreateProperty(ctx, p); err != nil {
		log.Error("failed to create property", slog.Any("error", err))
		return domain.Property{}, err
	}

	log.Info("property created", slog.String("property_id", p.ID))
	return p, nil
}

// Get reads a property the subject owns or is bound to.
func (s *PropertyService) Get(ctx context.Context, sub access.Subject, id string) (domain.Property, error) {
	if err := s.Gate.Authorize(ctx, sub, access.ActionRead, access.Property(id)); err != nil {
		return domain.Property{}, err
	}

	p, err := s.Store.Properties().GetPropertyByID(ctx, id)
	if err != nil {
		return domain.Property{}, notFound(err)
	}
	return p, nil
}

// ListOwn lists the subject's properties, newest first.
func (s *PropertyService) ListOwn(ctx context.Context, sub access.Subject) ([]domain.Property, error) {
	if err := s.Gate.Authorize(ctx, sub, access.ActionRead, access.OwnedBy(access.KindProperty, sub.AccountID)); err != nil {
		return nil, err
	}
	return s.Store.Properties().ListPropertiesByLandlord(ctx, sub.AccountID)
}

// Update replaces a property's descriptive fields. Occupancy is untouched.
func (s *PropertyService) Update(ctx context.Context, sub access.Subject, id string, d domain.PropertyDetails) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	if err := s.Gate.Authorize(ctx, sub, access.ActionModify, access.Property(id)); err != nil {
		return domain.Property{}, err
	}

	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return domain.Property{}, err
	}

	if err := s.Store.Properties().UpdatePropertyDetails(ctx, id, d, s.Clock.now()); err != nil {
		return domain.Property{}, notFound(err)
	}

	p, err := s.Store.Properties().GetPropertyByID(ctx, id)
	if err != nil {
		return domain.Property{}, notFound(err)
	}

	log.Info("property updated", slog.String("property_id", id))
	return p, nil
}

// Delete removes a property and, in the same transaction, its invitations,
// its bindings and the accounts of the tenants they bound.
func (s *PropertyService) Delete(ctx context.Context, sub access.Subject, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Gate.Authorize(ctx, sub, access.ActionDelete, access.Property(id)); err != nil {
		return err
	}

	var tenantIDs []string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Properties().GetPropertyByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		tenantIDs, err = deletePropertyCascade(ctx, tx, p)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error("failed to delete property", slog.String("property_id", id), slog.Any("error", err))
		}
		return err
	}

	log.Info("property deleted",
		slog.String("property_id", id),
		slog.Int("removed_tenants", len(tenantIDs)),
	)
	return nil
}
