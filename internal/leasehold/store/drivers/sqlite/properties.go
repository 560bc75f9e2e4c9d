package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store/drivers/sqlite/gen"
)

type propertiesRepo struct {
	q *gen.Queries
}

func (r *propertiesRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	err := r.q.CreateProperty(ctx, gen.CreatePropertyParams{
		ID:         p.ID,
		LandlordID: p.LandlordID,
		Name:       p.Name,
		Address:    p.Address,
		UnitNumber: p.UnitNumber,
		CreatedAt:  ts(p.CreatedAt),
		UpdatedAt:  ts(p.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *propertiesRepo) GetPropertyByID(ctx context.Context, id string) (domain.Property, error) {
	row, err := r.q.GetPropertyByID(ctx, id)
	if err != nil {
		return domain.Property{}, mapNotFound(err)
	}
	return mapProperty(row), nil
}

func (r *propertiesRepo) ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	rows, err := r.q.ListPropertiesByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	props := make([]domain.Property, 0, len(rows))
	for _, row := range rows {
		props = append(props, mapProperty(row))
	}
	return props, nil
}

func (r *propertiesRepo) UpdatePropertyDetails(
	ctx context.Context,
	id string,
	d domain.PropertyDetails,
	at time.Time,
) error {
	n, err := r.q.UpdatePropertyDetails(ctx, gen.UpdatePropertyDetailsParams{
		Name:       d.Name,
		Address:    d.Address,
		UnitNumber: d.UnitNumber,
		UpdatedAt:  ts(at),
		ID:         id,
	})
	return requireRow(n, err, store.ErrNotFound)
}

func (r *propertiesRepo) MarkPropertyOccupied(ctx context.Context, id string, at time.Time) error {
	n, err := r.q.MarkPropertyOccupied(ctx, gen.MarkPropertyOccupiedParams{
		UpdatedAt: ts(at),
		ID:        id,
	})
	return requireRow(n, err, store.ErrConflict)
}

func (r *propertiesRepo) MarkPropertyVacant(ctx context.Context, id string, at time.Time) error {
	n, err := r.q.MarkPropertyVacant(ctx, gen.MarkPropertyVacantParams{
		UpdatedAt: ts(at),
		ID:        id,
	})
	return requireRow(n, err, store.ErrConflict)
}

func (r *propertiesRepo) DeleteProperty(ctx context.Context, id string) error {
	n, err := r.q.DeleteProperty(ctx, id)
	return requireRow(n, err, store.ErrNotFound)
}
