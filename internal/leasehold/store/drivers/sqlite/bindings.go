package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store/drivers/sqlite/gen"
)

type bindingsRepo struct {
	q *gen.Queries
}

func (r *bindingsRepo) CreateBinding(ctx context.Context, b domain.Binding) error {
	status := b.Status
	if status == "" {
		status = domain.BindingActive
	}
	err := r.q.CreateBinding(ctx, gen.CreateBindingParams{
		ID:              b.ID,
		TenantID:        b.TenantID,
		LandlordID:      b.LandlordID,
		PropertyID:      b.PropertyID,
		MoveInDate:      b.MoveInDate.Format(domain.DateLayout),
		InvitationToken: b.InvitationToken,
		Status:          string(status),
		CreatedAt:       ts(b.CreatedAt),
	})
	return mapConstraint(err)
}

func (r *bindingsRepo) GetBindingByID(ctx context.Context, id string) (domain.Binding, error) {
	row, err := r.q.GetBindingByID(ctx, id)
	if err != nil {
		return domain.Binding{}, mapNotFound(err)
	}
	return mapBinding(row)
}

func (r *bindingsRepo) GetBindingByTenant(ctx context.Context, tenantID string) (domain.Binding, error) {
	row, err := r.q.GetBindingByTenant(ctx, tenantID)
	if err != nil {
		return domain.Binding{}, mapNotFound(err)
	}
	return mapBinding(row)
}

func (r *bindingsRepo) GetBindingByProperty(ctx context.Context, propertyID string) (domain.Binding, error) {
	row, err := r.q.GetCurrentBindingByProperty(ctx, propertyID)
	if err != nil {
		return domain.Binding{}, mapNotFound(err)
	}
	return mapBinding(row)
}

func (r *bindingsRepo) ListBindingsByLandlord(ctx context.Context, landlordID string, ended bool) ([]domain.Binding, error) {
	list := r.q.ListCurrentBindingsByLandlord
	if ended {
		list = r.q.ListEndedBindingsByLandlord
	}
	rows, err := list(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	return mapBindings(rows)
}

func (r *bindingsRepo) ListBindingsByProperty(ctx context.Context, propertyID string) ([]domain.Binding, error) {
	rows, err := r.q.ListBindingsByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return mapBindings(rows)
}

func (r *bindingsRepo) UpdateBindingTermination(ctx context.Context, b domain.Binding) error {
	var at sql.NullTime
	if b.TerminatedAt != nil {
		at = nullTime(*b.TerminatedAt)
	}
	n, err := r.q.UpdateBindingTermination(ctx, gen.UpdateBindingTerminationParams{
		Status:             string(b.Status),
		LandlordTerminated: b.LandlordTerminated,
		TenantTerminated:   b.TenantTerminated,
		TerminatedAt:       at,
		ID:                 b.ID,
	})
	return requireRow(n, err, store.ErrConflict)
}

func (r *bindingsRepo) DeleteBindingsByProperty(ctx context.Context, propertyID string) (int, error) {
	n, err := r.q.DeleteBindingsByProperty(ctx, propertyID)
	return int(n), err
}

func mapBindings(rows []gen.Binding) ([]domain.Binding, error) {
	out := make([]domain.Binding, 0, len(rows))
	for _, row := range rows {
		b, err := mapBinding(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
