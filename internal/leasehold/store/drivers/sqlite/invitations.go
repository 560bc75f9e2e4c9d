package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store/drivers/sqlite/gen"
)

type invitationsRepo struct {
	q *gen.Queries
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	err := r.q.CreateInvitation(ctx, gen.CreateInvitationParams{
		Token:        inv.Token,
		LandlordID:   inv.LandlordID,
		PropertyID:   inv.PropertyID,
		InvitedEmail: inv.InvitedEmail,
		CreatedAt:    ts(inv.CreatedAt),
		ExpiresAt:    ts(inv.ExpiresAt),
	})
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row, err := r.q.GetInvitationByToken(ctx, token)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) ListOutstandingInvitations(
	ctx context.Context,
	propertyID string,
) ([]domain.Invitation, error) {
	rows, err := r.q.ListOutstandingInvitations(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	invs := make([]domain.Invitation, 0, len(rows))
	for _, row := range rows {
		invs = append(invs, mapInvitation(row))
	}
	return invs, nil
}

func (r *invitationsRepo) MarkInvitationUsed(
	ctx context.Context,
	token string,
	tenantID string,
	at time.Time,
) error {
	n, err := r.q.MarkInvitationUsed(ctx, gen.MarkInvitationUsedParams{
		UsedAt: nullTime(at),
		UsedBy: sql.NullString{String: tenantID, Valid: tenantID != ""},
		Token:  token,
	})
	return requireRow(n, err, store.ErrConflict)
}

func (r *invitationsRepo) RevokeInvitation(ctx context.Context, token string, at time.Time) error {
	n, err := r.q.RevokeInvitation(ctx, gen.RevokeInvitationParams{
		UsedAt:    nullTime(at),
		RevokedAt: nullTime(at),
		Token:     token,
	})
	return requireRow(n, err, store.ErrConflict)
}

func (r *invitationsRepo) DeleteInvitationsByProperty(ctx context.Context, propertyID string) (int, error) {
	n, err := r.q.DeleteInvitationsByProperty(ctx, propertyID)
	return int(n), err
}

func (r *invitationsRepo) DeleteStaleInvitations(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.q.DeleteStaleInvitations(ctx, ts(cutoff))
	return int(n), err
}
