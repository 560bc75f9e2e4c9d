// Package service implements the leasehold use cases on top of the store.
// Every gated operation takes an explicit access.Subject.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("leasehold/service")

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time

// now returns the clock reading normalised to stored precision, whole
// seconds in UTC.
func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC().Truncate(time.Second)
	}
	return c().UTC().Truncate(time.Second)
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// notFound maps store.ErrNotFound to domain.ErrNotFound and passes anything
// else through.
func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// deletePropertyCascade removes a property together with everything it owns,
// in foreign key order: its bindings past and present, the invitations, the
// accounts of every tenant it ever had, then the property row.
func deletePropertyCascade(ctx context.Context, tx store.Tx, p domain.Property) (tenantIDs []string, err error) {
	bindings, err := tx.Bindings().ListBindingsByProperty(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	for _, b := range bindings {
		tenantIDs = append(tenantIDs, b.TenantID)
	}
	if _, err := tx.Bindings().DeleteBindingsByProperty(ctx, p.ID); err != nil {
		return nil, err
	}

	if _, err := tx.Invitations().DeleteInvitationsByProperty(ctx, p.ID); err != nil {
		return nil, err
	}

	for _, id := range tenantIDs {
		if err := tx.Accounts().DeleteAccount(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	if err := tx.Properties().DeleteProperty(ctx, p.ID); err != nil {
		return nil, notFound(err)
	}
	return tenantIDs, nil
}
