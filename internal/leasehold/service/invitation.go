package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/metrics"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/pkg/cryptox"
	"github.com/aussiebroadwan/leasehold/pkg/idx"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Redemption is the outcome of a successful Accept.
type Redemption struct {
	Account domain.Account
	Binding domain.Binding
	Session Session
}

// InvitationService issues, checks, revokes and redeems invitation tokens.
type InvitationService struct {
	Store    store.Store
	Gate     *access.Gate
	Sessions *SessionService
	Metrics  *metrics.Metrics

	// BaseURL prefixes invitation links, e.g. https://leasehold.example.
	BaseURL string

	// TTL defaults to domain.DefaultInvitationTTL.
	TTL   time.Duration
	Clock Clock
}

// Link renders the shareable URL for a token.
func (s *InvitationService) Link(token string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/invitations/" + token
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL <= 0 {
		return domain.DefaultInvitationTTL
	}
	return s.TTL
}

// Issue mints a token for a vacant property the subject may invite to.
func (s *InvitationService) Issue(
	ctx context.Context,
	sub access.Subject,
	propertyID string,
	invitedEmail string,
) (inv domain.Invitation, err error) {
	ctx, span := tracer.Start(ctx, "invitation.issue",
		trace.WithAttributes(attribute.String("property.id", propertyID)))
	defer func() { endSpan(span, err) }()

	log := slogx.FromContext(ctx)

	// 1. Ownership
	if err := s.Gate.Authorize(ctx, sub, access.ActionInvite, access.Property(propertyID)); err != nil {
		return domain.Invitation{}, err
	}

	// 2. Optional invited email
	email, err := domain.NormalizeInvitedEmail(invitedEmail)
	if err != nil {
		return domain.Invitation{}, err
	}

	// 3. Generate random token
	token, err := cryptox.NewInvitationToken()
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	now := s.Clock.now()
	inv = domain.Invitation{
		Token:        token,
		PropertyID:   propertyID,
		InvitedEmail: email,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl()),
	}

	// 4. Vacancy check and insert share a write transaction so a concurrent
	// redemption cannot occupy the property in between.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Properties().GetPropertyByID(ctx, propertyID)
		if err != nil {
			return notFound(err)
		}
		if p.Occupied {
			return domain.ErrPropertyOccupied
		}
		inv.LandlordID = p.LandlordID
		return tx.Invitations().CreateInvitation(ctx, inv)
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyOccupied):
			log.Warn("invitation refused for occupied property", slog.String("property_id", propertyID))
		case errors.Is(err, domain.ErrNotFound):
		default:
			log.Error("failed to create invitation",
				slog.String("property_id", propertyID),
				slog.Any("error", err),
			)
		}
		return domain.Invitation{}, err
	}

	s.Metrics.IncInvitationIssued()
	log.Info("invitation issued",
		slog.String("property_id", propertyID),
		slog.String("issued_by", sub.AccountID),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return inv, nil
}

// Validate reports whether a token can be redeemed right now, without
// changing anything. Malformed tokens are reported as not found.
func (s *InvitationService) Validate(ctx context.Context, rawToken string) (domain.Invitation, error) {
	return s.validate(ctx, s.Store, rawToken, s.Clock.now())
}

func (s *InvitationService) validate(
	ctx context.Context,
	st store.Store,
	rawToken string,
	now time.Time,
) (domain.Invitation, error) {
	token, err := cryptox.ParseInvitationToken(rawToken)
	if err != nil {
		return domain.Invitation{}, domain.ErrNotFound
	}

	inv, err := st.Invitations().GetInvitationByToken(ctx, token)
	if err != nil {
		return domain.Invitation{}, notFound(err)
	}

	if err := inv.Check(now); err != nil {
		return domain.Invitation{}, err
	}
	return inv, nil
}

// ListForProperty lists the unused invitations of a property, newest first.
// Expired ones are included; Status tells them apart.
func (s *InvitationService) ListForProperty(
	ctx context.Context,
	sub access.Subject,
	propertyID string,
) ([]domain.Invitation, error) {
	if err := s.Gate.Authorize(ctx, sub, access.ActionRead, access.PropertyInvitations(propertyID)); err != nil {
		return nil, err
	}
	return s.Store.Invitations().ListOutstandingInvitations(ctx, propertyID)
}

// Revoke cancels an unused invitation. The row is kept, marked used and
// revoked, so the token can never be redeemed.
func (s *InvitationService) Revoke(ctx context.Context, sub access.Subject, rawToken string) (err error) {
	ctx, span := tracer.Start(ctx, "invitation.revoke")
	defer func() { endSpan(span, err) }()

	log := slogx.FromContext(ctx)

	token, err := cryptox.ParseInvitationToken(rawToken)
	if err != nil {
		return domain.ErrNotFound
	}

	if err := s.Gate.Authorize(ctx, sub, access.ActionModify, access.Invitation(token)); err != nil {
		return err
	}

	if err := s.Store.Invitations().RevokeInvitation(ctx, token, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return domain.ErrAlreadyUsed
		}
		log.Error("failed to revoke invitation", slog.Any("error", err))
		return err
	}

	s.Metrics.IncInvitationRevoked()
	log.Info("invitation revoked", slog.String("revoked_by", sub.AccountID))
	return nil
}

// Accept redeems a token: it creates the tenant account, binds it to the
// invitation's property, marks the property occupied and consumes the token
// in one transaction, then signs a session for the new tenant.
func (s *InvitationService) Accept(
	ctx context.Context,
	rawToken string,
	reg domain.Registration,
) (red Redemption, err error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "invitation.accept")
	defer func() {
		s.Metrics.ObserveRedemption(redemptionOutcome(err), start)
		endSpan(span, err)
	}()

	log := slogx.FromContext(ctx)
	now := s.Clock.now()

	// 1. Cheap pre-checks so a dead link never costs a password hash. The
	// link is judged before the form: token, then occupancy.
	pre, err := s.validate(ctx, s.Store, rawToken, now)
	if err == nil {
		err = s.checkVacant(ctx, s.Store, pre.PropertyID)
	}
	if err != nil {
		log.Warn("redemption rejected", slog.Any("error", err))
		return Redemption{}, err
	}
	token := pre.Token

	// 2. Form validation before any write transaction
	reg = reg.Normalize()
	if err := reg.ValidateTenant(now); err != nil {
		log.Warn("redemption form rejected", slog.Any("error", err))
		return Redemption{}, err
	}

	// 3. Hash outside the transaction
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Redemption{}, err
	}

	acc := newAccount(reg, domain.RoleTenant, hash, now)
	binding := domain.Binding{
		ID:              idx.NewAt(now).String(),
		TenantID:        acc.ID,
		MoveInDate:      reg.MoveInDate,
		InvitationToken: token,
		Status:          domain.BindingActive,
		CreatedAt:       now,
	}

	// 4. Everything that changes state commits together
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := s.validate(ctx, tx, token, now)
		if err != nil {
			return err
		}

		p, err := tx.Properties().GetPropertyByID(ctx, inv.PropertyID)
		if err != nil {
			return notFound(err)
		}
		if p.Occupied {
			return domain.ErrPropertyOccupied
		}

		if err := checkAvailable(ctx, tx, reg.Username, reg.Email); err != nil {
			return err
		}
		if err := createAccount(ctx, tx, acc); err != nil {
			return err
		}

		binding.LandlordID = p.LandlordID
		binding.PropertyID = p.ID
		if err := tx.Bindings().CreateBinding(ctx, binding); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.ErrPropertyOccupied
			}
			return err
		}

		if err := tx.Properties().MarkPropertyOccupied(ctx, p.ID, now); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return domain.ErrPropertyOccupied
			}
			return err
		}

		if err := tx.Invitations().MarkInvitationUsed(ctx, token, acc.ID, now); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return domain.ErrAlreadyUsed
			}
			return err
		}
		return nil
	})
	if err != nil {
		if isRejection(err) {
			log.Warn("redemption rejected", slog.Any("error", err))
		} else {
			log.Error("redemption failed", slog.Any("error", err))
		}
		return Redemption{}, err
	}

	log.Info("invitation redeemed",
		slog.String("tenant_id", acc.ID),
		slog.String("property_id", binding.PropertyID),
		slog.String("move_in_date", binding.MoveInDate.Format(domain.DateLayout)),
	)

	red = Redemption{Account: acc, Binding: binding}

	// 5. Sign in the new tenant. The tenancy is already committed, so a
	// signing failure leaves the session empty and the tenant logs in.
	sess, serr := s.Sessions.Issue(ctx, acc)
	if serr != nil {
		log.Error("failed to sign session after redemption",
			slog.String("tenant_id", acc.ID), slog.Any("error", serr))
		return red, nil
	}
	red.Session = sess
	return red, nil
}

// checkVacant returns ErrPropertyOccupied when the property already has a
// tenant.
func (s *InvitationService) checkVacant(ctx context.Context, r store.Store, propertyID string) error {
	p, err := r.Properties().GetPropertyByID(ctx, propertyID)
	if err != nil {
		return notFound(err)
	}
	if p.Occupied {
		return domain.ErrPropertyOccupied
	}
	return nil
}

// isRejection reports errors that are expected outcomes rather than faults.
func isRejection(err error) bool {
	for _, target := range []error{
		domain.ErrNotFound,
		domain.ErrExpired,
		domain.ErrAlreadyUsed,
		domain.ErrPropertyOccupied,
		domain.ErrForbidden,
		domain.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func redemptionOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAccepted
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrExpired):
		return metrics.OutcomeExpired
	case errors.Is(err, domain.ErrAlreadyUsed):
		return metrics.OutcomeUsed
	case errors.Is(err, domain.ErrPropertyOccupied):
		return metrics.OutcomeOccupied
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeErrored
	}
}
