package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/pkg/cryptox"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first admin account. It is usable once, while
// no admin exists, and only with the operator's pre-configured token.
type BootstrapService struct {
	Store store.Store
	Token string
	Clock Clock
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	n, err := s.Store.Accounts().CountAccountsByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, reg domain.Registration) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	// 1. An empty configured token disables bootstrap entirely
	if s.Token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		l.Warn("unauthorized bootstrap attempt")
		return domain.Account{}, ErrBootstrapUnauthorized
	}

	// 2. Validate the admin form
	reg = reg.Normalize()
	reg.Gender = ""
	if err := reg.ValidateAdmin(); err != nil {
		return domain.Account{}, err
	}

	// 3. Hash password
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return domain.Account{}, err
	}

	now := s.Clock.now()
	acc := newAccount(reg, domain.RoleAdmin, hash, now)

	// 4. Re-check and create inside one write transaction
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Accounts().CountAccountsByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrBootstrapAlready
		}
		if err := checkAvailable(ctx, tx, reg.Username, reg.Email); err != nil {
			return err
		}
		return createAccount(ctx, tx, acc)
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			l.Warn("attempted bootstrap on already-bootstrapped system")
		} else if !errors.Is(err, domain.ErrValidation) {
			l.Error("failed to create admin", slog.Any("error", err))
		}
		return domain.Account{}, err
	}

	l.Info("system bootstrapped", slog.String("admin_id", acc.ID))
	return acc, nil
}
