package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/pkg/cryptox"
	"github.com/aussiebroadwan/leasehold/pkg/idx"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
)

const msgTaken = "already taken"

// IdentityService owns landlord sign-up, login and account reads.
type IdentityService struct {
	Store store.Store
	Gate  *access.Gate
	Clock Clock
}

// RegisterLandlord creates a landlord account from a sign-up form.
func (s *IdentityService) RegisterLandlord(ctx context.Context, reg domain.Registration) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the form
	reg = reg.Normalize()
	if err := reg.ValidateLandlord(); err != nil {
		log.Warn("landlord registration rejected", slog.Any("error", err))
		return domain.Account{}, err
	}

	// 2. Hash outside the transaction
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	now := s.Clock.now()
	acc := newAccount(reg, domain.RoleLandlord, hash, now)

	// 3. Check availability and insert together
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := checkAvailable(ctx, tx, reg.Username, reg.Email); err != nil {
			return err
		}
		return createAccount(ctx, tx, acc)
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			log.Warn("landlord registration rejected", slog.Any("error", err))
		} else {
			log.Error("failed to create landlord", slog.Any("error", err))
		}
		return domain.Account{}, err
	}

	log.Info("landlord registered", slog.String("account_id", acc.ID))
	return acc, nil
}

// Authenticate verifies a username or email with its password. Every
// failure reports domain.ErrInvalidLogin so callers cannot probe which
// accounts exist.
func (s *IdentityService) Authenticate(ctx context.Context, login, password string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return domain.Account{}, domain.ErrInvalidLogin
	}

	var (
		acc domain.Account
		err error
	)
	if strings.Contains(login, "@") {
		acc, err = s.Store.Accounts().GetAccountByEmail(ctx, login)
		if errors.Is(err, store.ErrNotFound) {
			// Usernames may contain @ too.
			acc, err = s.Store.Accounts().GetAccountByUsername(ctx, login)
		}
	} else {
		acc, err = s.Store.Accounts().GetAccountByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same time as a real verification.
			_ = cryptox.VerifyPassword(password, dummyHash())
			log.Warn("login for unknown account")
			return domain.Account{}, domain.ErrInvalidLogin
		}
		log.Error("failed to look up account", slog.Any("error", err))
		return domain.Account{}, err
	}

	if err := cryptox.VerifyPassword(password, acc.PasswordHash); err != nil {
		log.Warn("login with wrong password", slog.String("account_id", acc.ID))
		return domain.Account{}, domain.ErrInvalidLogin
	}

	log.Debug("account authenticated", slog.String("account_id", acc.ID), slog.String("role", acc.Role.String()))
	return acc, nil
}

// GetAccount reads an account the subject may see.
func (s *IdentityService) GetAccount(ctx context.Context, sub access.Subject, id string) (domain.Account, error) {
	if err := s.Gate.Authorize(ctx, sub, access.ActionRead, access.Account(id)); err != nil {
		return domain.Account{}, err
	}

	acc, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, notFound(err)
	}
	return acc, nil
}

// DeleteLandlord removes a landlord account with every property it owns,
// cascading to their invitations, bindings and tenants.
func (s *IdentityService) DeleteLandlord(ctx context.Context, sub access.Subject, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Gate.Authorize(ctx, sub, access.ActionDelete, access.Account(id)); err != nil {
		return err
	}

	var removed int
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		acc, err := tx.Accounts().GetAccountByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		if acc.Role != domain.RoleLandlord {
			return domain.FieldError("id", "not a landlord account")
		}

		props, err := tx.Properties().ListPropertiesByLandlord(ctx, id)
		if err != nil {
			return err
		}
		for _, p := range props {
			if _, err := deletePropertyCascade(ctx, tx, p); err != nil {
				return err
			}
		}
		removed = len(props)

		return notFound(tx.Accounts().DeleteAccount(ctx, id))
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrValidation) {
			log.Error("failed to delete landlord", slog.String("account_id", id), slog.Any("error", err))
		}
		return err
	}

	log.Info("landlord deleted", slog.String("account_id", id), slog.Int("properties", removed))
	return nil
}

// dummyHash is verified against when the login names no account.
var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("leasehold-dummy-password")
	return h
})

func newAccount(reg domain.Registration, role domain.Role, hash string, now time.Time) domain.Account {
	return domain.Account{
		ID:           idx.NewAt(now).String(),
		Role:         role,
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Phone:        reg.Phone,
		Gender:       reg.Gender,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// checkAvailable reports taken usernames and emails as a ValidationError.
func checkAvailable(ctx context.Context, tx store.Tx, username, email string) error {
	taken := map[string]string{}

	_, err := tx.Accounts().GetAccountByUsername(ctx, username)
	switch {
	case err == nil:
		taken["username"] = msgTaken
	case !errors.Is(err, store.ErrNotFound):
		return err
	}

	_, err = tx.Accounts().GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		taken["email"] = msgTaken
	case !errors.Is(err, store.ErrNotFound):
		return err
	}

	if len(taken) > 0 {
		return &domain.ValidationError{Fields: taken}
	}
	return nil
}

// createAccount inserts acc, reporting a unique violation that slipped past
// checkAvailable as a username clash.
func createAccount(ctx context.Context, tx store.Tx, acc domain.Account) error {
	err := tx.Accounts().CreateAccount(ctx, acc)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.FieldError("username", msgTaken)
	}
	return err
}
