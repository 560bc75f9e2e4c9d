package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/pkg/jwtx"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
)

var ErrNoSigningKey = errors.New("no signing key available")

// Session is a signed bearer token for an account.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	AccountID   string
	Role        domain.Role
}

// SessionService signs session tokens with the instance's key manager.
type SessionService struct {
	KeyManager *jwtx.KeyManager
	Issuer     string
	Audience   []string
	TTL        time.Duration
	Clock      Clock
}

// Issue signs a session for acc using a randomly chosen signing key.
func (s *SessionService) Issue(ctx context.Context, acc domain.Account) (Session, error) {
	log := slogx.FromContext(ctx)

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	signer := s.KeyManager.GetSigner()
	if signer == nil {
		log.Error("no signing key available")
		return Session{}, ErrNoSigningKey
	}

	claims := jwtx.NewSessionClaims(jwtx.SessionSpec{
		AccountID: acc.ID,
		Role:      acc.Role.String(),
		Username:  acc.Username,
		Issuer:    s.Issuer,
		Audience:  s.Audience,
		TTL:       ttl,
	}, s.Clock.now())

	token, err := signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session", slog.String("account_id", acc.ID), slog.Any("error", err))
		return Session{}, err
	}

	return Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   ttl,
		AccountID:   acc.ID,
		Role:        acc.Role,
	}, nil
}
