package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL applies when a SessionSpec has no TTL.
const DefaultSessionTTL = 15 * time.Minute

// Claims carried by a leasehold session token. Subject is the account ID.
// Role rides along so downstream services can gate without a lookup.
type Claims struct {
	jwt.RegisteredClaims

	Role     string `json:"role"` // landlord, tenant or admin
	Username string `json:"username,omitempty"`
}

// SessionSpec describes the session a token is minted for.
type SessionSpec struct {
	AccountID string
	Role      string
	Username  string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

// NewSessionClaims stamps spec at now with a fresh token ID.
func NewSessionClaims(spec SessionSpec, now time.Time) Claims {
	ttl := spec.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	at := jwt.NewNumericDate(now)

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Issuer:    spec.Issuer,
			Subject:   spec.AccountID,
			Audience:  spec.Audience,
			IssuedAt:  at,
			NotBefore: at,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:     spec.Role,
		Username: spec.Username,
	}
}

func newTokenID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// Check enforces issuer, audience and the validity window. An empty issuer
// or audience is not enforced. leeway absorbs clock skew on both edges.
func (c *Claims) Check(issuer string, audience []string, now time.Time, leeway time.Duration) error {
	if issuer != "" && c.Issuer != issuer {
		return ErrIssuer
	}
	if len(audience) > 0 && !slices.ContainsFunc(audience, func(a string) bool {
		return slices.Contains(c.Audience, a)
	}) {
		return ErrAudience
	}
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
