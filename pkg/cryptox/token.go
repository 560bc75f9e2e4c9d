package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TokenSize128 provides 128 bits of entropy.
const TokenSize128 = 16

// InvitationTokenLen is the length of the canonical 8-4-4-4-12 rendering.
const InvitationTokenLen = 36

var ErrMalformedToken = errors.New("cryptox: malformed invitation token")

// GenerateToken creates a cryptographically secure random token of the specified byte length.
// The token is returned as a base64url-encoded string (URL-safe, no padding).
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// NewInvitationToken returns 128 random bits rendered as lowercase
// hyphenated hex. No version or variant bits are forced, every bit comes from
// crypto/rand.
func NewInvitationToken() (string, error) {
	var raw uuid.UUID
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return raw.String(), nil
}

// ParseInvitationToken accepts only the 36 character hyphenated form and
// returns it canonicalised to lowercase. Braced, URN and unhyphenated forms
// that uuid.Parse would otherwise accept are rejected.
func ParseInvitationToken(s string) (string, error) {
	if len(s) != InvitationTokenLen {
		return "", ErrMalformedToken
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return "", ErrMalformedToken
	}
	return u.String(), nil
}

// TokenFingerprint is a short, stable, non-reversible tag for a bearer
// secret, safe to log in place of the secret itself.
func TokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:6])
}
