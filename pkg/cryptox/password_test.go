package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.NotEmpty(t, parts[4], "salt should not be empty")

			require.NoError(t, VerifyPassword(tt.password, hash))
			require.ErrorIs(t, VerifyPassword(tt.password+"x", hash), ErrPasswordMismatch)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	a, err := HashPassword("samepassword")
	require.NoError(t, err)
	b, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, a, b, "hashes should differ due to unique salts")
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	for _, h := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	} {
		require.ErrorIs(t, VerifyPassword("pw", h), ErrInvalidHash, "hash %q", h)
	}
}

func TestPepperChangesHash(t *testing.T) {
	t.Cleanup(func() { SetPepper("") })

	SetPepper("pepper-one")
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, VerifyPassword("secret", hash))

	// Same password, different pepper, must not verify
	SetPepper("pepper-two")
	require.ErrorIs(t, VerifyPassword("secret", hash), ErrPasswordMismatch)
}

func TestLoadPepper(t *testing.T) {
	t.Cleanup(func() { SetPepper("") })

	path := filepath.Join(t.TempDir(), "nested", "pepper")

	require.NoError(t, LoadPepper(path))
	first := currentPepper()
	require.NotEmpty(t, first)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, string(raw))

	// Second load reuses the persisted value
	SetPepper("")
	require.NoError(t, LoadPepper(path))
	require.Equal(t, first, currentPepper())

	require.Error(t, LoadPepper(""))
}
