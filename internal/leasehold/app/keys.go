package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/leasehold/pkg/jwtx"
)

// InitSessionKeys generates the instance's Ed25519 signing keys. Keys live
// only in memory, so every session ends when the process restarts.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.SigningKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("generate session keys: %w", err)
	}

	logger.Info("session keys ready", "algorithm", "EdDSA", "num_keys", km.NumSigners())
	return km, nil
}
