package jwtx

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aussiebroadwan/leasehold/pkg/cryptox"
)

// KeyManager owns the signing keys of a running instance. Keys are
// ephemeral: generated on start, held in memory, published through KeySet.
// Every session becomes invalid when the process restarts.
type KeyManager struct {
	Verifier *EdDSAVerifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []Signer
}

// KeyManagerOptions configures the KeyManager.
type KeyManagerOptions struct {
	// Issuer is the iss claim validated in tokens.
	Issuer string

	// Audience values validated in tokens; empty skips the check.
	Audience []string

	// NumKeys is how many signing keys to generate, clamped to [1, 10].
	// Defaults to 2.
	NumKeys int
}

// NewEphemeralKeyManager generates opts.NumKeys Ed25519 keys with random
// key ids and wires them into a KeySet and a verifier.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	n := opts.NumKeys
	if n <= 0 {
		n = 2
	}
	n = min(n, 10)

	km := &KeyManager{KeySet: NewKeySet()}
	for i := range n {
		signer, err := newEphemeralSigner()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate signer %d: %w", i+1, err)
		}
		if err := km.AddSigner(signer); err != nil {
			return nil, err
		}
	}

	km.Verifier = NewVerifierEdDSA(km.KeySet, opts.Issuer, opts.Audience)
	return km, nil
}

func newEphemeralSigner() (Signer, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return nil, fmt.Errorf("key id: %w", err)
	}

	pemBytes, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, err
	}
	return NewSignerEdDSA("leasehold-"+token, pemBytes)
}

// IsReady returns true if at least one key is published.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// GetSigner returns a randomly selected active signer, or nil if none.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

// NumSigners returns the number of active signing keys.
func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// AddSigner adds a signing key and publishes its public half.
func (km *KeyManager) AddSigner(signer Signer) error {
	if signer == nil {
		return fmt.Errorf("jwtx: signer cannot be nil")
	}

	km.mu.Lock()
	defer km.mu.Unlock()

	if err := km.KeySet.AddSigner(signer); err != nil {
		return fmt.Errorf("jwtx: add signer to keyset: %w", err)
	}
	km.signers = append(km.signers, signer)
	return nil
}
