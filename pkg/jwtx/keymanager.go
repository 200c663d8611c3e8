package jwtx

import (
	"fmt"
	"math/rand/v2"

	"github.com/aussiebroadwan/vcdoor/pkg/cryptox"
)

// KeyManager owns the ephemeral signing keys of one service instance. Keys
// live only in memory, so every restart invalidates outstanding tokens.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	signers []Signer
}

type KeyManagerOptions struct {
	// Issuer is the iss claim the verifier will insist on.
	Issuer string

	// NumKeys is clamped to [1, 10]; zero means 3.
	NumKeys int

	// KeyPrefix is prepended to the random kid of every key.
	KeyPrefix string
}

func NewKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	numKeys := opts.NumKeys
	switch {
	case numKeys <= 0:
		numKeys = 3
	case numKeys > 10:
		numKeys = 10
	}
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = "vcdoor"
	}

	keyset := NewKeySet()
	signers := make([]Signer, 0, numKeys)
	for i := range numKeys {
		token, err := cryptox.GenerateToken(cryptox.TokenSize128)
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key id: %w", err)
		}

		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}

		signer, err := NewSigner(prefix+"-"+token, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: load key %d: %w", i+1, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: publish key %d: %w", i+1, err)
		}
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier: NewVerifier(keyset, opts.Issuer),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() }

// GetSigner picks one of the signing keys at random.
func (km *KeyManager) GetSigner() Signer {
	if len(km.signers) == 1 {
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

func (km *KeyManager) NumSigners() int { return len(km.signers) }
