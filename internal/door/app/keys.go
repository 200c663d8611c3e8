package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
)

// InitSigningKeys generates the ephemeral Ed25519 signing keys. Keys live
// only in memory, so every restart invalidates outstanding access tokens;
// clients log in again.
func InitSigningKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	keyManager, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize key manager: %w", err)
	}

	logger.Info("ephemeral signing keys generated",
		"algorithm", "EdDSA",
		"num_keys", keyManager.NumSigners(),
	)
	return keyManager, nil
}
