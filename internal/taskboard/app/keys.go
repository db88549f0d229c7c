package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

// Keys pairs the session token signer with the verifier that accepts it.
type Keys struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
}

// InitSessionKeys builds the signer and verifier for the configured algorithm.
//
// Supported algorithms:
//   - "HS256": a shared secret from JWT_SECRET. When unset a random secret is
//     generated, so every session ends when the process restarts.
//   - "EdDSA": an Ed25519 key read from JWT_KEY_FILE, generated on first
//     start. The key id is derived from the key so it is stable across
//     restarts. With JWT_MASTER_KEY_FILE set the key file is stored sealed.
func InitSessionKeys(cfg Config, logger *slog.Logger) (Keys, error) {
	switch cfg.JWTAlgorithm {
	case "EdDSA":
		pemKey, created, err := loadEdDSAKey(cfg, logger)
		if err != nil {
			return Keys{}, fmt.Errorf("failed to load EdDSA key: %w", err)
		}
		if created {
			logger.Info("generated EdDSA signing key", "path", cfg.JWTKeyFile)
		}

		kid := cryptox.FingerprintToken(string(pemKey))[:16]
		signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
		if err != nil {
			return Keys{}, fmt.Errorf("failed to create EdDSA signer: %w", err)
		}

		keys := jwtx.NewKeySet()
		keys.AddSigner(signer.(*jwtx.EdDSASigner))

		logger.Info("session keys ready", "algorithm", signer.Alg(), "kid", kid, "issuer", cfg.Issuer)
		return Keys{Signer: signer, Verifier: jwtx.NewVerifierEdDSA(keys, cfg.Issuer)}, nil

	case "HS256", "":
		secret := cfg.JWTSecret
		if secret == "" {
			var err error
			secret, err = cryptox.GenerateToken(cryptox.TokenSize256)
			if err != nil {
				return Keys{}, err
			}
			logger.Warn("JWT_SECRET not set, generated an ephemeral secret; sessions end on restart")
		}

		signer, err := jwtx.NewSignerHS256("", []byte(secret))
		if err != nil {
			return Keys{}, fmt.Errorf("failed to create HS256 signer: %w", err)
		}

		logger.Info("session keys ready", "algorithm", signer.Alg(), "issuer", cfg.Issuer)
		return Keys{Signer: signer, Verifier: jwtx.NewVerifierHS256([]byte(secret), cfg.Issuer)}, nil

	default:
		return Keys{}, fmt.Errorf("unsupported JWT_ALGORITHM %q", cfg.JWTAlgorithm)
	}
}

func loadEdDSAKey(cfg Config, logger *slog.Logger) ([]byte, bool, error) {
	if cfg.MasterKeyFile == "" {
		return cryptox.LoadOrGenerateEd25519Key(cfg.JWTKeyFile)
	}

	sealer, err := cryptox.LoadKeySealer(cfg.MasterKeyFile)
	if err != nil {
		return nil, false, err
	}
	logger.Info("master key configured, signing key is sealed at rest", "path", cfg.MasterKeyFile)
	return cryptox.LoadOrGenerateSealedEd25519Key(cfg.JWTKeyFile, sealer)
}
