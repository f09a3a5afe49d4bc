package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/propcloud/pkg/cryptox"
	"github.com/aussiebroadwan/propcloud/pkg/jwtx"
)

// Issuer is the iss claim of every session token.
const Issuer = "propcloud"

// SessionKeys holds the session signing key and the matching verifier.
type SessionKeys struct {
	KeySet   *jwtx.KeySet
	Signer   *jwtx.EdDSASigner
	Verifier jwtx.Verifier
}

// InitSessionKeys loads the Ed25519 session key.
//
// With SESSION_KEY_FILE set the key is read from that PEM file, which is
// created on first start, so sessions survive restarts. Without it a key is
// generated in memory and every session ends when the process exits.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*SessionKeys, error) {
	var (
		priv ed25519.PrivateKey
		err  error
	)

	if cfg.SessionKeyFile == "" {
		_, priv, err = ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		logger.Warn("using an ephemeral session key, sessions end on restart")
	} else {
		priv, err = loadOrCreateKey(cfg.SessionKeyFile)
		if err != nil {
			return nil, err
		}
		logger.Info("session key loaded", "path", cfg.SessionKeyFile)
	}

	signer, err := jwtx.NewEdDSASigner(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to create session signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	keys.Add(signer.KID(), signer.PublicKey())

	return &SessionKeys{
		KeySet:   keys,
		Signer:   signer,
		Verifier: jwtx.NewEdDSAVerifier(keys, Issuer),
	}, nil
}

func loadOrCreateKey(path string) (ed25519.PrivateKey, error) {
	path = filepath.Clean(path)

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if raw, err = cryptox.GenerateEd25519PEM(); err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create session key dir: %w", err)
		}
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write session key: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read session key: %w", err)
	}

	priv, err := cryptox.ParseEd25519PEM(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session key %s: %w", path, err)
	}
	return priv, nil
}
