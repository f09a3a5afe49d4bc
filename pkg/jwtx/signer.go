package jwtx

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer turns claims into a compact signed token.
type Signer interface {
	KID() string
	Sign(Claims) (string, error)
}

// EdDSASigner signs with a single Ed25519 key.
type EdDSASigner struct {
	kid string
	key ed25519.PrivateKey
}

// NewEdDSASigner wraps key. The kid is derived from the public key so a
// restarted process with the same key file produces the same kid.
func NewEdDSASigner(key ed25519.PrivateKey) (*EdDSASigner, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.New("jwtx: invalid ed25519 private key")
	}
	sum := sha256.Sum256(key.Public().(ed25519.PublicKey))
	return &EdDSASigner{
		kid: base64.RawURLEncoding.EncodeToString(sum[:12]),
		key: key,
	}, nil
}

func (s *EdDSASigner) KID() string { return s.kid }

// PublicKey returns the verification half of the signing key.
func (s *EdDSASigner) PublicKey() ed25519.PublicKey {
	return s.key.Public().(ed25519.PublicKey)
}

func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}
