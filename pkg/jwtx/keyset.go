package jwtx

import (
	"crypto/ed25519"
	"encoding/base64"
	"slices"
	"strings"
	"sync"
)

// KeySet maps key ids to Ed25519 verification keys. Safe for concurrent use.
type KeySet struct {
	mu   sync.RWMutex
	keys map[string]ed25519.PublicKey
}

func NewKeySet() *KeySet {
	return &KeySet{keys: make(map[string]ed25519.PublicKey)}
}

// Add registers pub under kid, replacing any previous key with that id.
func (k *KeySet) Add(kid string, pub ed25519.PublicKey) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys[kid] = pub
}

func (k *KeySet) Get(kid string) (ed25519.PublicKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	pub, ok := k.keys[kid]
	if !ok {
		return nil, ErrUnknownKID
	}
	return pub, nil
}

// IsReady reports whether at least one key is loaded.
func (k *KeySet) IsReady() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.keys) > 0
}

// JWK is the public half of an Ed25519 key in RFC 8037 form.
type JWK struct {
	KeyType   string `json:"kty"`
	Curve     string `json:"crv"`
	X         string `json:"x"`
	KeyID     string `json:"kid"`
	Use       string `json:"use"`
	Algorithm string `json:"alg"`
}

// PublicJWKS returns every loaded key, ordered by key id.
func (k *KeySet) PublicJWKS() []JWK {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]JWK, 0, len(k.keys))
	for kid, pub := range k.keys {
		out = append(out, JWK{
			KeyType:   "OKP",
			Curve:     "Ed25519",
			X:         base64.RawURLEncoding.EncodeToString(pub),
			KeyID:     kid,
			Use:       "sig",
			Algorithm: "EdDSA",
		})
	}
	slices.SortFunc(out, func(a, b JWK) int { return strings.Compare(a.KeyID, b.KeyID) })
	return out
}
