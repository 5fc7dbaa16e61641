// Package jwtx issues and verifies the EdDSA-signed session tokens handed
// out after login or invitation acceptance. One signing key per process;
// the seed can be persisted to disk so sessions survive restarts.
package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrExpiredToken = errors.New("jwtx: token expired")
)

// Claims carried by a session token. Role and Department drive the
// server-side authorisation checks.
type Claims struct {
	jwt.RegisteredClaims

	Name       string `json:"name,omitempty"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

// KeySet holds the process signing key.
type KeySet struct {
	KID     string
	public  ed25519.PublicKey
	private ed25519.PrivateKey
}

// GenerateKeySet creates an ephemeral Ed25519 signing key.
func GenerateKeySet() (*KeySet, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}
	return newKeySet(pub, priv), nil
}

// LoadOrGenerateKeySet reads an Ed25519 seed from path, generating and
// persisting one if the file does not exist. An empty path yields an
// ephemeral key.
func LoadOrGenerateKeySet(path string) (*KeySet, error) {
	if path == "" {
		return GenerateKeySet()
	}

	path = filepath.Clean(path)
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		seed := make([]byte, ed25519.SeedSize)
		if _, err := rand.Read(seed); err != nil {
			return nil, fmt.Errorf("jwtx: generate seed: %w", err)
		}
		encoded := base64.RawURLEncoding.EncodeToString(seed)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, []byte(encoded), 0600); err != nil {
			return nil, fmt.Errorf("jwtx: persist seed: %w", err)
		}
		priv := ed25519.NewKeyFromSeed(seed)
		return newKeySet(priv.Public().(ed25519.PublicKey), priv), nil
	}
	if err != nil {
		return nil, err
	}

	seed, err := base64.RawURLEncoding.DecodeString(string(raw))
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("jwtx: malformed seed file %s", path)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return newKeySet(priv.Public().(ed25519.PublicKey), priv), nil
}

func newKeySet(pub ed25519.PublicKey, priv ed25519.PrivateKey) *KeySet {
	// Key ID is a short fingerprint of the public key.
	sum := sha256.Sum256(pub)
	return &KeySet{
		KID:     base64.RawURLEncoding.EncodeToString(sum[:8]),
		public:  pub,
		private: priv,
	}
}

// Sign produces a compact EdDSA-signed token for the given claims.
func (k *KeySet) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = k.KID
	return token.SignedString(k.private)
}

// Verifier validates session tokens against a KeySet and expected issuer.
type Verifier struct {
	Keys   *KeySet
	Issuer string
}

// Verify parses and validates a compact token, returning its claims.
// Expired tokens return ErrExpiredToken; everything else maps to
// ErrInvalidToken so callers never leak parser detail to clients.
func (v Verifier) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.Keys.public, nil
	},
		jwt.WithIssuer(v.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// NewClaims builds session claims with standard fields filled in.
func NewClaims(issuer, subject, name, role, department string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:       name,
		Role:       role,
		Department: department,
	}
}
