package xsrftoken

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const (
	// TokenLen is the size in bytes of the session secret and of each half
	// of a request token.
	TokenLen = 32

	// EncodedLen is the length of the text form of TokenLen bytes under the
	// padded URL-safe base64 encoding.
	EncodedLen = 44
)

// SessionToken is the long-lived per-session secret. It is drawn from a
// cryptographically secure random source at creation and never mutated.
// The zero value is not a valid token; use New or DecodeSessionToken.
type SessionToken struct {
	secret [TokenLen]byte
}

// New returns a fresh SessionToken filled from crypto/rand.
func New() (SessionToken, error) {
	var t SessionToken
	if _, err := rand.Read(t.secret[:]); err != nil {
		return SessionToken{}, err
	}
	return t, nil
}

// Mint derives a RequestToken from the session secret. The token carries a
// fresh one-time pad and the pad XOR-ed with the secret, so repeated calls
// produce unlinkable tokens that all verify against this SessionToken.
func (t SessionToken) Mint() (RequestToken, error) {
	var r RequestToken
	if _, err := rand.Read(r.otp[:]); err != nil {
		return RequestToken{}, err
	}
	xorInto(&r.mask, &r.otp, &t.secret)
	return r, nil
}

// Verify recovers the secret carried by r and compares it to the session
// secret in constant time. The comparison always touches all TokenLen bytes
// regardless of where a mismatch occurs.
func (t SessionToken) Verify(r RequestToken) error {
	var candidate [TokenLen]byte
	xorInto(&candidate, &r.otp, &r.mask)
	if subtle.ConstantTimeCompare(candidate[:], t.secret[:]) != 1 {
		return ErrTokenMismatch
	}
	return nil
}

// Fingerprint returns a short hex digest of the session secret, safe to show
// in logs or terminals. It does not reveal the secret.
func (t SessionToken) Fingerprint() string {
	sum := sha256.Sum256(t.secret[:])
	return hex.EncodeToString(sum[:10])
}

// Wipe zeroes the session secret. Best-effort hardening for callers that
// want to shorten the secret's lifetime in memory; the token is unusable
// afterwards.
func (t *SessionToken) Wipe() {
	memzero(t.secret[:])
}

// RequestToken is a per-issuance token derived from a SessionToken. It is
// self-contained: verification needs only the SessionToken it was minted
// from. Construct one via SessionToken.Mint or DecodeRequestToken.
type RequestToken struct {
	otp  [TokenLen]byte
	mask [TokenLen]byte
}

// Wipe zeroes the token's pad and mask.
func (r *RequestToken) Wipe() {
	memzero(r.otp[:])
	memzero(r.mask[:])
}
