// Package vault persists one session token on disk, encrypted under a
// passphrase.
//
// The token's encoded form is sealed into a versioned JSON blob with a key
// derived from the passphrase via Argon2id and a chacha20poly1305 AEAD. Each
// save draws a fresh salt, so the zero nonce is used at most once per key.
// Writes go through a temp file and rename, mode 0600. All methods are
// concurrency-safe via internal locking.
//
// The vault serves the CLI; the token package itself never persists
// anything.
package vault
