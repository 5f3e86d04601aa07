package vault

import "errors"

var (
	// ErrNotFound is returned by Load when no session token has been saved.
	ErrNotFound = errors.New("no session token stored")

	// ErrWrongPassphrase is returned when the passphrase is incorrect or
	// the stored blob has been modified or corrupted. No distinction is
	// drawn between the two.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted vault")
)
