package vault

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"xsrftoken"
)

const filename = "session.json.enc"

// Vault stores a single encrypted session token under a directory.
type Vault struct {
	dir string
	mu  sync.Mutex
}

// New returns a Vault rooted at dir. The directory must exist.
func New(dir string) *Vault {
	return &Vault{dir: dir}
}

// Save seals the token under the passphrase and writes it to disk,
// replacing any previously stored token atomically.
func (v *Vault) Save(passphrase string, t xsrftoken.SessionToken) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	blob, err := seal(passphrase, []byte(t.Encode()))
	if err != nil {
		return err
	}
	return writeFileAtomic(v.path(), blob, 0o600)
}

// Load reads and opens the stored token. It returns ErrNotFound if nothing
// has been saved, and ErrWrongPassphrase if the blob does not open.
func (v *Vault) Load(passphrase string) (xsrftoken.SessionToken, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	b, err := os.ReadFile(v.path())
	if errors.Is(err, os.ErrNotExist) {
		return xsrftoken.SessionToken{}, ErrNotFound
	}
	if err != nil {
		return xsrftoken.SessionToken{}, err
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return xsrftoken.SessionToken{}, err
	}
	t, err := xsrftoken.DecodeSessionToken(string(pt))
	if err != nil {
		// The blob authenticated but its payload is not a token; treat it
		// as corruption rather than exposing the decode failure.
		return xsrftoken.SessionToken{}, ErrWrongPassphrase
	}
	return t, nil
}

// Exists reports whether a session token has been saved.
func (v *Vault) Exists() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	_, err := os.Stat(v.path())
	return err == nil
}

func (v *Vault) path() string {
	return filepath.Join(v.dir, filename)
}

// writeFileAtomic writes b via a temp file, then atomically replaces path.
func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
