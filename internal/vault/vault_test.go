package vault_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"xsrftoken"
	"xsrftoken/internal/vault"
)

func makeSession(t *testing.T) xsrftoken.SessionToken {
	t.Helper()
	s, err := xsrftoken.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestSaveLoad_OK(t *testing.T) {
	v := vault.New(t.TempDir())
	pass := "pass"
	original := makeSession(t)

	if err := v.Save(pass, original); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := v.Load(pass)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != original {
		t.Fatal("loaded token differs from saved token")
	}
}

func TestLoad_WrongPassphrase_Fails(t *testing.T) {
	v := vault.New(t.TempDir())

	if err := v.Save("correct", makeSession(t)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := v.Load("wrong"); !errors.Is(err, vault.ErrWrongPassphrase) {
		t.Fatalf("load = %v, want ErrWrongPassphrase", err)
	}
}

func TestLoad_Missing_NotFound(t *testing.T) {
	v := vault.New(t.TempDir())
	if v.Exists() {
		t.Fatal("Exists on empty vault")
	}
	if _, err := v.Load("pass"); !errors.Is(err, vault.ErrNotFound) {
		t.Fatalf("load = %v, want ErrNotFound", err)
	}
}

func TestLoad_TamperedBlob_Fails(t *testing.T) {
	dir := t.TempDir()
	v := vault.New(dir)
	pass := "pass"

	if err := v.Save(pass, makeSession(t)); err != nil {
		t.Fatalf("save: %v", err)
	}

	path := filepath.Join(dir, "session.json.enc")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal blob: %v", err)
	}
	if _, ok := raw["cipher"]; !ok {
		t.Fatal("blob has no cipher field")
	}
	raw["cipher"] = "dGFtcGVyZWQ="
	b, err = json.Marshal(raw)
	if err != nil {
		t.Fatalf("marshal blob: %v", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write blob: %v", err)
	}

	if _, err := v.Load(pass); !errors.Is(err, vault.ErrWrongPassphrase) {
		t.Fatalf("load = %v, want ErrWrongPassphrase", err)
	}
}

func TestSave_Overwrite_ReplacesToken(t *testing.T) {
	v := vault.New(t.TempDir())
	pass := "pass"

	first := makeSession(t)
	second := makeSession(t)
	if err := v.Save(pass, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := v.Save(pass, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := v.Load(pass)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == first {
		t.Fatal("load returned the replaced token")
	}
	if got != second {
		t.Fatal("load did not return the latest token")
	}
}
