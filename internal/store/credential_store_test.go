// internal/store/credential_store_test.go
package store_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"ledgerdesk/internal/domain"
	"ledgerdesk/internal/store"
)

func TestCredential_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()

	var cs domain.CredentialStore = store.NewCredentialFileStore(home)

	cred := domain.Credential{AccessToken: "T1", RefreshToken: "R1"}
	if err := cs.SaveCredential(cred); err != nil {
		t.Fatalf("save credential: %v", err)
	}

	got, ok, err := cs.LoadCredential()
	if err != nil {
		t.Fatalf("load credential: %v", err)
	}
	if !ok {
		t.Fatal("expected stored credential")
	}
	if got != cred {
		t.Fatalf("mismatch after load: got %+v", got)
	}
}

func TestCredential_LoadMissing_NotAnError(t *testing.T) {
	home := t.TempDir()
	cs := store.NewCredentialFileStore(home)

	_, ok, err := cs.LoadCredential()
	if err != nil {
		t.Fatalf("load from empty dir: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false with nothing stored")
	}
}

func TestCredential_Clear_Idempotent(t *testing.T) {
	home := t.TempDir()
	cs := store.NewCredentialFileStore(home)

	if err := cs.SaveCredential(domain.Credential{AccessToken: "T1", RefreshToken: "R1"}); err != nil {
		t.Fatalf("save credential: %v", err)
	}
	if err := cs.ClearCredential(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	// Clearing again must be a no-op.
	if err := cs.ClearCredential(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, ok, _ := cs.LoadCredential(); ok {
		t.Fatal("expected no credential after clear")
	}
}

func TestCredential_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are advisory on windows")
	}
	home := t.TempDir()
	cs := store.NewCredentialFileStore(home)

	if err := cs.SaveCredential(domain.Credential{AccessToken: "T1", RefreshToken: "R1"}); err != nil {
		t.Fatalf("save credential: %v", err)
	}
	info, err := os.Stat(filepath.Join(home, "credentials.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}
}
