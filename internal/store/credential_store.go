package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"ledgerdesk/internal/domain"
)

const credentialFilename = "credentials.json"

// CredentialFileStore keeps the access and refresh tokens in a 0600 JSON
// file so a restart does not force a new login. Tokens are stored as the
// opaque strings the backend issued; the store never inspects them.
type CredentialFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewCredentialFileStore returns a CredentialFileStore rooted at dir.
func NewCredentialFileStore(dir string) *CredentialFileStore {
	return &CredentialFileStore{dir: dir}
}

func (s *CredentialFileStore) path() string {
	return filepath.Join(s.dir, credentialFilename)
}

// LoadCredential reads the persisted token pair. A missing or empty file
// reports ok=false, not an error.
func (s *CredentialFileStore) LoadCredential() (domain.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return domain.Credential{}, false, nil
	}
	if err != nil {
		return domain.Credential{}, false, err
	}
	var cred domain.Credential
	if err := json.Unmarshal(b, &cred); err != nil {
		return domain.Credential{}, false, err
	}
	if cred.IsZero() {
		return domain.Credential{}, false, nil
	}
	return cred, true, nil
}

// SaveCredential replaces both tokens in one write. The pair is staged in
// a temp file in the same directory and renamed into place, so a crash
// mid-write never leaves a truncated credential file.
func (s *CredentialFileStore) SaveCredential(cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, credentialFilename+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path())
}

// ClearCredential destroys both tokens. Clearing an already-empty store is
// a no-op.
func (s *CredentialFileStore) ClearCredential() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
