package interfaces

import domaintypes "ledgerdesk/internal/domain/types"

// CredentialStore persists the bearer tokens between runs.
//
// Tokens are opaque strings; the store never validates their format and
// makes no network calls. Load reports ok=false when nothing is stored.
type CredentialStore interface {
	LoadCredential() (cred domaintypes.Credential, ok bool, err error)
	SaveCredential(cred domaintypes.Credential) error
	ClearCredential() error
}
