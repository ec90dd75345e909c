package app

import (
	"ledgerdesk/internal/backend"
	"ledgerdesk/internal/domain"
	sessionsvc "ledgerdesk/internal/services/session"
	uisvc "ledgerdesk/internal/services/uistate"
	"ledgerdesk/internal/store"
)

// Wire bundles the stores, services, and the backend client for the CLI.
type Wire struct {
	Credentials domain.CredentialStore
	Backend     domain.BackendClient
	Session     domain.SessionService
	UI          domain.UIState
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	credStore := store.NewCredentialFileStore(cfg.Home)

	client, err := backend.New(cfg.BaseURL, credStore, backend.Options{
		HTTPClient:     cfg.HTTP,
		OnUnauthorized: cfg.OnUnauthorized,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{
		Credentials: credStore,
		Backend:     client,
		Session:     sessionsvc.New(client, credStore),
		UI:          uisvc.New(),
	}, nil
}
