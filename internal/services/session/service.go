package session

import (
	"context"
	"sync"

	"ledgerdesk/internal/backend"
	"ledgerdesk/internal/domain"
)

const (
	msgNotSignedIn = "You are not signed in."
	msgSuperseded  = "The session changed while the request was in flight."
)

// Service is the session manager. All session-mutating operations are
// serialized through a generation counter: a network response is applied
// only if no logout happened while it was in flight.
type Service struct {
	api   domain.AuthAPI
	creds domain.CredentialStore

	mu    sync.Mutex
	state domain.SessionState
	user  domain.User
	gen   uint64
}

// New constructs a session service over the auth endpoints and the
// credential store. The initial state is Unauthenticated until Bootstrap
// runs.
func New(api domain.AuthAPI, creds domain.CredentialStore) *Service {
	return &Service{
		api:   api,
		creds: creds,
		state: domain.SessionUnauthenticated,
	}
}

// Bootstrap validates a persisted token on startup. Without one the session
// settles in Unauthenticated; with one it enters Checking and asks the
// backend who the token belongs to. Any validation failure logs the session
// out immediately.
func (s *Service) Bootstrap(ctx context.Context) domain.SessionState {
	s.mu.Lock()
	cred, ok, err := s.creds.LoadCredential()
	if err != nil || !ok || cred.AccessToken == "" {
		s.state = domain.SessionUnauthenticated
		s.mu.Unlock()
		return domain.SessionUnauthenticated
	}
	s.state = domain.SessionChecking
	gen := s.gen
	s.mu.Unlock()

	user, err := s.api.CurrentUser(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return s.state
	}
	if err != nil {
		// Fail safe: one failed validation ends the session. A 401 means
		// the token is dead; anything else means we could not prove it is
		// alive, which gets the same treatment plus a distinct state so
		// the shell can tell "token rejected" from "backend unreachable".
		_ = s.creds.ClearCredential()
		s.user = domain.User{}
		if backend.IsUnauthorized(err) {
			s.state = domain.SessionUnauthenticated
		} else {
			s.state = domain.SessionFailed
		}
		return s.state
	}
	s.user = user
	s.state = domain.SessionAuthenticated
	return s.state
}

// Login exchanges credentials for a token pair and enters Authenticated.
func (s *Service) Login(ctx context.Context, email, password string) domain.Result {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	payload, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return domain.Fail(msgSuperseded)
	}
	if err != nil {
		return domain.Fail(backend.Message(err))
	}
	return s.commit(payload)
}

// Register creates an account and enters Authenticated, same contract as
// Login.
func (s *Service) Register(ctx context.Context, reg domain.Registration) domain.Result {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	payload, err := s.api.Register(ctx, reg)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return domain.Fail(msgSuperseded)
	}
	if err != nil {
		return domain.Fail(backend.Message(err))
	}
	return s.commit(payload)
}

// commit applies a successful auth payload: persist the token pair first,
// then set user and state, so the credential store and the in-memory state
// never disagree about who is signed in. Callers hold s.mu.
func (s *Service) commit(payload domain.AuthPayload) domain.Result {
	err := s.creds.SaveCredential(domain.Credential{
		AccessToken:  payload.Token.AccessToken,
		RefreshToken: payload.Token.RefreshToken,
	})
	if err != nil {
		return domain.Fail(backend.Message(err))
	}
	s.user = payload.User
	s.state = domain.SessionAuthenticated
	return domain.Ok()
}

// UpdateProfile replaces the in-memory user on success. The token is
// untouched.
func (s *Service) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) domain.Result {
	s.mu.Lock()
	if s.state != domain.SessionAuthenticated {
		s.mu.Unlock()
		return domain.Fail(msgNotSignedIn)
	}
	gen := s.gen
	s.mu.Unlock()

	user, err := s.api.UpdateProfile(ctx, update)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return domain.Fail(msgSuperseded)
	}
	if err != nil {
		return domain.Fail(backend.Message(err))
	}
	s.user = user
	return domain.Ok()
}

// ChangePassword rotates the account password. Session state is unchanged;
// the backend keeps the current token pair valid.
func (s *Service) ChangePassword(ctx context.Context, change domain.PasswordChange) domain.Result {
	s.mu.Lock()
	if s.state != domain.SessionAuthenticated {
		s.mu.Unlock()
		return domain.Fail(msgNotSignedIn)
	}
	s.mu.Unlock()

	if err := s.api.ChangePassword(ctx, change); err != nil {
		return domain.Fail(backend.Message(err))
	}
	return domain.Ok()
}

// Refresh trades the persisted refresh token for a new token pair. It is an
// explicit operation; the client does not refresh behind a 401.
func (s *Service) Refresh(ctx context.Context) domain.Result {
	s.mu.Lock()
	cred, ok, err := s.creds.LoadCredential()
	if err != nil || !ok || cred.RefreshToken == "" {
		s.mu.Unlock()
		return domain.Fail(msgNotSignedIn)
	}
	gen := s.gen
	s.mu.Unlock()

	pair, err := s.api.RefreshToken(ctx, cred.RefreshToken)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return domain.Fail(msgSuperseded)
	}
	if err != nil {
		return domain.Fail(backend.Message(err))
	}
	saveErr := s.creds.SaveCredential(domain.Credential{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	if saveErr != nil {
		return domain.Fail(backend.Message(saveErr))
	}
	return domain.Ok()
}

// Logout ends the session locally and always succeeds: bump the generation
// so in-flight responses are discarded, then clear memory and the
// credential store. The backend logout endpoint is not part of the
// transition; callers that want to notify the backend do so beforehand,
// while the token still exists, and ignore the outcome.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.user = domain.User{}
	s.state = domain.SessionUnauthenticated
	// Clearing the store under the same lock keeps it consistent with the
	// in-memory state: a login committing concurrently lands strictly
	// before or strictly after the whole teardown.
	_ = s.creds.ClearCredential()
}

// State reports the current session state.
func (s *Service) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser reports the signed-in user, if any.
func (s *Service) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.SessionAuthenticated {
		return domain.User{}, false
	}
	return s.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Service) IsAuthenticated() bool {
	return s.State() == domain.SessionAuthenticated
}

var _ domain.SessionService = (*Service)(nil)
