package session_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"ledgerdesk/internal/backend"
	"ledgerdesk/internal/domain"
	"ledgerdesk/internal/services/session"
	"ledgerdesk/internal/store"
)

// fakeAuth scripts the auth endpoints per test.
type fakeAuth struct {
	login          func(ctx context.Context, email, password string) (domain.AuthPayload, error)
	register       func(ctx context.Context, reg domain.Registration) (domain.AuthPayload, error)
	logout         func(ctx context.Context) error
	currentUser    func(ctx context.Context) (domain.User, error)
	updateProfile  func(ctx context.Context, update domain.ProfileUpdate) (domain.User, error)
	changePassword func(ctx context.Context, change domain.PasswordChange) error
	refreshToken   func(ctx context.Context, refreshToken string) (domain.TokenPair, error)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (domain.AuthPayload, error) {
	return f.login(ctx, email, password)
}

func (f *fakeAuth) Register(ctx context.Context, reg domain.Registration) (domain.AuthPayload, error) {
	return f.register(ctx, reg)
}

func (f *fakeAuth) Logout(ctx context.Context) error { return f.logout(ctx) }

func (f *fakeAuth) CurrentUser(ctx context.Context) (domain.User, error) {
	return f.currentUser(ctx)
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	return f.updateProfile(ctx, update)
}

func (f *fakeAuth) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	return f.changePassword(ctx, change)
}

func (f *fakeAuth) RefreshToken(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	return f.refreshToken(ctx, refreshToken)
}

var _ domain.AuthAPI = (*fakeAuth)(nil)

func authPayload(email string) domain.AuthPayload {
	return domain.AuthPayload{
		User: domain.User{ID: "u1", Email: email},
		Token: domain.TokenPair{
			AccessToken:  "at-new",
			RefreshToken: "rt-new",
			TokenType:    "bearer",
			ExpiresIn:    1800,
		},
	}
}

func unauthorizedErr() error {
	return &backend.Error{
		Op:     "CurrentUser",
		Kind:   backend.KindUnauthorized,
		Status: http.StatusUnauthorized,
		Err:    errors.New("unauthorized"),
	}
}

func TestBootstrap_NoCredential(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	svc := session.New(&fakeAuth{}, creds)

	if got := svc.Bootstrap(context.Background()); got != domain.SessionUnauthenticated {
		t.Errorf("Bootstrap = %v, want Unauthenticated", got)
	}
	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated = true without credential")
	}
}

func TestBootstrap_ValidToken(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	if err := creds.SaveCredential(domain.Credential{AccessToken: "at"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}
	api := &fakeAuth{
		currentUser: func(ctx context.Context) (domain.User, error) {
			return domain.User{ID: "u1", Email: "owner@example.com"}, nil
		},
	}
	svc := session.New(api, creds)

	if got := svc.Bootstrap(context.Background()); got != domain.SessionAuthenticated {
		t.Fatalf("Bootstrap = %v, want Authenticated", got)
	}
	user, ok := svc.CurrentUser()
	if !ok || user.Email != "owner@example.com" {
		t.Errorf("CurrentUser = %+v, %v", user, ok)
	}
}

func TestBootstrap_RejectedTokenLogsOut(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	if err := creds.SaveCredential(domain.Credential{AccessToken: "stale"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}
	api := &fakeAuth{
		currentUser: func(ctx context.Context) (domain.User, error) {
			_ = creds.ClearCredential() // the 401 interceptor clears first
			return domain.User{}, unauthorizedErr()
		},
	}
	svc := session.New(api, creds)

	if got := svc.Bootstrap(context.Background()); got != domain.SessionUnauthenticated {
		t.Errorf("Bootstrap = %v, want Unauthenticated", got)
	}
	if _, ok, _ := creds.LoadCredential(); ok {
		t.Error("credential survived a rejected validation")
	}
}

func TestBootstrap_UnreachableBackendFails(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	if err := creds.SaveCredential(domain.Credential{AccessToken: "at"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}
	api := &fakeAuth{
		currentUser: func(ctx context.Context) (domain.User, error) {
			return domain.User{}, &backend.Error{
				Op:   "CurrentUser",
				Kind: backend.KindConnectivity,
				Err:  errors.New("connection refused"),
			}
		},
	}
	svc := session.New(api, creds)

	if got := svc.Bootstrap(context.Background()); got != domain.SessionFailed {
		t.Errorf("Bootstrap = %v, want Failed", got)
	}
	if svc.IsAuthenticated() {
		t.Error("IsAuthenticated = true after failed validation")
	}
	if _, ok, _ := creds.LoadCredential(); ok {
		t.Error("credential survived a failed validation")
	}
}

func TestLogin_SuccessPersistsTokenPair(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	api := &fakeAuth{
		login: func(ctx context.Context, email, password string) (domain.AuthPayload, error) {
			return authPayload(email), nil
		},
	}
	svc := session.New(api, creds)

	res := svc.Login(context.Background(), "owner@example.com", "secret")
	if !res.OK {
		t.Fatalf("Login failed: %s", res.Message)
	}
	if svc.State() != domain.SessionAuthenticated {
		t.Errorf("State = %v, want Authenticated", svc.State())
	}
	cred, ok, err := creds.LoadCredential()
	if err != nil || !ok {
		t.Fatalf("LoadCredential: %v, %v", ok, err)
	}
	if cred.AccessToken != "at-new" || cred.RefreshToken != "rt-new" {
		t.Errorf("persisted credential = %+v", cred)
	}
}

func TestLogin_FailureKeepsMessageAndState(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	api := &fakeAuth{
		login: func(ctx context.Context, email, password string) (domain.AuthPayload, error) {
			return domain.AuthPayload{}, &backend.Error{
				Op:     "Login",
				Kind:   backend.KindServer,
				Status: http.StatusBadRequest,
				Err:    errors.New("Incorrect email or password"),
			}
		},
	}
	svc := session.New(api, creds)

	res := svc.Login(context.Background(), "owner@example.com", "wrong")
	if res.OK {
		t.Fatal("Login succeeded with bad password")
	}
	if res.Message != "Incorrect email or password" {
		t.Errorf("Message = %q", res.Message)
	}
	if svc.State() != domain.SessionUnauthenticated {
		t.Errorf("State = %v, want Unauthenticated", svc.State())
	}
	if _, ok, _ := creds.LoadCredential(); ok {
		t.Error("credential persisted after failed login")
	}
}

func TestLogout_DiscardsInFlightLogin(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	started := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAuth{
		login: func(ctx context.Context, email, password string) (domain.AuthPayload, error) {
			close(started)
			<-release
			return authPayload(email), nil
		},
	}
	svc := session.New(api, creds)

	done := make(chan domain.Result, 1)
	go func() {
		done <- svc.Login(context.Background(), "owner@example.com", "secret")
	}()

	<-started
	svc.Logout(context.Background())
	close(release)

	select {
	case res := <-done:
		if res.OK {
			t.Error("stale login response was applied")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("login did not return")
	}
	if svc.State() != domain.SessionUnauthenticated {
		t.Errorf("State = %v, want Unauthenticated", svc.State())
	}
	if _, ok, _ := creds.LoadCredential(); ok {
		t.Error("stale login response repopulated the credential store")
	}
}

func TestLogout_StoreAndStateMoveTogether(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	api := &fakeAuth{
		login: func(ctx context.Context, email, password string) (domain.AuthPayload, error) {
			return authPayload(email), nil
		},
	}
	svc := session.New(api, creds)

	// Whichever way a login and a logout interleave, the in-memory state
	// and the credential store must land on the same side: a session that
	// reports authenticated has a persisted token, and one that does not
	// has none.
	for i := 0; i < 100; i++ {
		done := make(chan struct{})
		go func() {
			svc.Login(context.Background(), "owner@example.com", "secret")
			close(done)
		}()
		svc.Logout(context.Background())
		<-done

		_, found, err := creds.LoadCredential()
		if err != nil {
			t.Fatalf("LoadCredential: %v", err)
		}
		if svc.IsAuthenticated() != found {
			t.Fatalf("round %d: authenticated=%v but credential present=%v",
				i, svc.IsAuthenticated(), found)
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	api := &fakeAuth{
		login: func(ctx context.Context, email, password string) (domain.AuthPayload, error) {
			return authPayload(email), nil
		},
		updateProfile: func(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
			return domain.User{ID: "u1", Email: "owner@example.com", FullName: update.FullName}, nil
		},
	}
	svc := session.New(api, creds)

	if res := svc.UpdateProfile(context.Background(), domain.ProfileUpdate{}); res.OK {
		t.Error("UpdateProfile succeeded while signed out")
	}

	if res := svc.Login(context.Background(), "owner@example.com", "secret"); !res.OK {
		t.Fatalf("Login failed: %s", res.Message)
	}
	res := svc.UpdateProfile(context.Background(), domain.ProfileUpdate{FullName: "New Name"})
	if !res.OK {
		t.Fatalf("UpdateProfile failed: %s", res.Message)
	}
	user, _ := svc.CurrentUser()
	if user.FullName != "New Name" {
		t.Errorf("FullName = %q, want %q", user.FullName, "New Name")
	}
	// The token pair is untouched by a profile update.
	cred, _, _ := creds.LoadCredential()
	if cred.AccessToken != "at-new" {
		t.Errorf("AccessToken = %q changed by profile update", cred.AccessToken)
	}
}

func TestRefresh(t *testing.T) {
	creds := store.NewCredentialFileStore(t.TempDir())
	api := &fakeAuth{
		refreshToken: func(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
			if refreshToken != "rt-old" {
				t.Errorf("refreshToken = %q, want rt-old", refreshToken)
			}
			return domain.TokenPair{AccessToken: "at-2", RefreshToken: "rt-2"}, nil
		},
	}
	svc := session.New(api, creds)

	if res := svc.Refresh(context.Background()); res.OK {
		t.Error("Refresh succeeded without a stored refresh token")
	}

	if err := creds.SaveCredential(domain.Credential{AccessToken: "at-old", RefreshToken: "rt-old"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}
	if res := svc.Refresh(context.Background()); !res.OK {
		t.Fatalf("Refresh failed: %s", res.Message)
	}
	cred, _, _ := creds.LoadCredential()
	if cred.AccessToken != "at-2" || cred.RefreshToken != "rt-2" {
		t.Errorf("credential after refresh = %+v", cred)
	}
}
