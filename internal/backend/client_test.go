package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledgerdesk/internal/backend"
	"ledgerdesk/internal/domain"
	"ledgerdesk/internal/store"
)

func newTestStore(t *testing.T) *store.CredentialFileStore {
	t.Helper()
	return store.NewCredentialFileStore(t.TempDir())
}

func okEnvelope(data any) map[string]any {
	return map[string]any{"success": true, "message": "ok", "data": data}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestClient_BearerDecoration(t *testing.T) {
	creds := newTestStore(t)
	if err := creds.SaveCredential(domain.Credential{AccessToken: "tok-123"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, okEnvelope(map[string]any{"user": map[string]any{"id": "u1"}}))
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL, creds, backend.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.CurrentUser(context.Background()); err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if want := "Bearer tok-123"; gotAuth != want {
		t.Errorf("Authorization = %q, want %q", gotAuth, want)
	}
}

func TestClient_NoHeaderWithoutCredential(t *testing.T) {
	creds := newTestStore(t)

	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		writeJSON(t, w, http.StatusOK, okEnvelope(map[string]any{"user": map[string]any{"id": "u1"}}))
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL, creds, backend.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.CurrentUser(context.Background()); err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if sawHeader {
		t.Error("Authorization header sent without a stored credential")
	}
}

func TestClient_UnauthorizedClearsCredentialAndFiresHook(t *testing.T) {
	creds := newTestStore(t)
	if err := creds.SaveCredential(domain.Credential{AccessToken: "stale"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{
			"success": false, "message": "Could not validate credentials",
		})
	}))
	defer srv.Close()

	hookFired := 0
	client, err := backend.New(srv.URL, creds, backend.Options{
		OnUnauthorized: func() { hookFired++ },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.CurrentUser(context.Background())
	if !backend.IsUnauthorized(err) {
		t.Fatalf("CurrentUser error = %v, want unauthorized", err)
	}
	if hookFired != 1 {
		t.Errorf("hook fired %d times, want 1", hookFired)
	}
	if _, ok, _ := creds.LoadCredential(); ok {
		t.Error("credential still present after 401")
	}
	if got, want := backend.Message(err), "Your session has expired. Please log in again."; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}

	// Interception is endpoint-agnostic: any authenticated call trips it.
	if err := creds.SaveCredential(domain.Credential{AccessToken: "stale"}); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}
	if _, err := client.ListInvoices(context.Background(), domain.InvoiceFilter{}); !backend.IsUnauthorized(err) {
		t.Fatalf("ListInvoices error = %v, want unauthorized", err)
	}
	if hookFired != 2 {
		t.Errorf("hook fired %d times, want 2", hookFired)
	}
	if _, ok, _ := creds.LoadCredential(); ok {
		t.Error("credential still present after second 401")
	}
}

func TestClient_ConnectivityError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(t, w, http.StatusOK, okEnvelope(nil))
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL, newTestStore(t), backend.Options{
		HTTPClient: &http.Client{Timeout: 20 * time.Millisecond},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.CurrentUser(context.Background())
	var be *backend.Error
	if !errors.As(err, &be) {
		t.Fatalf("error = %v, want *backend.Error", err)
	}
	if be.Kind != backend.KindConnectivity {
		t.Errorf("Kind = %v, want KindConnectivity", be.Kind)
	}
	if got, want := backend.Message(err), "Network error. Please check your connection and try again."; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestClient_EnvelopeFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": false, "message": "Invoice not found",
		})
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL, newTestStore(t), backend.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.GetInvoice(context.Background(), "inv-1")
	if err == nil {
		t.Fatal("GetInvoice: want error for success=false envelope")
	}
	if got, want := backend.Message(err), "Invoice not found"; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestClient_ServerErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{
			"success": false, "detail": "database unavailable",
		})
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL, newTestStore(t), backend.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.CurrentUser(context.Background())
	var be *backend.Error
	if !errors.As(err, &be) {
		t.Fatalf("error = %v, want *backend.Error", err)
	}
	if be.Kind != backend.KindServer {
		t.Errorf("Kind = %v, want KindServer", be.Kind)
	}
	if be.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", be.Status)
	}
}

func TestClient_LoginUnwrapsUserAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "owner@example.com" {
			t.Errorf("email = %q", body["email"])
		}
		writeJSON(t, w, http.StatusOK, okEnvelope(map[string]any{
			"user": map[string]any{"id": "u1", "email": "owner@example.com"},
			"token": map[string]any{
				"access_token":  "at",
				"refresh_token": "rt",
				"token_type":    "bearer",
				"expires_in":    1800,
			},
		}))
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL, newTestStore(t), backend.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	payload, err := client.Login(context.Background(), "owner@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if payload.User.Email != "owner@example.com" {
		t.Errorf("User.Email = %q", payload.User.Email)
	}
	if payload.Token.AccessToken != "at" || payload.Token.RefreshToken != "rt" {
		t.Errorf("Token = %+v", payload.Token)
	}
	if payload.Token.ExpiresIn != 1800 {
		t.Errorf("ExpiresIn = %d, want 1800", payload.Token.ExpiresIn)
	}
}

func TestClient_PaginationRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("status"); got != "overdue" {
			t.Errorf("status query = %q", got)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "inv-1", "invoice_number": "INV-1700000000"},
			},
			"pagination": map[string]any{
				"page": 2, "page_size": 10, "total_items": 11,
				"total_pages": 2, "has_next": false, "has_prev": true,
			},
		})
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL, newTestStore(t), backend.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page, err := client.ListInvoices(context.Background(), domain.InvoiceFilter{
		Page: 2, PageSize: 10, Status: "overdue",
	})
	if err != nil {
		t.Fatalf("ListInvoices: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].InvoiceNumber != "INV-1700000000" {
		t.Errorf("Items = %+v", page.Items)
	}
	if !page.Pagination.HasPrev || page.Pagination.HasNext {
		t.Errorf("Pagination = %+v", page.Pagination)
	}
}
