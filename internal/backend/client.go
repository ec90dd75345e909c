package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ledgerdesk/internal/domain"
	domaintypes "ledgerdesk/internal/domain/types"
)

const (
	defaultTimeout = 10 * time.Second
	apiPrefix      = "/api"
)

// Client talks to the SaaS backend. It is safe for concurrent use.
type Client struct {
	base           *url.URL
	httpClient     *http.Client
	creds          domain.CredentialStore
	onUnauthorized func()
}

// Options overrides Client dependencies.
type Options struct {
	// HTTPClient defaults to a client with a 10 second timeout.
	HTTPClient *http.Client
	// OnUnauthorized runs after a 401 has cleared the credential store. The
	// CLI uses it to tell the user to log in again; a browser shell would
	// navigate to the login page.
	OnUnauthorized func()
}

// New creates a backend client for the given base URL. The /api prefix is
// appended here so endpoint wrappers carry contract paths verbatim.
func New(baseURL string, creds domain.CredentialStore, opts Options) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		base:           parsed,
		httpClient:     httpClient,
		creds:          creds,
		onUnauthorized: opts.OnUnauthorized,
	}, nil
}

// do performs one request against the backend: decorate with the persisted
// bearer token, send, and intercept 401 before the caller sees the response.
func (c *Client) do(
	ctx context.Context,
	op, method, path string,
	query url.Values,
	payload any,
) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return nil, wrapError(op, KindLocal, err)
		}
		body = buf
	}

	u := c.base.String() + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, wrapError(op, KindLocal, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// No Authorization header when no token is stored.
	if cred, ok, _ := c.creds.LoadCredential(); ok && cred.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(op, KindConnectivity, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Fail closed: the session is gone no matter which endpoint this was.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		_ = c.creds.ClearCredential()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, &Error{
			Op:     op,
			Kind:   KindUnauthorized,
			Status: http.StatusUnauthorized,
			Err:    errors.New("unauthorized"),
		}
	}
	return resp, nil
}

// decodeEnvelope unwraps a {success, data, message} response: Data on
// success, a KindServer error carrying the message otherwise.
func decodeEnvelope[T any](op string, resp *http.Response) (T, error) {
	var zero T
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return zero, serverError(op, resp)
	}
	var env domaintypes.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, wrapError(op, KindLocal, err)
	}
	if !env.Success {
		return zero, &Error{
			Op:     op,
			Kind:   KindServer,
			Status: resp.StatusCode,
			Err:    errors.New(failureMessage(env.Message, env.Detail)),
		}
	}
	return env.Data, nil
}

// decodePage unwraps a paginated list response.
func decodePage[T any](op string, resp *http.Response) (domaintypes.Page[T], error) {
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return domaintypes.Page[T]{}, serverError(op, resp)
	}
	var env domaintypes.PagedEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return domaintypes.Page[T]{}, wrapError(op, KindLocal, err)
	}
	if !env.Success {
		return domaintypes.Page[T]{}, &Error{
			Op:     op,
			Kind:   KindServer,
			Status: resp.StatusCode,
			Err:    errors.New(failureMessage(env.Message, env.Detail)),
		}
	}
	return domaintypes.Page[T]{Items: env.Data, Pagination: env.Pagination}, nil
}

// decodeDiscard consumes an envelope whose data the caller does not need.
func decodeDiscard(op string, resp *http.Response) error {
	_, err := decodeEnvelope[json.RawMessage](op, resp)
	return err
}

// serverError extracts a displayable message from a non-2xx response body.
func serverError(op string, resp *http.Response) error {
	var env domaintypes.Envelope[json.RawMessage]
	msg := ""
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil {
		msg = failureMessage(env.Message, env.Detail)
	}
	if msg == "" || msg == msgServer {
		msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return &Error{Op: op, Kind: KindServer, Status: resp.StatusCode, Err: errors.New(msg)}
}

func failureMessage(message, detail string) string {
	if message != "" {
		return message
	}
	if detail != "" {
		return detail
	}
	return msgServer
}

// getJSON issues a GET and unwraps the envelope.
func getJSON[T any](
	ctx context.Context,
	c *Client,
	op, path string,
	query url.Values,
) (T, error) {
	resp, err := c.do(ctx, op, http.MethodGet, path, query, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeEnvelope[T](op, resp)
}

// getPage issues a GET and unwraps a paginated envelope.
func getPage[T any](
	ctx context.Context,
	c *Client,
	op, path string,
	query url.Values,
) (domaintypes.Page[T], error) {
	resp, err := c.do(ctx, op, http.MethodGet, path, query, nil)
	if err != nil {
		return domaintypes.Page[T]{}, err
	}
	return decodePage[T](op, resp)
}

// sendJSON issues a request with a JSON body and unwraps the envelope.
func sendJSON[T any](
	ctx context.Context,
	c *Client,
	op, method, path string,
	query url.Values,
	payload any,
) (T, error) {
	resp, err := c.do(ctx, op, method, path, query, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeEnvelope[T](op, resp)
}

// Compile-time assertion that Client implements domain.BackendClient.
var _ domain.BackendClient = (*Client)(nil)
