package types

// TokenPair is the token object issued on login, registration and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// Credential is the pair of bearer strings the client persists between runs.
// Both fields are opaque; the client never inspects their contents.
type Credential struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// IsZero reports whether no token is stored.
func (c Credential) IsZero() bool { return c.AccessToken == "" && c.RefreshToken == "" }

// AuthPayload is the data object of login and register responses.
type AuthPayload struct {
	User  User      `json:"user"`
	Token TokenPair `json:"token"`
}

// UserPayload is the data object of /auth/me and profile-update responses.
type UserPayload struct {
	User User `json:"user"`
}

// TokenPayload is the data object of refresh responses.
type TokenPayload struct {
	Token TokenPair `json:"token"`
}
