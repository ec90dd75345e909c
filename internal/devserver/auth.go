package devserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"ledgerdesk/internal/domain"
)

const (
	accessTTL  = 30 * time.Minute
	refreshTTL = 7 * 24 * time.Hour

	claimAccess  = "access"
	claimRefresh = "refresh"

	msgBadToken = "Could not validate credentials"
)

const userKey = "devserver.user"

func (s *Server) mintToken(userID domain.UserID, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"type": typ,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *Server) mintTokenPair(userID domain.UserID) (domain.TokenPair, error) {
	access, err := s.mintToken(userID, claimAccess, accessTTL)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.mintToken(userID, claimRefresh, refreshTTL)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int(accessTTL / time.Second),
	}, nil
}

// verifyToken parses a signed token and returns its subject if the type
// claim matches.
func (s *Server) verifyToken(raw, wantType string) (domain.UserID, error) {
	token, err := jwt.Parse(
		raw,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	if typ, _ := claims["type"].(string); typ != wantType {
		return "", errors.New("wrong token type")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("missing subject")
	}
	return domain.UserID(sub), nil
}

// requireAuth rejects requests without a valid access token and stashes
// the resolved user on the context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return fail(c, http.StatusUnauthorized, msgBadToken)
		}
		userID, err := s.verifyToken(raw, claimAccess)
		if err != nil {
			return fail(c, http.StatusUnauthorized, msgBadToken)
		}
		user, ok := s.store.UserByID(userID)
		if !ok || !user.IsActive {
			return fail(c, http.StatusUnauthorized, msgBadToken)
		}
		c.Set(userKey, user)
		return next(c)
	}
}

func currentUser(c echo.Context) domain.User {
	user, _ := c.Get(userKey).(domain.User)
	return user
}

// --- handlers ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	user, hash, found := s.store.UserByEmail(req.Email)
	if !found || bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		// Not a 401: that status is reserved for rejected bearer tokens,
		// which clients treat as session expiry.
		return fail(c, http.StatusBadRequest, "Incorrect email or password")
	}
	if !user.IsActive {
		return fail(c, http.StatusForbidden, "Account is deactivated")
	}
	pair, err := s.mintTokenPair(user.ID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not issue tokens")
	}
	s.store.TouchLogin(user.ID)
	return ok(c, http.StatusOK, "Login successful", domain.AuthPayload{User: user, Token: pair})
}

// checkPassword enforces the same strength rules on registration and
// password changes: at least 8 characters with an upper-case letter, a
// lower-case letter and a digit.
func checkPassword(password string) (string, bool) {
	if len(password) < 8 {
		return "Password must be at least 8 characters", false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return "Password must contain an upper-case letter, a lower-case letter and a digit", false
	}
	return "", true
}

func (s *Server) handleRegister(c echo.Context) error {
	var reg domain.Registration
	if err := c.Bind(&reg); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if reg.Email == "" || !strings.Contains(reg.Email, "@") {
		return fail(c, http.StatusBadRequest, "A valid email is required")
	}
	if reg.FullName == "" {
		return fail(c, http.StatusBadRequest, "Full name is required")
	}
	if msg, valid := checkPassword(reg.Password); !valid {
		return fail(c, http.StatusBadRequest, msg)
	}
	if reg.Password != reg.ConfirmPassword {
		return fail(c, http.StatusBadRequest, "Passwords do not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not hash password")
	}
	user, created := s.store.CreateUser(domain.User{
		Email:       reg.Email,
		FullName:    reg.FullName,
		CompanyName: reg.CompanyName,
		Phone:       reg.Phone,
	}, hash)
	if !created {
		return fail(c, http.StatusBadRequest, "Email already registered")
	}
	pair, err := s.mintTokenPair(user.ID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not issue tokens")
	}
	return ok(c, http.StatusCreated, "Registration successful", domain.AuthPayload{User: user, Token: pair})
}

func (s *Server) handleLogout(c echo.Context) error {
	// Tokens are stateless; logout only acknowledges so clients can drop
	// their copy.
	return ok(c, http.StatusOK, "Logged out", nil)
}

func (s *Server) handleMe(c echo.Context) error {
	return ok(c, http.StatusOK, "", domain.UserPayload{User: currentUser(c)})
}

func (s *Server) handleUpdateMe(c echo.Context) error {
	var update domain.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	user, found := s.store.UpdateUser(currentUser(c).ID, update)
	if !found {
		return fail(c, http.StatusNotFound, "User not found")
	}
	return ok(c, http.StatusOK, "Profile updated", domain.UserPayload{User: user})
}

func (s *Server) handleChangePassword(c echo.Context) error {
	var change domain.PasswordChange
	if err := c.Bind(&change); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	user := currentUser(c)
	hash, found := s.store.PasswordHash(user.ID)
	if !found {
		return fail(c, http.StatusNotFound, "User not found")
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(change.CurrentPassword)) != nil {
		return fail(c, http.StatusBadRequest, "Current password is incorrect")
	}
	if msg, valid := checkPassword(change.NewPassword); !valid {
		return fail(c, http.StatusBadRequest, msg)
	}
	if change.NewPassword != change.ConfirmNewPassword {
		return fail(c, http.StatusBadRequest, "Passwords do not match")
	}
	newHash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not hash password")
	}
	s.store.SetPasswordHash(user.ID, newHash)
	return ok(c, http.StatusOK, "Password changed", nil)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (s *Server) handleRefresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, err := s.verifyToken(req.RefreshToken, claimRefresh)
	if err != nil {
		return fail(c, http.StatusUnauthorized, msgBadToken)
	}
	if _, found := s.store.UserByID(userID); !found {
		return fail(c, http.StatusUnauthorized, msgBadToken)
	}
	pair, err := s.mintTokenPair(userID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Could not issue tokens")
	}
	return ok(c, http.StatusOK, "Token refreshed", domain.TokenPayload{Token: pair})
}
