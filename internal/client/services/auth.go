package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

const (
	keyToken    = "token"
	keyUsername = "username"
	keyServer   = "server"
)

// Session is the locally stored login. Role and ExpiresAt are read from the
// token without verifying its signature; the server remains the authority.
type Session struct {
	Username  string
	Server    string
	Token     string
	Role      string
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type AuthService struct {
	client client.Client
	meta   metadata.Repository
	server string
	logger logging.Logger
	now    func() time.Time
}

func NewAuthService(c client.Client, meta metadata.Repository, server string, logger logging.Logger) *AuthService {
	return &AuthService{client: c, meta: meta, server: server, logger: logger.With("module", "auth"), now: time.Now}
}

// Login exchanges credentials for a token and stores it.
func (a *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := a.meta.SetMany(ctx, map[string]string{
		keyToken:    token,
		keyUsername: username,
		keyServer:   a.server,
	}); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	a.logger.Info(ctx, "logged in", "username", username)
	return sessionFromToken(username, a.server, token), nil
}

// Logout forgets the stored token. The username is kept as a login hint.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.meta.Delete(ctx, keyToken); err != nil {
		return fmt.Errorf("drop session: %w", err)
	}
	return nil
}

// Session returns the stored session or ErrNotLoggedIn. A token stored for
// a different server does not count.
func (a *AuthService) Session(ctx context.Context) (*Session, error) {
	all, err := a.meta.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	token := all[keyToken]
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	if srv := all[keyServer]; srv != "" && srv != a.server {
		return nil, ErrNotLoggedIn
	}
	return sessionFromToken(all[keyUsername], a.server, token), nil
}

// LastUsername is the name of the last operator who logged in, if any.
func (a *AuthService) LastUsername(ctx context.Context) string {
	v, _, err := a.meta.Get(ctx, keyUsername)
	if err != nil {
		return ""
	}
	return v
}

// Check reports whether a non-expired token is stored.
func (a *AuthService) Check(ctx context.Context) bool {
	s, err := a.Session(ctx)
	if err != nil {
		return false
	}
	return !s.Expired(a.now())
}

// Authorize returns ctx carrying the stored token. An expired token is
// dropped and reported as ErrNotLoggedIn.
func (a *AuthService) Authorize(ctx context.Context) (context.Context, error) {
	s, err := a.Session(ctx)
	if err != nil {
		return ctx, err
	}
	if s.Expired(a.now()) {
		_ = a.Logout(ctx)
		return ctx, ErrNotLoggedIn
	}
	return client.WithAccessToken(ctx, s.Token), nil
}

// HandleError drops the session when err says the server rejected the
// token, and reports whether it did.
func (a *AuthService) HandleError(ctx context.Context, err error) bool {
	if !errors.Is(err, client.ErrUnauthorized) {
		return false
	}
	if lerr := a.Logout(ctx); lerr != nil {
		a.logger.Error(ctx, "drop session", "error", lerr)
	}
	return true
}

func (a *AuthService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func sessionFromToken(username, server, token string) *Session {
	s := &Session{Username: username, Server: server, Token: token}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = role
	}
	if s.Username == "" {
		if login, ok := claims["admin_login"].(string); ok {
			s.Username = login
		}
	}
	return s
}
