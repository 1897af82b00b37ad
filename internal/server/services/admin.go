// Package services contains the business logic of the recipe API. This file
// implements AdminService: operator accounts, login and token checks.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/auth"
	"github.com/dmitrijs2005/recipeadmin/internal/server/config"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/repomanager"
)

// AdminService provides authentication-related operations:
// - CreateAdmin / SetPassword: manage operator accounts
// - Login: verify credentials and mint an access token
// - Authorize: resolve a presented token to the current account
type AdminService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	cost                  int
}

// NewAdminService constructs an AdminService using repositories and server config.
func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AdminService {
	return &AdminService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		cost:                  bcrypt.DefaultCost,
	}
}

// ValidRole reports whether role is one the API knows.
func ValidRole(role string) bool {
	return role == common.RoleEditor || role == common.RoleManager
}

// CreateAdmin stores a new account with a bcrypt hash of password.
func (s *AdminService) CreateAdmin(ctx context.Context, login, password, role string) (*models.Admin, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login and password are required", common.ErrorValidation)
	}
	if !ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin, err := s.repomanager.Admins(s.db).Create(ctx, &models.Admin{Login: login, PasswordHash: string(hash), Role: role})
	if err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}
	return admin, nil
}

// SetPassword replaces the password of an existing account.
func (s *AdminService) SetPassword(ctx context.Context, login, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repomanager.Admins(s.db).SetPassword(ctx, login, string(hash))
}

// Login checks the credentials and returns a signed access token. Unknown
// logins and wrong passwords both yield common.ErrorUnauthorized.
func (s *AdminService) Login(ctx context.Context, login, password string) (string, error) {
	admin, err := s.repomanager.Admins(s.db).GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnCompare(password)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(admin.Login, admin.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authorize verifies token and loads the account it names, so role changes
// and removed accounts take effect before the token expires.
func (s *AdminService) Authorize(ctx context.Context, token string) (*models.Admin, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	admin, err := s.repomanager.Admins(s.db).GetByLogin(ctx, claims.AdminLogin)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return admin, nil
}

// HasRole reports whether admin may act as role. A manager passes every check.
func HasRole(admin *models.Admin, role string) bool {
	if admin == nil {
		return false
	}
	return admin.Role == common.RoleManager || admin.Role == role
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// burnCompare spends one bcrypt comparison so unknown logins take as long
// as wrong passwords.
func (s *AdminService) burnCompare(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("recipe-admin"), s.cost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
