package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/server/models"
	"github.com/dmitrijs2005/recipeadmin/internal/server/repositories/repomanager"
)

// ActivationCodeLength is the number of digits in an activation code.
const ActivationCodeLength = 15

// ActivationRequest is the body of a create-code call.
type ActivationRequest struct {
	ActivationsLimit int    `json:"activations_limit"`
	ExpiresInDays    int    `json:"expires_in_days"`
	Description      string `json:"description"`
}

// ActivationService hands out app activation codes.
type ActivationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
	randomCode  func(n int) (string, error)
}

func NewActivationService(db *sql.DB, m repomanager.RepositoryManager) *ActivationService {
	return &ActivationService{db: db, repomanager: m, now: time.Now, randomCode: common.RandomDigits}
}

func (s *ActivationService) List(ctx context.Context) ([]models.Activation, error) {
	return s.repomanager.Activations(s.db).List(ctx)
}

// Create stores a new random code valid for req.ExpiresInDays days.
func (s *ActivationService) Create(ctx context.Context, req ActivationRequest) (*models.Activation, error) {
	if req.ActivationsLimit <= 0 {
		return nil, fmt.Errorf("%w: activations_limit must be positive", common.ErrorValidation)
	}
	if req.ExpiresInDays <= 0 {
		return nil, fmt.Errorf("%w: expires_in_days must be positive", common.ErrorValidation)
	}

	code, err := s.randomCode(ActivationCodeLength)
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	now := s.now().UTC()
	a := &models.Activation{
		ActivationCode:   code,
		ActivationsLimit: req.ActivationsLimit,
		ExpiresAt:        now.AddDate(0, 0, req.ExpiresInDays),
		Description:      strings.TrimSpace(req.Description),
		CreatedAt:        now,
	}
	return s.repomanager.Activations(s.db).Create(ctx, a)
}
