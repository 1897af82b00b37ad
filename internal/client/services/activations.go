package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

// ActivationService issues and lists mobile app activation codes.
// The server only allows managers here.
type ActivationService struct {
	client client.Client
}

func NewActivationService(c client.Client) *ActivationService {
	return &ActivationService{client: c}
}

func (s *ActivationService) List(ctx context.Context) ([]models.Activation, error) {
	return s.client.ListActivations(ctx)
}

func (s *ActivationService) Create(ctx context.Context, limit, expiresInDays int, description string) (*models.Activation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: activations limit must be positive", ErrValidation)
	}
	if expiresInDays <= 0 {
		return nil, fmt.Errorf("%w: expiry must be at least one day", ErrValidation)
	}
	return s.client.CreateActivationCode(ctx, models.ActivationCodeRequest{
		ActivationsLimit: limit,
		ExpiresInDays:    expiresInDays,
		Description:      description,
	})
}
