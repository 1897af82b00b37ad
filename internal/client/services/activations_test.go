package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

func TestActivationCreate(t *testing.T) {
	fc := &fakeClient{}
	s := NewActivationService(fc)

	act, err := s.Create(context.Background(), 10, 30, "spring promo")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345", act.ActivationCode)
	assert.Equal(t, models.ActivationCodeRequest{ActivationsLimit: 10, ExpiresInDays: 30, Description: "spring promo"}, fc.lastActReq)
}

func TestActivationCreate_Validation(t *testing.T) {
	fc := &fakeClient{}
	s := NewActivationService(fc)

	_, err := s.Create(context.Background(), 0, 30, "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.Create(context.Background(), 1, 0, "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fc.calls)
}

func TestNotify(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "Done."},
		{ErrNotLoggedIn, "You are not logged in. Use 'login' first."},
		{fmt.Errorf("%w: %w", ErrMutation, client.ErrUnauthorized), "Session expired. Please log in again."},
		{client.ErrForbidden, "You do not have permission to do that."},
		{fmt.Errorf("%w: %w", ErrMutation, client.ErrUnavailable), "Server unavailable, try again later."},
		{client.ErrNotFound, "Not found."},
		{context.Canceled, "Cancelled."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Notify(tt.err))
	}

	assert.Contains(t, Notify(fmt.Errorf("%w: %w", ErrValidation, models.ErrMissingUnit)), "Please fix the form")
	assert.Contains(t, Notify(fmt.Errorf("%w: %q: %w", ErrDependencyCreation, "Dill", errBoom)), "Dill")
	assert.Contains(t, Notify(fmt.Errorf("%w: %w", ErrMutation, errBoom)), "Error saving recipe")
	assert.Equal(t, "Error: boom", Notify(errBoom))
}
