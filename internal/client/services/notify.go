package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
)

// Notify renders err as the single line shown to the operator.
func Notify(err error) string {
	switch {
	case err == nil:
		return "Done."
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	case errors.Is(err, ErrNotLoggedIn):
		return "You are not logged in. Use 'login' first."
	case errors.Is(err, client.ErrUnauthorized):
		return "Session expired. Please log in again."
	case errors.Is(err, client.ErrForbidden):
		return "You do not have permission to do that."
	case errors.Is(err, ErrValidation):
		return "Please fix the form: " + err.Error()
	case errors.Is(err, ErrDependencyCreation):
		return "Could not create a new ingredient, recipe not saved: " + err.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later."
	case errors.Is(err, client.ErrNotFound):
		return "Not found."
	case errors.Is(err, ErrMutation):
		return "Error saving recipe: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
