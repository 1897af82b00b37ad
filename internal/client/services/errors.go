// Package services holds the console's use cases: resolving ingredient
// references, submitting recipes, catalog upkeep, the login session and
// activation codes. Services talk to the API through client.Client.
package services

import "errors"

var (
	// ErrValidation marks a draft rejected before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrDependencyCreation marks a failure to create a new ingredient
	// while resolving references. The recipe call is never made.
	ErrDependencyCreation = errors.New("ingredient creation failed")
	// ErrMutation marks a failed recipe create/update call.
	ErrMutation = errors.New("recipe was not saved")
	// ErrNotLoggedIn is returned when no usable session token is stored.
	ErrNotLoggedIn = errors.New("not logged in")
)
