// Package common contains constants and sentinel errors shared by the
// operator console and the recipe API server.
package common

// AuthorizationHeader carries the bearer credential on every API call.
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
)

// Admin roles. A manager passes every role check.
const (
	RoleEditor  = "editor"
	RoleManager = "manager"
)

// Multipart field names of the recipe mutation wire contract.
const (
	FieldName         = "name"
	FieldInstructions = "instructions"
	FieldCategory     = "category"
	FieldIngredients  = "ingredients"
	FieldPictures     = "pictures"
	FieldPicsToRemain = "pics_to_remain"
	FieldNeedsAuth    = "needs_auth"
)
