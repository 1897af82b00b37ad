// Package models defines server-side records persisted in the database and
// returned by the admin API.
package models

// Admin is an operator account of the admin API.
type Admin struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         string
}
