package models

import "time"

// Activation is an app activation code handed out to end users.
type Activation struct {
	ID               int64     `json:"id"`
	ActivationCode   string    `json:"activation_code"`
	ActivationsLimit int       `json:"activations_limit"`
	ExpiresAt        time.Time `json:"expires_at"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}
