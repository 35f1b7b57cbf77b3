package models

import "time"

type Session struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	IsSuperadmin bool      `json:"is_superadmin"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Identity is the user as known by the identity provider.
type Identity struct {
	ID            string
	Email         string
	EmailVerified bool
}
