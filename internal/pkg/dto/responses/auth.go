package responses

import "time"

type Login struct {
	Token        string    `json:"token"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	IsSuperadmin bool      `json:"is_superadmin"`
	ExpiresAt    time.Time `json:"expires_at"`
}
