package dto

import "time"

// TouristRegisterRequest payload for new tourist accounts.
type TouristRegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest payload for tourist and business-admin login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SuperAdminLoginRequest payload for platform operator login.
type SuperAdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
