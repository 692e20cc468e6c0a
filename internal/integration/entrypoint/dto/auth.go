// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pawz-connect/backend/internal/application/usecase/auth"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// PasswordStrengthRequest represents the request body for a strength check.
type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// RegisterRequest represents the request body for user registration.
// The password is judged by the strength evaluator rather than binding rules.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password"`
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest represents the request body for forgot password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest represents the request body for password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password"`
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}

// PasswordStrengthResponse is the evaluator verdict plus the meter presentation.
type PasswordStrengthResponse struct {
	IsValid       bool     `json:"is_valid"`
	Score         int      `json:"score"`
	Strength      string   `json:"strength"`
	Feedback      []string `json:"feedback"`
	MeterFraction float64  `json:"meter_fraction"`
	Label         string   `json:"label"`
	Color         string   `json:"color"`
	EntropyBits   float64  `json:"entropy_bits"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         UserResponse     `json:"user"`
	Profile      *ProfileResponse `json:"profile,omitempty"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToPasswordStrengthResponse converts a strength check output to its DTO.
func ToPasswordStrengthResponse(output *auth.CheckPasswordStrengthOutput) PasswordStrengthResponse {
	return PasswordStrengthResponse{
		IsValid:       output.Verdict.IsValid,
		Score:         output.Verdict.Score,
		Strength:      string(output.Verdict.Strength),
		Feedback:      output.Verdict.Feedback,
		MeterFraction: output.MeterFraction,
		Label:         output.Label,
		Color:         output.Color,
		EntropyBits:   output.EntropyBits,
	}
}
