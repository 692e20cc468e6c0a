package adapter

import "github.com/pawz-connect/backend/internal/domain/valueobject"

// PasswordService defines the interface for password hashing and strength checks.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error

	// EvaluateStrength returns the strength verdict of a candidate password.
	EvaluateStrength(password string) valueobject.PasswordStrength

	// EntropyBits estimates the brute-force entropy of a password.
	EntropyBits(password string) float64
}
