// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/pawz-connect/backend/internal/application/adapter"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/domain/valueobject"
)

// CheckPasswordStrengthInput represents the input for a strength check.
type CheckPasswordStrengthInput struct {
	Password string
}

// CheckPasswordStrengthOutput is the verdict plus what a strength meter shows.
type CheckPasswordStrengthOutput struct {
	Verdict       valueobject.PasswordStrength
	MeterFraction float64
	Label         string
	Color         string
	EntropyBits   float64
}

// CheckPasswordStrengthUseCase evaluates a candidate password without storing anything.
type CheckPasswordStrengthUseCase struct {
	passwordService adapter.PasswordService
}

// NewCheckPasswordStrengthUseCase creates a new CheckPasswordStrengthUseCase instance.
func NewCheckPasswordStrengthUseCase(passwordService adapter.PasswordService) *CheckPasswordStrengthUseCase {
	return &CheckPasswordStrengthUseCase{
		passwordService: passwordService,
	}
}

// Execute evaluates the password. It never fails.
func (uc *CheckPasswordStrengthUseCase) Execute(_ context.Context, input CheckPasswordStrengthInput) (*CheckPasswordStrengthOutput, error) {
	verdict := uc.passwordService.EvaluateStrength(input.Password)

	return &CheckPasswordStrengthOutput{
		Verdict:       verdict,
		MeterFraction: verdict.MeterFraction(),
		Label:         verdict.Strength.Label(),
		Color:         verdict.Strength.Color(),
		EntropyBits:   uc.passwordService.EntropyBits(input.Password),
	}, nil
}

// weakPasswordError turns an invalid verdict into the error shown on forms.
func weakPasswordError(verdict valueobject.PasswordStrength) error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeWeakPassword,
		"password does not meet security requirements",
		domainerror.ErrWeakPassword,
	).WithDetails(verdict.Message())
}
