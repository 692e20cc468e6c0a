package error

import (
	"errors"
	"testing"
)

func TestDomainErrors_WrapAndUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "auth error with cause",
			err:      NewAuthError(ErrCodeEmailExists, "email already exists", ErrEmailAlreadyExists),
			sentinel: ErrEmailAlreadyExists,
			message:  "email already exists: email already exists",
		},
		{
			name:     "pet error without cause",
			err:      NewPetError(ErrCodePetNotFound, "pet not found", nil),
			sentinel: nil,
			message:  "pet not found",
		},
		{
			name:     "usage error",
			err:      NewUsageError(ErrCodeQuotaExceeded, "daily limit reached", ErrQuotaExceeded),
			sentinel: ErrQuotaExceeded,
			message:  "daily limit reached: usage quota exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
			if tt.sentinel != nil && !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("expected error to wrap %v", tt.sentinel)
			}
		})
	}
}

func TestAuthError_WithDetails(t *testing.T) {
	err := NewAuthError(ErrCodeWeakPassword, "password does not meet security requirements", ErrWeakPassword).
		WithDetails("Include at least one number")

	var authErr *AuthError
	if !errors.As(error(err), &authErr) {
		t.Fatal("expected AuthError")
	}
	if authErr.Details != "Include at least one number" {
		t.Errorf("unexpected details %q", authErr.Details)
	}
	if authErr.Code != ErrCodeWeakPassword {
		t.Errorf("unexpected code %s", authErr.Code)
	}
}

func TestIsPermanentEmailFailure(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		permanent bool
	}{
		{"provider rejected", NewEmailError(ErrCodePermanentEmailFailure, "rejected", nil), true},
		{"provider busy", NewEmailError(ErrCodeTemporaryEmailFailure, "busy", nil), false},
		{"unknown template", NewEmailError(ErrCodeUnknownTemplate, "unknown template", ErrUnknownEmailTemplate), true},
		{"reset email without link", NewEmailError(ErrCodeMissingResetLink, "no link", ErrMissingResetLink), true},
		{"plain error", errors.New("connection reset"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPermanentEmailFailure(tt.err); got != tt.permanent {
				t.Errorf("IsPermanentEmailFailure() = %v, want %v", got, tt.permanent)
			}
		})
	}
}
