package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names a security-relevant event.
type AuditAction string

const (
	AuditUserSignup          AuditAction = "user_signup"
	AuditUserLogin           AuditAction = "user_login"
	AuditUserLogout          AuditAction = "user_logout"
	AuditAccountDeleted      AuditAction = "account_deleted"
	AuditPasswordReset       AuditAction = "password_reset"
	AuditConsentGranted      AuditAction = "consent_granted"
	AuditConsentRevoked      AuditAction = "consent_revoked"
	AuditHealthRecordCreated AuditAction = "health_record_created"
	AuditHealthRecordDeleted AuditAction = "health_record_deleted"
)

// AuditLog is an append-only trail entry.
type AuditLog struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Action       AuditAction
	ResourceType string
	ResourceID   string
	IPAddress    string
	CreatedAt    time.Time
}

// NewAuditLog creates an entry for userID.
func NewAuditLog(userID uuid.UUID, action AuditAction, resourceType, resourceID, ipAddress string) *AuditLog {
	return &AuditLog{
		ID:           uuid.New(),
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		CreatedAt:    time.Now().UTC(),
	}
}
