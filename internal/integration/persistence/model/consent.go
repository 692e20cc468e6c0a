package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// ConsentModel represents the consents table. Rows are never updated.
type ConsentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	ConsentType string    `gorm:"type:varchar(30);not null"`
	Granted     bool      `gorm:"not null"`
	IPAddress   string    `gorm:"type:varchar(45)"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the ConsentModel.
func (ConsentModel) TableName() string {
	return "consents"
}

// ToEntity converts a ConsentModel to a domain Consent entity.
func (m *ConsentModel) ToEntity() *entity.Consent {
	return &entity.Consent{
		ID:          m.ID,
		UserID:      m.UserID,
		ConsentType: entity.ConsentType(m.ConsentType),
		Granted:     m.Granted,
		IPAddress:   m.IPAddress,
		CreatedAt:   m.CreatedAt,
	}
}

// ConsentModelFromEntity creates a ConsentModel from a domain Consent entity.
func ConsentModelFromEntity(consent *entity.Consent) *ConsentModel {
	return &ConsentModel{
		ID:          consent.ID,
		UserID:      consent.UserID,
		ConsentType: string(consent.ConsentType),
		Granted:     consent.Granted,
		IPAddress:   consent.IPAddress,
		CreatedAt:   consent.CreatedAt,
	}
}

// AuditLogModel represents the audit_logs table. Entries outlive the user they
// refer to.
type AuditLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Action       string    `gorm:"type:varchar(50);index;not null"`
	ResourceType string    `gorm:"type:varchar(50)"`
	ResourceID   string    `gorm:"type:varchar(100)"`
	IPAddress    string    `gorm:"type:varchar(45)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the AuditLogModel.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// AuditLogModelFromEntity creates an AuditLogModel from a domain AuditLog entity.
func AuditLogModelFromEntity(log *entity.AuditLog) *AuditLogModel {
	return &AuditLogModel{
		ID:           log.ID,
		UserID:       log.UserID,
		Action:       string(log.Action),
		ResourceType: log.ResourceType,
		ResourceID:   log.ResourceID,
		IPAddress:    log.IPAddress,
		CreatedAt:    log.CreatedAt,
	}
}
