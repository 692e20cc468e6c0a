package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// EmailQueueModel is a row of the outbound email queue. The worker polls
// pending rows through idx_email_queue_due; member rows are found through
// user_id when an account is deleted.
type EmailQueueModel struct {
	ID             uuid.UUID                `gorm:"type:uuid;primaryKey"`
	UserID         *uuid.UUID               `gorm:"type:uuid;index"`
	TemplateType   entity.EmailTemplateType `gorm:"type:varchar(50);not null"`
	RecipientEmail string                   `gorm:"type:varchar(255);not null"`
	RecipientName  string                   `gorm:"type:varchar(255)"`
	Subject        string                   `gorm:"type:varchar(500);not null"`
	TemplateData   map[string]any           `gorm:"type:jsonb;serializer:json;not null"`
	Status         entity.EmailStatus       `gorm:"type:varchar(20);not null;default:'pending';index:idx_email_queue_due,priority:1"`
	Attempts       int                      `gorm:"not null;default:0"`
	MaxAttempts    int                      `gorm:"not null;default:3"`
	LastError      string                   `gorm:"type:text"`
	ResendID       string                   `gorm:"type:varchar(100)"`
	CreatedAt      time.Time                `gorm:"not null"`
	ScheduledAt    time.Time                `gorm:"not null;index:idx_email_queue_due,priority:2"`
	ProcessedAt    *time.Time               `gorm:"type:timestamptz"`
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts the row to a domain EmailJob.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := m.TemplateData
	if data == nil {
		data = map[string]any{}
	}

	return &entity.EmailJob{
		ID:             m.ID,
		UserID:         m.UserID,
		TemplateType:   m.TemplateType,
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   data,
		Status:         m.Status,
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// EmailQueueModelFromEntity creates a row from a domain EmailJob.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	return &EmailQueueModel{
		ID:             job.ID,
		UserID:         job.UserID,
		TemplateType:   job.TemplateType,
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		TemplateData:   job.TemplateData,
		Status:         job.Status,
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    job.ProcessedAt,
	}
}
