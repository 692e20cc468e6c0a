package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/internal/integration/persistence/model"
)

// TokenRepository stores member sessions (refresh tokens) and password
// reset links. A member has at most one live reset link at a time.
type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	IsRefreshTokenActive(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error

	// RevokeUserSessions signs the member out everywhere and reports how
	// many sessions were still active.
	RevokeUserSessions(ctx context.Context, userID uuid.UUID) (int64, error)

	// IssuePasswordResetToken stores a new reset link and retires every
	// earlier unused link of the same member.
	IssuePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error

	// FindPasswordResetToken returns nil when the link is unknown or was
	// already consumed or superseded.
	FindPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error)
	ConsumePasswordResetToken(ctx context.Context, token string) error
}

type tokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	session := &model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: r.now(),
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *tokenRepository) IsRefreshTokenActive(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.activeSessions(ctx).
		Where("token = ?", token).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up session: %w", err)
	}
	return count > 0, nil
}

func (r *tokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Update("invalidated", true).Error
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (r *tokenRepository) RevokeUserSessions(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.activeSessions(ctx).
		Where("user_id = ?", userID).
		Update("invalidated", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// activeSessions scopes to sessions that are neither revoked nor expired.
func (r *tokenRepository) activeSessions(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("invalidated = ? AND expires_at > ?", false, r.now())
}

func (r *tokenRepository) IssuePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	now := r.now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Only the newest emailed link may reset the password.
		err := tx.Model(&model.PasswordResetTokenModel{}).
			Where("user_id = ? AND used = ?", userID, false).
			Updates(map[string]any{"used": true, "used_at": &now}).Error
		if err != nil {
			return fmt.Errorf("failed to retire previous reset links: %w", err)
		}

		link := &model.PasswordResetTokenModel{
			ID:        uuid.New(),
			Token:     token,
			UserID:    userID,
			Email:     email,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		}
		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("failed to save reset link: %w", err)
		}
		return nil
	})
}

func (r *tokenRepository) FindPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error) {
	var link model.PasswordResetTokenModel
	err := r.db.WithContext(ctx).
		Where("token = ? AND used = ?", token, false).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up reset link: %w", err)
	}
	return &link, nil
}

func (r *tokenRepository) ConsumePasswordResetToken(ctx context.Context, token string) error {
	now := r.now()
	err := r.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("token = ?", token).
		Updates(map[string]any{"used": true, "used_at": &now}).Error
	if err != nil {
		return fmt.Errorf("failed to consume reset link: %w", err)
	}
	return nil
}
