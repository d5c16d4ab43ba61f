package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// sessionModel maps to the user_sessions table.
type sessionModel struct {
	ID         int
	SessionID  string `gorm:"uniqueIndex"`
	CreatedAt  time.Time
	LastActive time.Time
}

func (sessionModel) TableName() string {
	return "user_sessions"
}

// CreateSession creates the session row, or touches last_active when it
// already exists.
func (s *Store) CreateSession(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	var record sessionModel
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", id).
		Limit(1).
		Find(&record).Error; err != nil {
		return fmt.Errorf("failed to query session: %w", err)
	}

	if record.ID == 0 {
		record = sessionModel{SessionID: id, LastActive: time.Now()}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		return nil
	}

	if err := s.db.WithContext(ctx).
		Model(&sessionModel{}).
		Where("id = ?", record.ID).
		Update("last_active", time.Now()).Error; err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// ClearSession removes the session's messages and observations in one
// transaction. The session row itself survives with a fresh last_active.
func (s *Store) ClearSession(ctx context.Context, sessionID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&messageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&observationModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&sessionModel{}).
			Where("session_id = ?", sessionID).
			Update("last_active", time.Now()).Error
	})
	if err != nil {
		return fmt.Errorf("failed to clear session data: %w", err)
	}
	return nil
}
