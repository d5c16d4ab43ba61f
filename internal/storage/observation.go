package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Duggu05-coder/healthego/internal/emotion"
	"github.com/Duggu05-coder/healthego/internal/session"
)

// observationModel maps to the emotion_history table.
type observationModel struct {
	ID        int
	SessionID string `gorm:"index"`
	MessageID string
	Emotion   string
	CreatedAt time.Time
}

func (observationModel) TableName() string {
	return "emotion_history"
}

// AppendObservation inserts one emotion observation.
func (s *Store) AppendObservation(ctx context.Context, sessionID string, obs session.Observation) error {
	record := observationModel{
		SessionID: sessionID,
		MessageID: obs.MessageID,
		Emotion:   string(obs.Emotion),
		CreatedAt: obs.At,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert observation: %w", err)
	}
	return nil
}

// ListObservations returns the full observation sequence, oldest first.
func (s *Store) ListObservations(ctx context.Context, sessionID string) ([]session.Observation, error) {
	var records []observationModel
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}

	results := make([]session.Observation, 0, len(records))
	for _, record := range records {
		results = append(results, session.Observation{
			Emotion:   emotion.Label(record.Emotion),
			At:        record.CreatedAt,
			MessageID: record.MessageID,
		})
	}
	return results, nil
}
