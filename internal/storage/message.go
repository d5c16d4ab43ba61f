package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/Duggu05-coder/healthego/internal/emotion"
	"github.com/Duggu05-coder/healthego/internal/memory"
	"github.com/Duggu05-coder/healthego/internal/session"
)

// messageModel maps to the conversations table.
type messageModel struct {
	ID         int
	SessionID  string `gorm:"index"`
	MessageID  string `gorm:"uniqueIndex"`
	Role       string
	Content    string
	Emotion    string
	Confidence float64
	AudioPath  string
	Embedding  *pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt  time.Time
}

func (messageModel) TableName() string {
	return "conversations"
}

// AppendMessage inserts one conversation turn.
func (s *Store) AppendMessage(ctx context.Context, sessionID string, msg session.Message) error {
	record := messageModel{
		SessionID:  sessionID,
		MessageID:  msg.ID,
		Role:       string(msg.Role),
		Content:    msg.Content,
		Emotion:    string(msg.Emotion),
		Confidence: msg.Confidence,
		AudioPath:  msg.AudioPath,
		CreatedAt:  msg.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// ListMessages returns up to limit most recent messages, oldest first.
func (s *Store) ListMessages(ctx context.Context, sessionID string, limit int) ([]session.Message, error) {
	query := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []messageModel
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	results := make([]session.Message, 0, len(records))
	for _, record := range records {
		results = append(results, messageFromModel(record))
	}

	// Oldest -> newest
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

// SetMessageEmbedding attaches an embedding vector to a stored message.
func (s *Store) SetMessageEmbedding(ctx context.Context, messageID string, embedding []float32) error {
	if len(embedding) == 0 {
		return nil
	}
	vector := pgvector.NewVector(embedding)
	if err := s.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("message_id = ?", messageID).
		Update("embedding", &vector).Error; err != nil {
		return fmt.Errorf("failed to set message embedding: %w", err)
	}
	return nil
}

// SearchSimilar returns past messages whose embeddings are cosine-similar to
// the query vector, most similar first.
func (s *Store) SearchSimilar(ctx context.Context, sessionID string, embedding []float32, topK int, threshold float64) ([]memory.Recalled, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	query := `
		SELECT role, content, created_at, 1 - (embedding <=> $1) AS similarity
		FROM conversations
		WHERE session_id = $2
		  AND embedding IS NOT NULL
		  AND 1 - (embedding <=> $1) > $3
		ORDER BY similarity DESC
		LIMIT $4`

	vector := pgvector.NewVector(embedding)
	var results []memory.Recalled
	if err := s.db.WithContext(ctx).
		Raw(query, vector, sessionID, threshold, topK).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar messages: %w", err)
	}
	return results, nil
}

func messageFromModel(record messageModel) session.Message {
	return session.Message{
		ID:         record.MessageID,
		Role:       session.Role(record.Role),
		Content:    record.Content,
		Emotion:    emotion.Label(record.Emotion),
		Confidence: record.Confidence,
		AudioPath:  record.AudioPath,
		CreatedAt:  record.CreatedAt,
	}
}
