package memory

import (
	"context"
	"fmt"
	"time"
)

// Recalled is one retrieved past-conversation snippet.
type Recalled struct {
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Similarity float64   `json:"similarity"`
	CreatedAt  time.Time `json:"created_at"`
}

// SimilaritySearcher is the storage surface recall depends on.
type SimilaritySearcher interface {
	SetMessageEmbedding(ctx context.Context, messageID string, embedding []float32) error
	SearchSimilar(ctx context.Context, sessionID string, embedding []float32, topK int, threshold float64) ([]Recalled, error)
}

// Service embeds new user messages and recalls similar past moments.
type Service struct {
	embedder  Embedder
	store     SimilaritySearcher
	topK      int
	threshold float64
}

// NewService creates a recall Service.
func NewService(embedder Embedder, store SimilaritySearcher, topK int, threshold float64) *Service {
	if topK <= 0 {
		topK = 5
	}
	if threshold <= 0 {
		threshold = 0.7
	}
	return &Service{
		embedder:  embedder,
		store:     store,
		topK:      topK,
		threshold: threshold,
	}
}

// Remember embeds content and attaches the vector to its stored message.
func (s *Service) Remember(ctx context.Context, messageID, content string) error {
	if s == nil || s.embedder == nil || s.store == nil {
		return nil
	}
	vec, err := s.embedder.EmbedDocument(ctx, content)
	if err != nil {
		return fmt.Errorf("failed to embed message: %w", err)
	}
	if len(vec) == 0 {
		return nil
	}
	return s.store.SetMessageEmbedding(ctx, messageID, vec)
}

// Recall returns the top-k past moments similar to query, oldest signal
// first by similarity. Unconfigured services recall nothing.
func (s *Service) Recall(ctx context.Context, sessionID, query string) ([]Recalled, error) {
	if s == nil || s.embedder == nil || s.store == nil || query == "" {
		return nil, nil
	}
	vec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.store.SearchSimilar(ctx, sessionID, vec, s.topK, s.threshold)
}
