// Package session owns the ordered conversation record for one user: the
// message sequence, the derived emotion observations, and their lifecycle
// (create, append, clear). It is the only writer of session state; the core
// pipeline reads from it.
package session

import (
	"context"
	"time"

	"github.com/Duggu05-coder/healthego/internal/emotion"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one completed conversation turn. Immutable once appended;
// sequence order is insertion order and never changes.
type Message struct {
	ID         string
	Role       Role
	Content    string
	Emotion    emotion.Label // empty when no emotion was recorded
	Confidence float64
	AudioPath  string
	CreatedAt  time.Time
}

// Observation records one detected emotion for a user turn. Appended only;
// removed only by a full session clear.
type Observation struct {
	Emotion   emotion.Label
	At        time.Time
	MessageID string
}

// Stats is a derived aggregate over the session record. Recomputed on
// demand; the message and observation sequences stay authoritative.
type Stats struct {
	SessionID         string
	DurationMinutes   float64
	MessageCount      int
	UserMessages      int
	AssistantMessages int
	EmotionsDetected  int
	UniqueEmotions    int
	StartedAt         time.Time
}

// Export is a portable transcript of one session.
type Export struct {
	SessionID       string                `json:"session_id"`
	StartTime       time.Time             `json:"start_time"`
	DurationMinutes float64               `json:"duration_minutes"`
	MessageCount    int                   `json:"message_count"`
	EmotionsSummary map[emotion.Label]int `json:"emotions_summary"`
	Conversation    []ExportMessage       `json:"conversation"`
}

// ExportMessage is one transcript line.
type ExportMessage struct {
	Role      Role          `json:"role"`
	Content   string        `json:"content"`
	Emotion   emotion.Label `json:"emotion,omitempty"`
	Timestamp string        `json:"timestamp"`
}

// Store persists session records. Implementations must be atomic per call;
// callers tolerate any single failed call by continuing on in-memory state.
type Store interface {
	CreateSession(ctx context.Context, id string) error
	AppendMessage(ctx context.Context, sessionID string, msg Message) error
	AppendObservation(ctx context.Context, sessionID string, obs Observation) error
	ListMessages(ctx context.Context, sessionID string, limit int) ([]Message, error)
	ListObservations(ctx context.Context, sessionID string) ([]Observation, error)
	ClearSession(ctx context.Context, sessionID string) error
}
