package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Duggu05-coder/healthego/internal/emotion"
	"github.com/Duggu05-coder/healthego/internal/insight"
)

// historyCap bounds the in-memory message window. The store keeps the full
// record.
const historyCap = 50

// Manager tracks one conversation session and writes through to the store.
// Store failures degrade to in-memory state with a logged warning; they never
// abort a turn. Not safe for concurrent use: the caller serializes turns per
// session.
type Manager struct {
	store Store // nil means in-memory only

	id           string
	startedAt    time.Time
	messages     []Message
	observations []Observation

	nowFunc func() time.Time
	newID   func() string
}

// NewManager starts a fresh session.
func NewManager(ctx context.Context, store Store) *Manager {
	m := &Manager{
		store:   store,
		id:      uuid.NewString(),
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
	m.startedAt = m.nowFunc()
	m.createRecord(ctx)
	return m
}

// Resume loads an existing session's record from the store.
func Resume(ctx context.Context, store Store, id string) (*Manager, error) {
	m := &Manager{
		store:   store,
		id:      id,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
	m.startedAt = m.nowFunc()

	if store != nil {
		if err := store.CreateSession(ctx, id); err != nil {
			return nil, err
		}
		messages, err := store.ListMessages(ctx, id, historyCap)
		if err != nil {
			return nil, err
		}
		observations, err := store.ListObservations(ctx, id)
		if err != nil {
			return nil, err
		}
		m.messages = messages
		m.observations = observations
		if len(messages) > 0 {
			m.startedAt = messages[0].CreatedAt
		}
	}
	return m, nil
}

func (m *Manager) createRecord(ctx context.Context) {
	if m.store == nil {
		return
	}
	if err := m.store.CreateSession(ctx, m.id); err != nil {
		slog.Warn("failed to create session record", "session", m.id, "error", err)
	}
}

// ID returns the session identifier.
func (m *Manager) ID() string {
	return m.id
}

// AddOptions carries the optional attributes of a new message.
type AddOptions struct {
	Emotion    emotion.Label
	Confidence float64
	AudioPath  string
}

// AddMessage appends one turn. User messages carrying a detected emotion also
// append the paired observation; both halves land in memory even when either
// persistence write fails.
func (m *Manager) AddMessage(ctx context.Context, role Role, content string, opts AddOptions) Message {
	msg := Message{
		ID:        m.newID(),
		Role:      role,
		Content:   content,
		AudioPath: opts.AudioPath,
		CreatedAt: m.nowFunc(),
	}

	if role == RoleUser && opts.Emotion != "" {
		msg.Emotion = opts.Emotion
		msg.Confidence = opts.Confidence
		obs := Observation{Emotion: opts.Emotion, At: msg.CreatedAt, MessageID: msg.ID}
		m.observations = append(m.observations, obs)
		if m.store != nil {
			if err := m.store.AppendObservation(ctx, m.id, obs); err != nil {
				slog.Warn("failed to persist emotion observation", "session", m.id, "error", err)
			}
		}
	}

	if m.store != nil {
		if err := m.store.AppendMessage(ctx, m.id, msg); err != nil {
			slog.Warn("failed to persist message", "session", m.id, "error", err)
		}
	}

	m.messages = append(m.messages, msg)
	if len(m.messages) > historyCap {
		m.messages = m.messages[len(m.messages)-historyCap:]
	}
	return msg
}

// Messages returns a copy of the in-memory message window.
func (m *Manager) Messages() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Context returns the most recent max messages for prompt assembly.
func (m *Manager) Context(max int) []Message {
	if max <= 0 || len(m.messages) <= max {
		return m.Messages()
	}
	out := make([]Message, max)
	copy(out, m.messages[len(m.messages)-max:])
	return out
}

// CurrentEmotion returns the most recently observed emotion, or empty when
// none has been recorded.
func (m *Manager) CurrentEmotion() emotion.Label {
	if len(m.observations) == 0 {
		return ""
	}
	return m.observations[len(m.observations)-1].Emotion
}

// EmotionSummary counts observations per label.
func (m *Manager) EmotionSummary() map[emotion.Label]int {
	summary := make(map[emotion.Label]int)
	for _, obs := range m.observations {
		summary[obs.Emotion]++
	}
	return summary
}

// Timeline returns a copy of the ordered observation sequence.
func (m *Manager) Timeline() []Observation {
	out := make([]Observation, len(m.observations))
	copy(out, m.observations)
	return out
}

// Stats recomputes the session aggregate.
func (m *Manager) Stats() Stats {
	s := Stats{
		SessionID:        m.id,
		DurationMinutes:  m.nowFunc().Sub(m.startedAt).Minutes(),
		MessageCount:     len(m.messages),
		EmotionsDetected: len(m.observations),
		UniqueEmotions:   len(m.EmotionSummary()),
		StartedAt:        m.startedAt,
	}
	for _, msg := range m.messages {
		switch msg.Role {
		case RoleUser:
			s.UserMessages++
		case RoleAssistant:
			s.AssistantMessages++
		}
	}
	return s
}

// Insights derives the emotional-pattern report for this session.
func (m *Manager) Insights() insight.Report {
	labels := make([]emotion.Label, len(m.observations))
	for i, obs := range m.observations {
		labels[i] = obs.Emotion
	}
	return insight.Compute(labels)
}

// Clear wipes the session record and starts a fresh one with a new id.
func (m *Manager) Clear(ctx context.Context) {
	if m.store != nil {
		if err := m.store.ClearSession(ctx, m.id); err != nil {
			slog.Warn("failed to clear session record", "session", m.id, "error", err)
		}
	}
	m.messages = nil
	m.observations = nil
	m.startedAt = m.nowFunc()
	m.id = m.newID()
	m.createRecord(ctx)
}

// Export builds a portable transcript of the session.
func (m *Manager) Export() Export {
	stats := m.Stats()
	export := Export{
		SessionID:       stats.SessionID,
		StartTime:       stats.StartedAt,
		DurationMinutes: stats.DurationMinutes,
		MessageCount:    stats.MessageCount,
		EmotionsSummary: m.EmotionSummary(),
		Conversation:    make([]ExportMessage, 0, len(m.messages)),
	}
	for _, msg := range m.messages {
		export.Conversation = append(export.Conversation, ExportMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Emotion:   msg.Emotion,
			Timestamp: msg.CreatedAt.Format("15:04:05"),
		})
	}
	return export
}
