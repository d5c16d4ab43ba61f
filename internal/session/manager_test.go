package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Duggu05-coder/healthego/internal/emotion"
	"github.com/Duggu05-coder/healthego/internal/insight"
)

type fakeStore struct {
	sessions     []string
	messages     map[string][]Message
	observations map[string][]Observation
	cleared      []string
	failAll      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		messages:     make(map[string][]Message),
		observations: make(map[string][]Observation),
	}
}

func (f *fakeStore) CreateSession(ctx context.Context, id string) error {
	if f.failAll {
		return errors.New("store down")
	}
	f.sessions = append(f.sessions, id)
	return nil
}

func (f *fakeStore) AppendMessage(ctx context.Context, sessionID string, msg Message) error {
	if f.failAll {
		return errors.New("store down")
	}
	f.messages[sessionID] = append(f.messages[sessionID], msg)
	return nil
}

func (f *fakeStore) AppendObservation(ctx context.Context, sessionID string, obs Observation) error {
	if f.failAll {
		return errors.New("store down")
	}
	f.observations[sessionID] = append(f.observations[sessionID], obs)
	return nil
}

func (f *fakeStore) ListMessages(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	msgs := f.messages[sessionID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func (f *fakeStore) ListObservations(ctx context.Context, sessionID string) ([]Observation, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	return f.observations[sessionID], nil
}

func (f *fakeStore) ClearSession(ctx context.Context, sessionID string) error {
	if f.failAll {
		return errors.New("store down")
	}
	f.cleared = append(f.cleared, sessionID)
	delete(f.messages, sessionID)
	delete(f.observations, sessionID)
	return nil
}

func TestAddMessagePairsObservationWithUserEmotion(t *testing.T) {
	store := newFakeStore()
	m := NewManager(context.Background(), store)

	msg := m.AddMessage(context.Background(), RoleUser, "I am worried", AddOptions{Emotion: emotion.Anxious, Confidence: 0.8})
	if msg.Emotion != emotion.Anxious || msg.Confidence != 0.8 {
		t.Fatalf("unexpected message: %+v", msg)
	}

	obs := m.Timeline()
	if len(obs) != 1 || obs[0].Emotion != emotion.Anxious || obs[0].MessageID != msg.ID {
		t.Fatalf("unexpected observations: %+v", obs)
	}
	if len(store.messages[m.ID()]) != 1 || len(store.observations[m.ID()]) != 1 {
		t.Fatal("expected message and observation persisted")
	}
}

func TestAddMessageAssistantSkipsObservation(t *testing.T) {
	m := NewManager(context.Background(), nil)
	m.AddMessage(context.Background(), RoleAssistant, "here to help", AddOptions{Emotion: emotion.Happy})
	if len(m.Timeline()) != 0 {
		t.Fatal("assistant messages must not record observations")
	}
}

func TestStoreFailureKeepsInMemoryState(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	m := NewManager(context.Background(), store)

	m.AddMessage(context.Background(), RoleUser, "hello", AddOptions{Emotion: emotion.Happy, Confidence: 0.9})
	if len(m.Messages()) != 1 {
		t.Fatal("message must survive store failure")
	}
	if len(m.Timeline()) != 1 {
		t.Fatal("observation must survive store failure")
	}
}

func TestHistoryCapTrimsOldestMessages(t *testing.T) {
	m := NewManager(context.Background(), nil)
	for i := 0; i < historyCap+10; i++ {
		m.AddMessage(context.Background(), RoleUser, fmt.Sprintf("msg %d", i), AddOptions{})
	}
	msgs := m.Messages()
	if len(msgs) != historyCap {
		t.Fatalf("expected %d messages, got %d", historyCap, len(msgs))
	}
	if msgs[0].Content != "msg 10" {
		t.Fatalf("expected oldest kept message to be msg 10, got %q", msgs[0].Content)
	}
}

func TestContextWindow(t *testing.T) {
	m := NewManager(context.Background(), nil)
	for i := 0; i < 5; i++ {
		m.AddMessage(context.Background(), RoleUser, fmt.Sprintf("msg %d", i), AddOptions{})
	}
	window := m.Context(2)
	if len(window) != 2 || window[0].Content != "msg 3" || window[1].Content != "msg 4" {
		t.Fatalf("unexpected window: %+v", window)
	}
	if len(m.Context(0)) != 5 {
		t.Fatal("non-positive max should return everything")
	}
}

func TestCurrentEmotionAndSummary(t *testing.T) {
	m := NewManager(context.Background(), nil)
	if m.CurrentEmotion() != "" {
		t.Fatal("expected empty emotion before any observation")
	}

	m.AddMessage(context.Background(), RoleUser, "a", AddOptions{Emotion: emotion.Sad})
	m.AddMessage(context.Background(), RoleUser, "b", AddOptions{Emotion: emotion.Sad})
	m.AddMessage(context.Background(), RoleUser, "c", AddOptions{Emotion: emotion.Happy})

	if m.CurrentEmotion() != emotion.Happy {
		t.Fatalf("expected happy, got %s", m.CurrentEmotion())
	}
	summary := m.EmotionSummary()
	if summary[emotion.Sad] != 2 || summary[emotion.Happy] != 1 {
		t.Fatalf("unexpected summary: %v", summary)
	}
}

func TestStats(t *testing.T) {
	m := NewManager(context.Background(), nil)
	base := time.Now()
	m.nowFunc = func() time.Time { return base.Add(10 * time.Minute) }

	m.AddMessage(context.Background(), RoleUser, "hi", AddOptions{Emotion: emotion.Happy, Confidence: 0.7})
	m.AddMessage(context.Background(), RoleAssistant, "hello", AddOptions{})

	stats := m.Stats()
	if stats.MessageCount != 2 || stats.UserMessages != 1 || stats.AssistantMessages != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.EmotionsDetected != 1 || stats.UniqueEmotions != 1 {
		t.Fatalf("unexpected emotion counts: %+v", stats)
	}
	if stats.DurationMinutes < 9.9 || stats.DurationMinutes > 10.1 {
		t.Fatalf("unexpected duration: %v", stats.DurationMinutes)
	}
}

func TestInsightsReflectObservations(t *testing.T) {
	m := NewManager(context.Background(), nil)
	report := m.Insights()
	if len(report.Insights) != 1 || report.Insights[0] != insight.Placeholder {
		t.Fatalf("expected placeholder before observations, got %v", report.Insights)
	}

	m.AddMessage(context.Background(), RoleUser, "a", AddOptions{Emotion: emotion.Happy})
	m.AddMessage(context.Background(), RoleUser, "b", AddOptions{Emotion: emotion.Happy})
	report = m.Insights()
	if report.Dominant != emotion.Happy || report.Total != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestClearResetsSessionWithNewID(t *testing.T) {
	store := newFakeStore()
	m := NewManager(context.Background(), store)
	oldID := m.ID()

	m.AddMessage(context.Background(), RoleUser, "hi", AddOptions{Emotion: emotion.Sad})
	m.Clear(context.Background())

	if m.ID() == oldID {
		t.Fatal("clear must issue a new session id")
	}
	if len(m.Messages()) != 0 || len(m.Timeline()) != 0 {
		t.Fatal("clear must wipe in-memory state")
	}
	if len(store.cleared) != 1 || store.cleared[0] != oldID {
		t.Fatalf("expected old session cleared in store, got %v", store.cleared)
	}
	report := m.Insights()
	if len(report.Insights) != 1 || report.Insights[0] != insight.Placeholder {
		t.Fatalf("expected placeholder after clear, got %v", report.Insights)
	}
}

func TestResumeLoadsStoredRecord(t *testing.T) {
	store := newFakeStore()
	first := NewManager(context.Background(), store)
	first.AddMessage(context.Background(), RoleUser, "rough day", AddOptions{Emotion: emotion.Sad, Confidence: 0.6})
	first.AddMessage(context.Background(), RoleAssistant, "I'm sorry to hear that", AddOptions{})

	resumed, err := Resume(context.Background(), store, first.ID())
	if err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if resumed.ID() != first.ID() {
		t.Fatalf("expected id %s, got %s", first.ID(), resumed.ID())
	}
	if len(resumed.Messages()) != 2 || len(resumed.Timeline()) != 1 {
		t.Fatalf("unexpected resumed state: %d messages, %d observations", len(resumed.Messages()), len(resumed.Timeline()))
	}
}

func TestResumeSurfacesStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	if _, err := Resume(context.Background(), store, "some-id"); err == nil {
		t.Fatal("expected error when the store is unavailable")
	}
}

func TestExportTranscript(t *testing.T) {
	m := NewManager(context.Background(), nil)
	m.AddMessage(context.Background(), RoleUser, "hello", AddOptions{Emotion: emotion.Happy, Confidence: 0.9})
	m.AddMessage(context.Background(), RoleAssistant, "hi there", AddOptions{})

	export := m.Export()
	if export.SessionID != m.ID() || export.MessageCount != 2 {
		t.Fatalf("unexpected export: %+v", export)
	}
	if export.EmotionsSummary[emotion.Happy] != 1 {
		t.Fatalf("unexpected summary: %v", export.EmotionsSummary)
	}
	if len(export.Conversation) != 2 {
		t.Fatalf("expected 2 transcript lines, got %d", len(export.Conversation))
	}
	if export.Conversation[0].Role != RoleUser || export.Conversation[0].Emotion != emotion.Happy {
		t.Fatalf("unexpected first line: %+v", export.Conversation[0])
	}
	if export.Conversation[1].Emotion != "" {
		t.Fatal("assistant line should carry no emotion")
	}
}
