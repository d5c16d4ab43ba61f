// Package voice transcribes audio input and synthesizes spoken replies.
package voice

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const transcribePrompt = "Transcribe this audio recording verbatim. Reply with only the transcription text, no commentary."

// Handler routes audio through a multimodal model: one model for
// transcription and one for speech synthesis.
type Handler struct {
	client          *genai.Client
	transcribeModel string
	speechModel     string
}

// NewHandler creates a voice handler.
func NewHandler(ctx context.Context, transcribeModel, speechModel string, cfg *genai.ClientConfig) (*Handler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if transcribeModel == "" || speechModel == "" {
		return nil, fmt.Errorf("model names cannot be empty")
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Handler{
		client:          client,
		transcribeModel: transcribeModel,
		speechModel:     speechModel,
	}, nil
}

// Transcribe converts an audio recording to text.
func (h *Handler) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio data cannot be empty")
	}

	content := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: transcribePrompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: audio}},
		},
	}

	resp, err := h.client.Models.GenerateContent(ctx, h.transcribeModel, []*genai.Content{content}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty transcription response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("transcription text missing in response")
	}
	return text, nil
}

// Synthesize converts text to spoken audio bytes.
func (h *Handler) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
	}
	resp, err := h.client.Models.GenerateContent(ctx, h.speechModel, genai.Text(text), config)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty speech response")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		return part.InlineData.Data, nil
	}
	return nil, fmt.Errorf("audio data missing in response")
}
