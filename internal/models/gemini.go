// Package models provides model.LLM adapters for the supported providers.
package models

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// geminiModel wraps the Gemini API behind model.LLM. Streaming is not
// supported: responses are yielded as a single element.
type geminiModel struct {
	client *genai.Client
	name   string
}

// NewGeminiModel creates a Gemini-backed model.LLM.
func NewGeminiModel(ctx context.Context, modelName string, cfg *genai.ClientConfig) (model.LLM, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiModel{client: client, name: modelName}, nil
}

func (m *geminiModel) Name() string {
	return m.name
}

func (m *geminiModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.client.Models.GenerateContent(ctx, m.name, req.Contents, req.Config)
		if err != nil {
			yield(nil, fmt.Errorf("failed to call Gemini API: %w", err))
			return
		}

		out := &model.LLMResponse{}
		if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
			out.Content = resp.Candidates[0].Content
		}
		yield(out, nil)
	}
}
