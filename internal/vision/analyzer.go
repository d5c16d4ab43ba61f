// Package vision analyzes shared images for emotional content.
package vision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/Duggu05-coder/healthego/internal/emotion"
)

// Confidence grades how certain the image analysis is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Description is the structured result of analyzing one image.
type Description struct {
	Caption    string
	Emotion    emotion.Label
	Confidence Confidence
}

const analysisPrompt = `Analyze this image for emotional content. Consider:
1. Facial expressions and body language
2. Colors, lighting, and mood of the scene
3. Objects or symbols that might convey emotions
4. Overall atmosphere and feeling

Identify the primary emotion conveyed (happy, sad, angry, anxious, fear, surprise, neutral) and explain why.
Also provide a brief description of what you see in the image.

Format your response as:
Emotion: [primary emotion]
Confidence: [high/medium/low]
Description: [what you see]
Emotional indicators: [specific visual cues that indicate this emotion]`

// imageKeywords support emotion extraction when the model skips the
// requested format. Two or more hits attribute the emotion.
var imageKeywords = []struct {
	label    emotion.Label
	keywords []string
}{
	{emotion.Happy, []string{"smile", "laughing", "joy", "celebration", "bright", "cheerful", "excited"}},
	{emotion.Sad, []string{"crying", "tears", "frown", "gloomy", "dark", "melancholy", "upset"}},
	{emotion.Angry, []string{"frown", "scowl", "aggressive", "tense", "clenched", "furious"}},
	{emotion.Anxious, []string{"worried", "nervous", "tense", "stressed", "fidgeting", "restless"}},
	{emotion.Fear, []string{"scared", "frightened", "terrified", "hiding", "defensive"}},
	{emotion.Surprise, []string{"shocked", "amazed", "startled", "wide-eyed", "unexpected"}},
	{emotion.Neutral, []string{"calm", "peaceful", "serene", "relaxed", "content"}},
}

// fallbackGroups is the last-resort word scan, checked in order.
var fallbackGroups = []struct {
	label emotion.Label
	words []string
}{
	{emotion.Happy, []string{"happy", "joy", "smile", "positive"}},
	{emotion.Sad, []string{"sad", "cry", "tear", "down"}},
	{emotion.Angry, []string{"angry", "mad", "furious", "aggressive"}},
	{emotion.Anxious, []string{"anxious", "worry", "nervous", "stress"}},
	{emotion.Fear, []string{"fear", "scared", "afraid", "frightened"}},
	{emotion.Surprise, []string{"surprise", "shock", "amaze", "startled"}},
}

// Analyzer sends images to a vision-capable model and parses the structured
// reply.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates an image analyzer backed by the named vision model.
func NewAnalyzer(ctx context.Context, modelName string, cfg *genai.ClientConfig) (*Analyzer, error) {
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
	return &Analyzer{client: client, model: modelName}, nil
}

// Describe analyzes one image. Failures degrade to a neutral, low-confidence
// description instead of an error so the conversation can continue.
func (a *Analyzer) Describe(ctx context.Context, image []byte, mimeType string) Description {
	content := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: analysisPrompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
		},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, []*genai.Content{content}, nil)
	if err != nil {
		slog.Warn("image analysis failed", "error", err.Error())
		return Description{
			Caption:    fmt.Sprintf("Unable to analyze image: %s", err.Error()),
			Emotion:    emotion.Neutral,
			Confidence: ConfidenceLow,
		}
	}

	text := responseText(resp)
	if text == "" {
		return Description{
			Caption:    "Unable to analyze image: empty response",
			Emotion:    emotion.Neutral,
			Confidence: ConfidenceLow,
		}
	}

	return Description{
		Caption:    text,
		Emotion:    parseEmotion(text),
		Confidence: parseConfidence(text),
	}
}

// parseEmotion extracts the primary emotion from the analysis text. It tries
// the requested "Emotion: <label>" line first, then keyword counting, then a
// broad word scan.
func parseEmotion(analysis string) emotion.Label {
	lower := strings.ToLower(analysis)

	for _, group := range imageKeywords {
		if strings.Contains(lower, fmt.Sprintf("emotion: %s", group.label)) {
			return group.label
		}
		count := 0
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				count++
			}
		}
		if count >= 2 {
			return group.label
		}
	}

	for _, group := range fallbackGroups {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.label
			}
		}
	}
	return emotion.Neutral
}

// parseConfidence extracts the self-reported confidence, defaulting to medium.
func parseConfidence(analysis string) Confidence {
	lower := strings.ToLower(analysis)
	switch {
	case strings.Contains(lower, "confidence: high"):
		return ConfidenceHigh
	case strings.Contains(lower, "confidence: medium"):
		return ConfidenceMedium
	case strings.Contains(lower, "confidence: low"):
		return ConfidenceLow
	}
	return ConfidenceMedium
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
