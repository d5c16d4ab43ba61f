// Package responder generates supportive replies, grounded in the detected
// emotion and backed by static fallbacks when generation is unavailable.
package responder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/Duggu05-coder/healthego/internal/emotion"
	"github.com/Duggu05-coder/healthego/internal/memory"
	"github.com/Duggu05-coder/healthego/internal/remedy"
	"github.com/Duggu05-coder/healthego/internal/session"
)

// problematicPhrases must never appear in a reply; each occurrence is
// replaced, case-insensitively, with a neutral self-description.
var problematicPhrases = []string{
	"as your therapist",
	"i am a therapist",
	"i'm a licensed",
	"i can diagnose",
	"my professional opinion",
}

const phraseReplacement = "as an AI assistant"

// empathyTokens mark a reply as already acknowledging the user's state.
var empathyTokens = []string{"understand", "hear", "feel", "sounds", "seems"}

// Responder turns a detected emotion plus conversation context into a reply.
// A nil llm degrades to the static fallback replies.
type Responder struct {
	llm      model.LLM
	selector *remedy.Selector
}

// New creates a Responder. llm may be nil; selector must not be.
func New(llm model.LLM, selector *remedy.Selector) *Responder {
	return &Responder{llm: llm, selector: selector}
}

// Generate produces the reply for one user turn. It never returns an empty
// string: generation failures fall back to the per-emotion static reply.
func (r *Responder) Generate(ctx context.Context, userMessage string, label emotion.Label, history []session.Message, recalled []memory.Recalled) string {
	if r.llm == nil {
		return remedy.FallbackReply(label)
	}

	prompt := buildPrompt(userMessage, label, history, recalled)
	req := &model.LLMRequest{
		Contents: []*genai.Content{genai.NewContentFromText(prompt, "user")},
		Config: &genai.GenerateContentConfig{
			MaxOutputTokens: 300,
			Temperature:     genai.Ptr(float32(0.7)),
		},
	}

	reply, err := r.generate(ctx, req)
	if err != nil {
		slog.Warn("reply generation failed, using fallback", "emotion", label, "error", err.Error())
		return remedy.FallbackReply(label)
	}

	reply = r.enhance(reply, label, userMessage)
	return r.validate(reply, label)
}

// CopingStrategies asks the model for 3-5 situation-specific strategies,
// falling back to the static per-emotion list on failure.
func (r *Responder) CopingStrategies(ctx context.Context, label emotion.Label, situation string) string {
	if r.llm == nil {
		return remedy.CopingFallback(label)
	}

	if situation == "" {
		situation = "General emotional support needed"
	}
	prompt := fmt.Sprintf(`You are a helpful AI assistant specializing in evidence-based coping strategies and emotional wellness techniques.

Based on the emotion '%s' and the user's situation, provide 3-5 practical, evidence-based coping strategies. Keep each strategy concise and actionable.

Emotion: %s
Situation context: %s

Please provide strategies in a numbered list format.`, label, label, situation)

	req := &model.LLMRequest{
		Contents: []*genai.Content{genai.NewContentFromText(prompt, "user")},
		Config: &genai.GenerateContentConfig{
			MaxOutputTokens: 200,
			Temperature:     genai.Ptr(float32(0.5)),
		},
	}

	reply, err := r.generate(ctx, req)
	if err != nil {
		slog.Warn("coping strategy generation failed, using fallback", "emotion", label, "error", err.Error())
		return remedy.CopingFallback(label)
	}
	return reply
}

func (r *Responder) generate(ctx context.Context, req *model.LLMRequest) (string, error) {
	var resp *model.LLMResponse
	var genErr error
	seq := r.llm.GenerateContent(ctx, req, false)
	seq(func(got *model.LLMResponse, err error) bool {
		resp, genErr = got, err
		return false
	})
	if genErr != nil {
		return "", genErr
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("model returned empty response")
	}
	return text, nil
}

// enhance appends concrete techniques to the generated reply.
func (r *Responder) enhance(reply string, label emotion.Label, userMessage string) string {
	pkg := r.selector.Package(label)

	immediate := r.selector.Quick(label)
	if len(pkg.Immediate) > 0 {
		immediate = pkg.Immediate[0]
	}
	enhanced := reply + fmt.Sprintf("\n\n**Here's something you can try right now:** %s", immediate)

	if len(reply) < 100 && len(pkg.Physical) > 0 {
		enhanced += fmt.Sprintf("\n\n**Physical technique:** %s", pkg.Physical[0])
	}

	switch label {
	case emotion.Anxious, emotion.Sad, emotion.Angry, emotion.Fear:
		if strings.Contains(strings.ToLower(userMessage), "help") {
			enhanced += "\n\n" + r.selector.FormatResponse(label)
		}
	}

	return enhanced
}

// validate strips clinical-authority claims and prepends an acknowledgment
// when the reply lacks one.
func (r *Responder) validate(reply string, label emotion.Label) string {
	if len(strings.TrimSpace(reply)) < 10 {
		return remedy.FallbackReply(label)
	}

	for _, phrase := range problematicPhrases {
		reply = replaceInsensitive(reply, phrase, phraseReplacement)
	}

	lower := strings.ToLower(reply)
	hasEmpathy := false
	for _, token := range empathyTokens {
		if strings.Contains(lower, token) {
			hasEmpathy = true
			break
		}
	}
	if !hasEmpathy {
		reply = emotionValidation(label) + " " + reply
	}

	return reply
}

// replaceInsensitive replaces every case-insensitive occurrence of old with
// replacement, preserving the surrounding text's casing.
func replaceInsensitive(s, old, replacement string) string {
	lower := strings.ToLower(s)
	oldLower := strings.ToLower(old)

	var sb strings.Builder
	for {
		idx := strings.Index(lower, oldLower)
		if idx < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:idx])
		sb.WriteString(replacement)
		s = s[idx+len(old):]
		lower = lower[idx+len(old):]
	}
}

func extractText(resp *model.LLMResponse) string {
	if resp == nil || resp.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
