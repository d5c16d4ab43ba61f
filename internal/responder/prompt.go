package responder

import (
	"fmt"
	"strings"

	"github.com/Duggu05-coder/healthego/internal/emotion"
	"github.com/Duggu05-coder/healthego/internal/memory"
	"github.com/Duggu05-coder/healthego/internal/session"
)

const systemPrompt = `You are a compassionate and empathetic AI therapy assistant. Your role is to:

1. Provide emotional support and active listening
2. Offer practical, actionable coping strategies and remedies
3. Suggest specific techniques for managing emotions and situations
4. Give helpful advice based on therapeutic principles
5. Provide immediate tools and exercises the user can try
6. Never provide medical diagnoses or replace professional therapy

Guidelines for providing remedies and solutions:
- Always include at least one practical technique or exercise
- Offer specific breathing techniques, grounding exercises, or mindfulness practices
- Suggest behavioral changes or thought patterns to try
- Provide immediate actions they can take right now
- Include both short-term coping strategies and longer-term solutions
- Give concrete steps rather than just validation
- When appropriate, suggest journaling prompts or reflection exercises

Response structure:
1. Acknowledge their emotion and situation
2. Provide immediate practical remedy or technique
3. Offer additional coping strategies
4. End with encouragement and next steps

Remember: Focus on giving helpful, actionable advice while maintaining professional boundaries.`

// emotionPrompts steers the model's framing for each detected state.
var emotionPrompts = map[emotion.Label]string{
	emotion.Happy:    "The user is expressing happiness. Help them savor this positive moment and suggest ways to maintain or build on this joy. Offer gratitude practices or ways to share positivity.",
	emotion.Sad:      "The user is experiencing sadness. Provide immediate comfort techniques like breathing exercises, suggest gentle activities for mood lifting, and offer specific coping strategies for dealing with sadness.",
	emotion.Angry:    "The user is expressing anger. Offer immediate anger management techniques like deep breathing or physical release exercises. Suggest constructive ways to process and channel this energy.",
	emotion.Anxious:  "The user is showing signs of anxiety. Provide specific anxiety-reduction techniques like the 5-4-3-2-1 grounding method, breathing exercises, or progressive muscle relaxation. Offer practical steps to manage their worries.",
	emotion.Fear:     "The user is expressing fear. Offer grounding techniques to help them feel safe, suggest ways to break down their fears into manageable parts, and provide courage-building exercises.",
	emotion.Surprise: "The user seems surprised or taken aback. Help them process this new information with mindfulness techniques and suggest ways to adapt to unexpected changes.",
	emotion.Disgust:  "The user is expressing disgust or revulsion. Help them understand these feelings and suggest healthy ways to distance themselves from what's bothering them, including boundary-setting techniques.",
	emotion.Neutral:  "The user's emotional state appears neutral. Use this as an opportunity to suggest proactive wellness practices, mindfulness exercises, or emotional awareness techniques.",
}

// validations open a reply when the model forgot to acknowledge the emotion.
var validations = map[emotion.Label]string{
	emotion.Happy:    "It's wonderful to hear the positivity in your message.",
	emotion.Sad:      "I can sense that you're going through a difficult time.",
	emotion.Angry:    "I understand that you're feeling frustrated right now.",
	emotion.Anxious:  "It sounds like you're experiencing some worry or stress.",
	emotion.Fear:     "I hear that you're feeling concerned about something.",
	emotion.Surprise: "It seems like something unexpected has happened.",
	emotion.Disgust:  "I can tell that something is really bothering you.",
	emotion.Neutral:  "Thank you for sharing your thoughts with me.",
}

const historyWindow = 6 // last 3 user-assistant pairs

// buildPrompt assembles the full conversation context for one turn.
func buildPrompt(userMessage string, label emotion.Label, history []session.Message, recalled []memory.Recalled) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")

	if len(history) > 0 {
		sb.WriteString("Recent conversation:\n")
		start := 0
		if len(history) > historyWindow {
			start = len(history) - historyWindow
		}
		for _, msg := range history[start:] {
			role := "User"
			if msg.Role == session.RoleAssistant {
				role = "Assistant"
			}
			fmt.Fprintf(&sb, "%s: %s\n", role, msg.Content)
		}
		sb.WriteString("\n")
	}

	if len(recalled) > 0 {
		sb.WriteString("Moments from earlier conversations that may be relevant:\n")
		for _, r := range recalled {
			fmt.Fprintf(&sb, "- %s\n", r.Content)
		}
		sb.WriteString("\n")
	}

	emotionContext, ok := emotionPrompts[label]
	if !ok {
		emotionContext = emotionPrompts[emotion.Neutral]
	}

	fmt.Fprintf(&sb, "Emotion detected: %s\nContext: %s\n\nUser message: %q\n\n", label, emotionContext, userMessage)
	sb.WriteString(`Please provide a helpful response that includes:
1. Acknowledgment of their emotional state
2. At least one immediate, practical technique they can try right now
3. Additional coping strategies or remedies for this situation
4. Encouraging next steps or actions they can take

Focus on giving actionable advice and specific techniques rather than just emotional validation.`)

	return sb.String()
}

func emotionValidation(label emotion.Label) string {
	if v, ok := validations[label]; ok {
		return v
	}
	return validations[emotion.Neutral]
}
