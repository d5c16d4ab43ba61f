// Package emotion implements multi-signal emotion detection for user text.
package emotion

import "strings"

// Label is one of the eight recognized emotional states.
type Label string

const (
	Happy    Label = "happy"
	Sad      Label = "sad"
	Angry    Label = "angry"
	Anxious  Label = "anxious"
	Fear     Label = "fear"
	Surprise Label = "surprise"
	Disgust  Label = "disgust"
	Neutral  Label = "neutral"
)

// Labels lists every recognized label. The order matters: keyword scoring
// resolves ties by this order.
var Labels = []Label{Happy, Sad, Angry, Anxious, Fear, Surprise, Disgust, Neutral}

// Valid reports whether l belongs to the closed label set.
func (l Label) Valid() bool {
	switch l {
	case Happy, Sad, Angry, Anxious, Fear, Surprise, Disgust, Neutral:
		return true
	}
	return false
}

// ParseLabel normalizes raw text to a Label, defaulting to Neutral.
func ParseLabel(s string) Label {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	if l.Valid() {
		return l
	}
	return Neutral
}

// Signal is one extractor's independent guess, produced fresh per call.
type Signal struct {
	Label    Label
	Strength float64
}

// Fusion is the combined detection result.
type Fusion struct {
	Label      Label
	Confidence float64
}
