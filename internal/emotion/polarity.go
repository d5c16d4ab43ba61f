package emotion

import (
	"math"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// polarityExtractor wraps a VADER analyzer. The analyzer is not safe for
// concurrent use, so scoring is serialized behind a mutex.
type polarityExtractor struct {
	mu  sync.Mutex
	sia *govader.SentimentIntensityAnalyzer
}

func newPolarityExtractor() *polarityExtractor {
	return &polarityExtractor{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (p *polarityExtractor) scores(text string) govader.Sentiment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sia.PolarityScores(text)
}

// extract maps VADER polarity scores to an emotion label.
func (p *polarityExtractor) extract(text string) Signal {
	s := p.scores(text)
	label := mapPolarity(s.Compound, s.Negative, strings.ToLower(text))
	return Signal{Label: label, Strength: math.Abs(s.Compound)}
}

// intensity is the absolute compound score, used as the fused confidence base.
func (p *polarityExtractor) intensity(text string) float64 {
	return math.Abs(p.scores(text).Compound)
}

// mapPolarity converts a compound score and negative mass to a label.
// The angry/mad substring check is a deliberate, known-imprecise heuristic:
// it is part of the tested behavior and must not be "improved".
func mapPolarity(compound, negative float64, lowerText string) Label {
	switch {
	case compound >= 0.5:
		return Happy
	case compound <= -0.5:
		if negative > 0.6 && (strings.Contains(lowerText, "angry") || strings.Contains(lowerText, "mad")) {
			return Angry
		}
		return Sad
	case compound > 0.1:
		return Happy
	case compound < -0.1:
		return Sad
	default:
		return Neutral
	}
}
