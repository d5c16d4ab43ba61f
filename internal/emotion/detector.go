package emotion

import (
	"math"
	"strings"
)

// Detector fuses the three signal extractors into a single label plus a
// confidence score. Resolution is a strict priority override, not a blend:
// explicit keyword evidence beats statistical sentiment, which beats the
// subjectivity heuristic. Chosen for predictability over raw accuracy.
type Detector struct {
	polarity *polarityExtractor
}

// NewDetector returns a ready Detector.
func NewDetector() *Detector {
	return &Detector{polarity: newPolarityExtractor()}
}

// Detect returns the fused emotion for text. Empty or whitespace-only input
// short-circuits to (Neutral, 0) without invoking any extractor.
func (d *Detector) Detect(text string) Fusion {
	if strings.TrimSpace(text) == "" {
		return Fusion{Label: Neutral, Confidence: 0}
	}

	keyword := safeExtract(func() Signal { return extractKeyword(text) })
	polarity := safeExtract(func() Signal { return d.polarity.extract(text) })
	subjectivity := safeExtract(func() Signal { return extractSubjectivity(text) })

	label := subjectivity.Label
	switch {
	case keyword.Label != Neutral:
		label = keyword.Label
	case polarity.Label != Neutral:
		label = polarity.Label
	}

	if label == Neutral {
		return Fusion{Label: Neutral, Confidence: 0.5}
	}
	return Fusion{Label: label, Confidence: math.Min(1, d.Intensity(text)+0.3)}
}

// Intensity reports the strength of the detected emotion on a 0-1 scale,
// taken from the absolute VADER compound score.
func (d *Detector) Intensity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return d.polarity.intensity(text)
}

// Analysis is the full per-signal breakdown behind one detection.
type Analysis struct {
	Primary       Label
	Intensity     float64
	Confidence    float64
	KeywordCounts map[Label]int
	Compound      float64
	PositiveMass  float64
	NegativeMass  float64
	NeutralMass   float64
	Polarity      float64
	Subjectivity  float64
}

// DetailedAnalysis exposes every signal's raw scores alongside the fused
// result, for dashboards and diagnostics.
func (d *Detector) DetailedAnalysis(text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return Analysis{Primary: Neutral, KeywordCounts: map[Label]int{}}
	}

	fused := d.Detect(text)
	vader := d.polarity.scores(text)
	polarity, subjectivity := lexiconScores(strings.ToLower(text))

	return Analysis{
		Primary:       fused.Label,
		Intensity:     math.Abs(vader.Compound),
		Confidence:    fused.Confidence,
		KeywordCounts: keywordCounts(text),
		Compound:      vader.Compound,
		PositiveMass:  vader.Positive,
		NegativeMass:  vader.Negative,
		NeutralMass:   vader.Neutral,
		Polarity:      polarity,
		Subjectivity:  subjectivity,
	}
}

// safeExtract isolates one extractor: a panic inside it degrades that signal
// to Neutral instead of failing the whole fusion.
func safeExtract(fn func() Signal) (sig Signal) {
	defer func() {
		if r := recover(); r != nil {
			sig = Signal{Label: Neutral}
		}
	}()
	return fn()
}
