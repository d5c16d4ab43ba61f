package emotion

import (
	"math"
	"strings"
)

// lexEntry carries per-word polarity [-1,1] and subjectivity [0,1] scores,
// averaged over matched words the way TextBlob-style scorers do.
type lexEntry struct {
	polarity     float64
	subjectivity float64
}

var subjectivityLexicon = map[string]lexEntry{
	// positive
	"good":      {0.7, 0.6},
	"great":     {0.8, 0.75},
	"wonderful": {1.0, 1.0},
	"amazing":   {0.6, 0.9},
	"awesome":   {1.0, 1.0},
	"fantastic": {0.9, 0.9},
	"excellent": {1.0, 1.0},
	"love":      {0.5, 0.6},
	"loved":     {0.7, 0.8},
	"happy":     {0.8, 1.0},
	"glad":      {0.5, 1.0},
	"joy":       {0.8, 0.9},
	"excited":   {0.3, 0.7},
	"beautiful": {0.85, 1.0},
	"nice":      {0.6, 1.0},
	"fun":       {0.3, 0.2},
	"best":      {1.0, 0.3},
	"better":    {0.5, 0.5},
	"perfect":   {1.0, 1.0},
	"enjoy":     {0.4, 0.5},
	"grateful":  {0.6, 0.9},
	"proud":     {0.6, 0.9},
	"calm":      {0.3, 0.75},
	"hopeful":   {0.4, 0.8},

	// negative
	"bad":        {-0.7, 0.67},
	"terrible":   {-1.0, 1.0},
	"awful":      {-1.0, 1.0},
	"horrible":   {-1.0, 1.0},
	"hate":       {-0.8, 0.9},
	"hated":      {-0.9, 0.95},
	"sad":        {-0.5, 1.0},
	"unhappy":    {-0.6, 1.0},
	"depressed":  {-0.7, 0.9},
	"miserable":  {-1.0, 1.0},
	"worst":      {-1.0, 0.3},
	"worse":      {-0.5, 0.5},
	"angry":      {-0.5, 0.9},
	"mad":        {-0.625, 0.9},
	"frustrated": {-0.6, 0.9},
	"annoyed":    {-0.5, 0.8},
	"afraid":     {-0.6, 0.9},
	"scared":     {-0.6, 0.9},
	"terrified":  {-0.8, 1.0},
	"worried":    {-0.3, 0.8},
	"worry":      {-0.3, 0.8},
	"anxious":    {-0.3, 0.9},
	"nervous":    {-0.3, 0.85},
	"stressed":   {-0.4, 0.85},
	"stress":     {-0.4, 0.8},
	"tired":      {-0.4, 0.7},
	"lonely":     {-0.5, 0.9},
	"hurt":       {-0.5, 0.8},
	"pain":       {-0.6, 0.8},
	"cry":        {-0.4, 0.9},
	"lost":       {-0.3, 0.6},

	// subjective but weakly polar
	"feel":       {0, 1.0},
	"feeling":    {0, 1.0},
	"think":      {0, 0.8},
	"believe":    {0, 0.9},
	"really":     {0, 0.9},
	"very":       {0.2, 0.3},
	"so":         {0, 0.6},
	"totally":    {0, 0.9},
	"absolutely": {0.2, 0.9},
	"definitely": {0, 0.9},
	"maybe":      {0, 0.7},
	"probably":   {0, 0.8},
	"overwhelmed": {-0.3, 0.9},
}

var (
	worryTokens = []string{"worry", "stress", "anxious", "nervous"}
	angerTokens = []string{"angry", "mad", "frustrated"}
)

// lexiconScores averages polarity and subjectivity over lexicon matches.
// Text with no matched words scores (0, 0).
func lexiconScores(lowerText string) (polarity, subjectivity float64) {
	matched := 0
	for _, token := range strings.Fields(normalize(lowerText)) {
		entry, ok := subjectivityLexicon[token]
		if !ok {
			continue
		}
		polarity += entry.polarity
		subjectivity += entry.subjectivity
		matched++
	}
	if matched == 0 {
		return 0, 0
	}
	polarity = clampSigned(polarity / float64(matched))
	subjectivity = math.Min(1, subjectivity/float64(matched))
	return polarity, subjectivity
}

// extractSubjectivity maps lexicon polarity/subjectivity to a label. High
// subjectivity without clear polarity routes through worry and anger token
// checks on the raw lowercased input, like the polarity extractor's heuristic.
func extractSubjectivity(text string) Signal {
	lower := strings.ToLower(text)
	polarity, subjectivity := lexiconScores(lower)

	switch {
	case polarity > 0.3:
		return Signal{Label: Happy, Strength: polarity}
	case polarity < -0.3:
		return Signal{Label: Sad, Strength: -polarity}
	case subjectivity > 0.7:
		if containsAny(lower, worryTokens) {
			return Signal{Label: Anxious, Strength: subjectivity}
		}
		if containsAny(lower, angerTokens) {
			return Signal{Label: Angry, Strength: subjectivity}
		}
	}
	return Signal{Label: Neutral}
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

func clampSigned(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
