package emotion

import (
	"math"
	"strings"
)

// keywordEntry pairs a label with its fixed keyword list. Entries are scanned
// in slice order so ties resolve deterministically.
type keywordEntry struct {
	label Label
	words []string
}

var keywordCatalog = []keywordEntry{
	{Happy, []string{"happy", "joy", "excited", "cheerful", "delighted", "pleased", "content", "elated", "thrilled", "glad"}},
	{Sad, []string{"sad", "depressed", "down", "blue", "melancholy", "gloomy", "dejected", "despondent", "sorrowful", "unhappy"}},
	{Angry, []string{"angry", "mad", "furious", "irritated", "annoyed", "rage", "frustrated", "upset", "livid", "enraged"}},
	{Anxious, []string{"anxious", "worried", "nervous", "stressed", "tense", "uneasy", "apprehensive", "concerned", "restless"}},
	{Fear, []string{"afraid", "scared", "terrified", "frightened", "panic", "fearful", "alarmed", "intimidated"}},
	{Surprise, []string{"surprised", "shocked", "amazed", "astonished", "stunned", "bewildered", "startled"}},
	{Disgust, []string{"disgusted", "revolted", "repulsed", "sickened", "nauseated", "appalled"}},
}

// normalize lowercases text, strips punctuation to whitespace, and collapses
// runs of whitespace to single spaces.
func normalize(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if r == '_' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r > 127 && !isPunct(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isPunct(r rune) bool {
	return strings.ContainsRune("！？。，、；：“”‘’（）—…", r)
}

// extractKeyword scores each emotion by keyword occurrences weighted by word
// length, and returns the strictly highest-scoring label. All-zero scores map
// to Neutral.
func extractKeyword(text string) Signal {
	cleaned := normalize(text)
	if cleaned == "" {
		return Signal{Label: Neutral}
	}

	best := Signal{Label: Neutral}
	for _, entry := range keywordCatalog {
		score := 0.0
		for _, word := range entry.words {
			if count := strings.Count(cleaned, word); count > 0 {
				// Longer keywords carry more weight.
				score += float64(count) * float64(len(word)) / 10
			}
		}
		if score > best.Strength {
			best = Signal{Label: entry.label, Strength: score}
		}
	}
	best.Strength = math.Min(1, best.Strength)
	return best
}

// keywordCounts returns the raw (unweighted) keyword occurrence count per
// emotion, for the detailed-analysis surface.
func keywordCounts(text string) map[Label]int {
	cleaned := normalize(text)
	counts := make(map[Label]int, len(keywordCatalog))
	for _, entry := range keywordCatalog {
		total := 0
		for _, word := range entry.words {
			total += strings.Count(cleaned, word)
		}
		counts[entry.label] = total
	}
	return counts
}
