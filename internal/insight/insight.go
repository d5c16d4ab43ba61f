// Package insight derives aggregate emotional statistics for one session.
package insight

import (
	"fmt"

	"github.com/Duggu05-coder/healthego/internal/emotion"
)

// Placeholder is the single insight emitted when no observations exist yet.
const Placeholder = "No emotional data available yet. Continue chatting to see insights!"

// Stability and variety thresholds. These exact values are part of the
// tested contract.
const (
	fluctuationRatio = 0.7
	stableRatio      = 0.3
	wideRangeMin     = 4
	trendWindow      = 3
)

// Report summarizes emotional patterns across one session. Dominant is empty
// when there are no observations.
type Report struct {
	Insights []string
	Dominant emotion.Label
	Changes  int
	Variety  int
	Total    int
}

// Compute derives a Report from the ordered label sequence of a session's
// observations. The statements are independently gated: several can appear
// together.
func Compute(labels []emotion.Label) Report {
	if len(labels) == 0 {
		return Report{Insights: []string{Placeholder}}
	}

	counts := make(map[emotion.Label]int)
	var firstSeen []emotion.Label
	for _, l := range labels {
		if counts[l] == 0 {
			firstSeen = append(firstSeen, l)
		}
		counts[l]++
	}

	// Mode with stable tie-break: the first-seen label among those tied for
	// the highest count wins.
	dominant := firstSeen[0]
	for _, l := range firstSeen[1:] {
		if counts[l] > counts[dominant] {
			dominant = l
		}
	}

	changes := 0
	for i := 1; i < len(labels); i++ {
		if labels[i] != labels[i-1] {
			changes++
		}
	}

	total := len(labels)
	variety := len(firstSeen)
	insights := []string{
		fmt.Sprintf("Your dominant emotion this session has been '%s' (%.1f%% of the time)",
			dominant, float64(counts[dominant])/float64(total)*100),
	}

	if variety >= wideRangeMin {
		insights = append(insights, fmt.Sprintf("You've experienced a wide range of emotions (%d different types)", variety))
	} else if variety == 1 {
		insights = append(insights, "You've maintained a consistent emotional state throughout our conversation")
	}

	if float64(changes) > float64(total)*fluctuationRatio {
		insights = append(insights, "You've shown significant emotional fluctuation during our conversation")
	} else if float64(changes) < float64(total)*stableRatio {
		insights = append(insights, "You've maintained relatively stable emotions during our conversation")
	}

	if total >= trendWindow {
		recent := labels[total-trendWindow:]
		if recent[0] == recent[1] && recent[1] == recent[2] {
			insights = append(insights, fmt.Sprintf("Your recent messages consistently show '%s' emotions", recent[0]))
		}
	}

	return Report{
		Insights: insights,
		Dominant: dominant,
		Changes:  changes,
		Variety:  variety,
		Total:    total,
	}
}
