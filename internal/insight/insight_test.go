package insight

import (
	"strings"
	"testing"

	"github.com/Duggu05-coder/healthego/internal/emotion"
)

func TestComputeEmpty(t *testing.T) {
	report := Compute(nil)
	if len(report.Insights) != 1 || report.Insights[0] != Placeholder {
		t.Fatalf("expected only the placeholder, got %v", report.Insights)
	}
	if report.Dominant != "" {
		t.Fatalf("expected empty dominant, got %s", report.Dominant)
	}
	if report.Total != 0 || report.Changes != 0 || report.Variety != 0 {
		t.Fatalf("expected zeroed counters, got %+v", report)
	}
}

func TestComputeDominantStatement(t *testing.T) {
	report := Compute([]emotion.Label{emotion.Happy, emotion.Happy, emotion.Sad, emotion.Happy})

	if report.Dominant != emotion.Happy {
		t.Fatalf("expected happy dominant, got %s", report.Dominant)
	}
	if report.Changes != 2 {
		t.Fatalf("expected 2 changes, got %d", report.Changes)
	}
	if len(report.Insights) != 1 {
		t.Fatalf("expected only the dominant statement, got %v", report.Insights)
	}
	want := "Your dominant emotion this session has been 'happy' (75.0% of the time)"
	if report.Insights[0] != want {
		t.Fatalf("got %q, want %q", report.Insights[0], want)
	}
}

func TestComputeWideRangeAndFluctuation(t *testing.T) {
	report := Compute([]emotion.Label{emotion.Happy, emotion.Sad, emotion.Angry, emotion.Anxious})

	if report.Variety != 4 {
		t.Fatalf("expected variety 4, got %d", report.Variety)
	}
	assertHasInsight(t, report.Insights, "wide range of emotions (4 different types)")
	assertHasInsight(t, report.Insights, "significant emotional fluctuation")
}

func TestComputeConsistentAndStable(t *testing.T) {
	report := Compute([]emotion.Label{emotion.Sad, emotion.Sad, emotion.Sad})

	if report.Dominant != emotion.Sad || report.Changes != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	assertHasInsight(t, report.Insights, "consistent emotional state")
	assertHasInsight(t, report.Insights, "relatively stable emotions")
	assertHasInsight(t, report.Insights, "recent messages consistently show 'sad'")
}

func TestComputeRecentTrendNeedsThreeIdentical(t *testing.T) {
	report := Compute([]emotion.Label{
		emotion.Sad, emotion.Happy, emotion.Anxious, emotion.Anxious, emotion.Anxious,
	})
	assertHasInsight(t, report.Insights, "recent messages consistently show 'anxious'")

	report = Compute([]emotion.Label{emotion.Anxious, emotion.Anxious, emotion.Happy})
	for _, line := range report.Insights {
		if strings.Contains(line, "recent messages consistently") {
			t.Fatalf("trend statement should require three identical recent labels: %v", report.Insights)
		}
	}
}

func TestComputeNoTrendBelowWindow(t *testing.T) {
	report := Compute([]emotion.Label{emotion.Happy, emotion.Happy})
	for _, line := range report.Insights {
		if strings.Contains(line, "recent messages consistently") {
			t.Fatalf("trend needs at least three observations: %v", report.Insights)
		}
	}
}

func TestComputeDominantTieKeepsFirstSeen(t *testing.T) {
	report := Compute([]emotion.Label{emotion.Sad, emotion.Happy, emotion.Sad, emotion.Happy})
	if report.Dominant != emotion.Sad {
		t.Fatalf("tie should keep the first-seen label, got %s", report.Dominant)
	}
}

func assertHasInsight(t *testing.T, insights []string, fragment string) {
	t.Helper()
	for _, line := range insights {
		if strings.Contains(line, fragment) {
			return
		}
	}
	t.Fatalf("no insight contains %q: %v", fragment, insights)
}
