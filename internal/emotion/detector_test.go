package emotion

import "testing"

func TestMapPolarityBands(t *testing.T) {
	tests := []struct {
		name     string
		compound float64
		negative float64
		text     string
		want     Label
	}{
		{"strong positive", 0.6, 0, "what a day", Happy},
		{"positive boundary", 0.5, 0, "what a day", Happy},
		{"mild positive", 0.2, 0, "not bad", Happy},
		{"strong negative anger words", -0.6, 0.7, "i am so angry about this", Angry},
		{"strong negative mad", -0.7, 0.8, "this makes me mad", Angry},
		{"strong negative without anger words", -0.6, 0.7, "i feel awful", Sad},
		{"strong negative low mass", -0.6, 0.5, "i am so angry about this", Sad},
		{"mild negative", -0.2, 0.3, "not great", Sad},
		{"flat", 0.05, 0, "the meeting is at three", Neutral},
		{"flat negative", -0.05, 0.1, "fine i guess", Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapPolarity(tt.compound, tt.negative, tt.text); got != tt.want {
				t.Fatalf("mapPolarity(%v, %v, %q) = %s, want %s", tt.compound, tt.negative, tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectEmptyInput(t *testing.T) {
	d := NewDetector()
	for _, text := range []string{"", "   ", "\n\t"} {
		fused := d.Detect(text)
		if fused.Label != Neutral || fused.Confidence != 0 {
			t.Fatalf("expected neutral/0 for %q, got %s/%v", text, fused.Label, fused.Confidence)
		}
	}
}

func TestDetectKeywordOverridesSentiment(t *testing.T) {
	d := NewDetector()
	// "anxious" is an explicit keyword; it must win regardless of what the
	// sentiment scorer thinks of the sentence.
	fused := d.Detect("I am so anxious about my exam tomorrow")
	if fused.Label != Anxious {
		t.Fatalf("expected anxious, got %s", fused.Label)
	}
	if fused.Confidence < 0.3 || fused.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", fused.Confidence)
	}
}

func TestDetectHappyKeyword(t *testing.T) {
	d := NewDetector()
	fused := d.Detect("I feel happy today")
	if fused.Label != Happy {
		t.Fatalf("expected happy, got %s", fused.Label)
	}
}

func TestDetectNeutralStatement(t *testing.T) {
	d := NewDetector()
	fused := d.Detect("The meeting is scheduled for 3pm")
	if fused.Label != Neutral {
		t.Fatalf("expected neutral, got %s", fused.Label)
	}
	if fused.Confidence != 0.5 {
		t.Fatalf("expected neutral confidence 0.5, got %v", fused.Confidence)
	}
}

func TestDetectAlwaysValidLabel(t *testing.T) {
	d := NewDetector()
	inputs := []string{
		"I love this so much!",
		"everything is terrible and I hate it",
		"I'm terrified of tomorrow",
		"totally shocked by the news",
		"ok",
		"12345",
	}
	for _, text := range inputs {
		fused := d.Detect(text)
		if !fused.Label.Valid() {
			t.Fatalf("invalid label %q for %q", fused.Label, text)
		}
		if fused.Confidence < 0 || fused.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %v", text, fused.Confidence)
		}
	}
}

func TestDetailedAnalysisEmpty(t *testing.T) {
	d := NewDetector()
	analysis := d.DetailedAnalysis("")
	if analysis.Primary != Neutral {
		t.Fatalf("expected neutral, got %s", analysis.Primary)
	}
	if analysis.KeywordCounts == nil {
		t.Fatal("expected non-nil keyword counts")
	}
}

func TestDetailedAnalysisCarriesSignals(t *testing.T) {
	d := NewDetector()
	analysis := d.DetailedAnalysis("I am so anxious and worried about everything")
	if analysis.Primary != Anxious {
		t.Fatalf("expected anxious, got %s", analysis.Primary)
	}
	if analysis.KeywordCounts[Anxious] < 2 {
		t.Fatalf("expected at least 2 anxious keyword hits, got %d", analysis.KeywordCounts[Anxious])
	}
	if analysis.Subjectivity <= 0 {
		t.Fatalf("expected positive subjectivity, got %v", analysis.Subjectivity)
	}
}

func TestParseLabel(t *testing.T) {
	if got := ParseLabel("  Happy "); got != Happy {
		t.Fatalf("expected happy, got %s", got)
	}
	if got := ParseLabel("bogus"); got != Neutral {
		t.Fatalf("expected neutral fallback, got %s", got)
	}
}
