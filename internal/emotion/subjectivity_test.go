package emotion

import "testing"

func TestExtractSubjectivityPositivePolarity(t *testing.T) {
	sig := extractSubjectivity("wonderful beautiful perfect")
	if sig.Label != Happy {
		t.Fatalf("expected happy, got %s", sig.Label)
	}
	if sig.Strength <= 0.3 {
		t.Fatalf("expected strength above threshold, got %v", sig.Strength)
	}
}

func TestExtractSubjectivityNegativePolarity(t *testing.T) {
	sig := extractSubjectivity("terrible awful horrible")
	if sig.Label != Sad {
		t.Fatalf("expected sad, got %s", sig.Label)
	}
}

func TestExtractSubjectivityWorryRoute(t *testing.T) {
	// Weak polarity, high subjectivity, worry vocabulary present.
	sig := extractSubjectivity("I really think I feel stressed maybe")
	if sig.Label != Anxious {
		t.Fatalf("expected anxious, got %s", sig.Label)
	}
}

func TestExtractSubjectivityAngerRoute(t *testing.T) {
	sig := extractSubjectivity("I really think this whole thing is frustrated nonsense")
	if sig.Label != Angry {
		t.Fatalf("expected angry, got %s", sig.Label)
	}
}

func TestExtractSubjectivityNoLexiconMatches(t *testing.T) {
	sig := extractSubjectivity("the meeting starts at three")
	if sig.Label != Neutral {
		t.Fatalf("expected neutral, got %s", sig.Label)
	}
}

func TestLexiconScoresAveraging(t *testing.T) {
	// "good" (0.7, 0.6) and "bad" (-0.7, 0.67) average to roughly zero
	// polarity with moderate subjectivity.
	polarity, subjectivity := lexiconScores("good bad")
	if polarity != 0 {
		t.Fatalf("expected zero polarity, got %v", polarity)
	}
	if subjectivity <= 0.6 || subjectivity > 0.65 {
		t.Fatalf("unexpected subjectivity %v", subjectivity)
	}
}

func TestLexiconScoresEmpty(t *testing.T) {
	polarity, subjectivity := lexiconScores("")
	if polarity != 0 || subjectivity != 0 {
		t.Fatalf("expected zeros, got %v/%v", polarity, subjectivity)
	}
}
