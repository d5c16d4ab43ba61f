package remedy

import (
	"strings"
	"testing"

	"github.com/Duggu05-coder/healthego/internal/emotion"
)

func TestPackageRespectsTierCaps(t *testing.T) {
	s := NewSelector(WithSeed(1))
	for _, label := range emotion.Labels {
		pkg := s.Package(label)
		checks := []struct {
			tier  Tier
			items []string
		}{
			{TierImmediate, pkg.Immediate},
			{TierPhysical, pkg.Physical},
			{TierCognitive, pkg.Cognitive},
			{TierMindfulness, pkg.Mindfulness},
			{TierLongTerm, pkg.LongTerm},
		}
		for _, c := range checks {
			if len(c.items) > tierCaps[c.tier] {
				t.Fatalf("%s/%s: %d items exceeds cap %d", label, c.tier, len(c.items), tierCaps[c.tier])
			}
		}
	}
}

func TestPackageNoDuplicatesWithinTier(t *testing.T) {
	s := NewSelector(WithSeed(7))
	for i := 0; i < 50; i++ {
		pkg := s.Package(emotion.Anxious)
		for _, items := range [][]string{pkg.Immediate, pkg.Physical, pkg.Cognitive, pkg.Mindfulness, pkg.LongTerm} {
			seen := make(map[string]bool, len(items))
			for _, item := range items {
				if seen[item] {
					t.Fatalf("duplicate technique in one draw: %q", item)
				}
				seen[item] = true
			}
		}
	}
}

func TestPackageItemsComeFromCatalog(t *testing.T) {
	s := NewSelector(WithSeed(3))
	e := catalog[emotion.Sad]
	pkg := s.Package(emotion.Sad)
	assertSubset(t, pkg.Immediate, e.immediate)
	assertSubset(t, pkg.Physical, e.physical)
	assertSubset(t, pkg.Cognitive, e.cognitive)
	assertSubset(t, pkg.Mindfulness, e.mindfulness)
	assertSubset(t, pkg.LongTerm, e.longTerm)
}

func assertSubset(t *testing.T, got, pool []string) {
	t.Helper()
	allowed := make(map[string]bool, len(pool))
	for _, item := range pool {
		allowed[item] = true
	}
	for _, item := range got {
		if !allowed[item] {
			t.Fatalf("technique %q not in catalog pool", item)
		}
	}
}

func TestUnknownLabelBehavesLikeNeutral(t *testing.T) {
	a := NewSelector(WithSeed(42))
	b := NewSelector(WithSeed(42))
	unknown := a.Package(emotion.Label("bogus"))
	neutral := b.Package(emotion.Neutral)

	if len(unknown.Immediate) != len(neutral.Immediate) {
		t.Fatalf("unknown label drew %d immediate, neutral drew %d", len(unknown.Immediate), len(neutral.Immediate))
	}
	for i := range unknown.Immediate {
		if unknown.Immediate[i] != neutral.Immediate[i] {
			t.Fatalf("same seed drew different techniques: %q vs %q", unknown.Immediate[i], neutral.Immediate[i])
		}
	}
	if len(unknown.Physical)+len(unknown.Cognitive)+len(unknown.Mindfulness)+len(unknown.LongTerm) != 0 {
		t.Fatal("neutral-equivalent package should only fill the immediate tier")
	}
}

func TestQuickDrawsFromImmediateTier(t *testing.T) {
	s := NewSelector(WithSeed(9))
	allowed := make(map[string]bool)
	for _, item := range catalog[emotion.Fear].immediate {
		allowed[item] = true
	}
	for i := 0; i < 20; i++ {
		if item := s.Quick(emotion.Fear); !allowed[item] {
			t.Fatalf("quick remedy %q not in fear's immediate tier", item)
		}
	}
}

func TestHappyPackageSkipsEmptyTiers(t *testing.T) {
	s := NewSelector(WithSeed(11))
	pkg := s.Package(emotion.Happy)
	if len(pkg.Immediate) == 0 || len(pkg.LongTerm) == 0 {
		t.Fatal("happy should fill immediate and long-term tiers")
	}
	if len(pkg.Physical) != 0 || len(pkg.Cognitive) != 0 || len(pkg.Mindfulness) != 0 {
		t.Fatal("happy has no techniques for the middle tiers")
	}
}

func TestFormatResponseStructure(t *testing.T) {
	s := NewSelector(WithSeed(5))
	doc := s.FormatResponse(emotion.Anxious)

	if !strings.HasPrefix(doc, "Here are some practical techniques to help with anxious feelings:") {
		t.Fatalf("unexpected header: %q", doc)
	}
	for _, heading := range []string{
		"🚨 **Try Right Now:**",
		"💪 **Physical Techniques:**",
		"🧠 **Mental Strategies:**",
		"🧘 **Mindfulness Practice:**",
		"📈 **For Long-term Wellbeing:**",
	} {
		if !strings.Contains(doc, heading) {
			t.Fatalf("missing heading %q", heading)
		}
	}
	if !strings.Contains(doc, "\n• ") {
		t.Fatal("expected bulleted techniques")
	}
	if !strings.HasSuffix(doc, "Remember: Start with one technique that feels manageable. You don't need to try everything at once.") {
		t.Fatalf("unexpected closing: %q", doc)
	}
}

func TestFormatResponseOmitsEmptyTiers(t *testing.T) {
	s := NewSelector(WithSeed(5))
	doc := s.FormatResponse(emotion.Neutral)
	if strings.Contains(doc, "💪") || strings.Contains(doc, "📈") {
		t.Fatalf("neutral document should omit empty tiers: %q", doc)
	}
}

func TestValidateCatalog(t *testing.T) {
	if err := validateCatalog(); err != nil {
		t.Fatalf("catalog validation failed: %v", err)
	}
}

func TestFallbackReplyCoversAllLabels(t *testing.T) {
	for _, label := range emotion.Labels {
		if FallbackReply(label) == "" {
			t.Fatalf("empty fallback for %s", label)
		}
	}
	if FallbackReply(emotion.Label("bogus")) != fallbackReplies[emotion.Neutral] {
		t.Fatal("unknown label should fall back to neutral reply")
	}
}

func TestCopingFallback(t *testing.T) {
	if !strings.HasPrefix(CopingFallback(emotion.Anxious), "1.") {
		t.Fatal("expected numbered list for anxious")
	}
	if CopingFallback(emotion.Fear) != copingDefault {
		t.Fatal("labels without a list should use the default")
	}
}
