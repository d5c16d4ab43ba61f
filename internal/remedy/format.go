package remedy

import (
	"fmt"
	"strings"

	"github.com/Duggu05-coder/healthego/internal/emotion"
)

var tierHeadings = map[Tier]string{
	TierImmediate:   "🚨 **Try Right Now:**",
	TierPhysical:    "💪 **Physical Techniques:**",
	TierCognitive:   "🧠 **Mental Strategies:**",
	TierMindfulness: "🧘 **Mindfulness Practice:**",
	TierLongTerm:    "📈 **For Long-term Wellbeing:**",
}

// FormatResponse assembles a full multi-section remedy document for label:
// one bullet per selected technique, tiers in fixed order, empty tiers
// omitted.
func (s *Selector) FormatResponse(label emotion.Label) string {
	pkg := s.Package(label)

	var b strings.Builder
	fmt.Fprintf(&b, "Here are some practical techniques to help with %s feelings:\n", label)
	for _, t := range tierOrder {
		items := pkg.tier(t)
		if len(items) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(tierHeadings[t])
		b.WriteString("\n")
		for _, item := range items {
			fmt.Fprintf(&b, "• %s\n", item)
		}
	}
	b.WriteString("\nRemember: Start with one technique that feels manageable. You don't need to try everything at once.")
	return b.String()
}
