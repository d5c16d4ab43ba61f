// Package remedy selects coping techniques from a static tiered catalog.
package remedy

import (
	"fmt"

	"github.com/Duggu05-coder/healthego/internal/emotion"
)

// Tier identifies one technique category.
type Tier string

const (
	TierImmediate   Tier = "immediate"
	TierPhysical    Tier = "physical"
	TierCognitive   Tier = "cognitive"
	TierMindfulness Tier = "mindfulness"
	TierLongTerm    Tier = "long_term"
)

// tierOrder is the fixed presentation order for assembled remedy documents.
var tierOrder = []Tier{TierImmediate, TierPhysical, TierCognitive, TierMindfulness, TierLongTerm}

// tierCaps bounds how many techniques one package may draw per tier.
var tierCaps = map[Tier]int{
	TierImmediate:   2,
	TierPhysical:    2,
	TierCognitive:   2,
	TierMindfulness: 1,
	TierLongTerm:    2,
}

// entry holds one emotion's technique lists. Tiers other than immediate may
// legitimately be empty.
type entry struct {
	immediate   []string
	physical    []string
	cognitive   []string
	mindfulness []string
	longTerm    []string
}

func (e entry) tier(t Tier) []string {
	switch t {
	case TierImmediate:
		return e.immediate
	case TierPhysical:
		return e.physical
	case TierCognitive:
		return e.cognitive
	case TierMindfulness:
		return e.mindfulness
	case TierLongTerm:
		return e.longTerm
	}
	return nil
}

// catalog is constructed once and never mutated. Labels without an entry
// (surprise, disgust) fall back to the neutral entry wholesale.
var catalog = map[emotion.Label]entry{
	emotion.Anxious: {
		immediate: []string{
			"Try the 5-4-3-2-1 grounding technique: Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste",
			"Practice box breathing: Inhale for 4 counts, hold for 4, exhale for 4, hold for 4. Repeat 4 times",
			"Apply progressive muscle relaxation: Tense each muscle group for 5 seconds, then relax",
			"Use the STOP technique: Stop, Take a breath, Observe your thoughts, Proceed with intention",
		},
		physical: []string{
			"Try yoga poses like child's pose or legs up the wall",
			"Take a warm bath with Epsom salts",
			"Practice gentle neck and shoulder stretches",
			"Drink chamomile tea or warm water with lemon",
		},
		cognitive: []string{
			"Challenge catastrophic thoughts with 'What's the most likely outcome?'",
			"Practice the 'So what?' technique to reduce worry impact",
			"Use thought stopping: Say 'STOP' when anxious thoughts arise",
			"Reframe situations: 'This is challenging' instead of 'This is terrible'",
		},
		mindfulness: []string{
			"Practice loving-kindness meditation for yourself",
			"Try a body scan meditation",
			"Engage in mindful breathing while walking",
			"Practice acceptance meditation",
		},
		longTerm: []string{
			"Establish a daily meditation practice, even 5 minutes helps",
			"Create a worry journal - write worries down and schedule time to address them",
			"Build a calming evening routine to improve sleep quality",
			"Practice saying 'no' to reduce overwhelming commitments",
		},
	},
	emotion.Sad: {
		immediate: []string{
			"Try the 4-7-8 breathing: Inhale for 4, hold for 7, exhale for 8. Repeat 3 times",
			"Engage in gentle movement like a 5-minute walk or light stretching",
			"Practice self-compassion: Talk to yourself as you would a good friend",
			"Listen to uplifting music or nature sounds for 10 minutes",
		},
		physical: []string{
			"Go for a walk in nature, even 10 minutes helps",
			"Try gentle yoga or tai chi movements",
			"Ensure you're getting adequate sleep (7-9 hours)",
			"Eat nourishing foods and stay hydrated",
		},
		cognitive: []string{
			"Challenge negative self-talk with evidence-based thinking",
			"Practice self-compassion statements",
			"Focus on what you can control in your current situation",
			"Remember past times you've overcome difficulties",
		},
		mindfulness: []string{
			"Try gratitude meditation focusing on small daily pleasures",
			"Practice mindful self-compassion",
			"Engage in walking meditation in nature",
			"Try loving-kindness meditation for yourself and others",
		},
		longTerm: []string{
			"Establish a routine that includes activities you used to enjoy",
			"Connect with supportive friends or family members regularly",
			"Consider keeping a mood diary to identify patterns",
			"Engage in acts of kindness for others to boost your own mood",
		},
	},
	emotion.Angry: {
		immediate: []string{
			"Count backwards from 100 by 7s to engage your prefrontal cortex",
			"Do 10 jumping jacks or push-ups to release physical tension",
			"Practice the TIPP technique: Temperature (cold water), Intense exercise, Paced breathing, Paired muscle relaxation",
			"Write your feelings on paper for 5 minutes without editing",
		},
		physical: []string{
			"Do high-intensity exercise like running or boxing",
			"Try cold shower therapy to reset your nervous system",
			"Practice martial arts or kickboxing",
			"Engage in vigorous cleaning or organizing",
		},
		cognitive: []string{
			"Question the story you're telling yourself about the situation",
			"Practice perspective-taking: Consider others' viewpoints",
			"Use 'I' statements instead of 'you' statements",
			"Focus on problem-solving rather than blame",
		},
		mindfulness: []string{
			"Practice forgiveness meditation (for yourself and others)",
			"Try mindful breathing to create space between trigger and response",
			"Engage in compassion meditation",
			"Practice acceptance of what you cannot control",
		},
		longTerm: []string{
			"Develop assertiveness skills to express needs without aggression",
			"Create physical outlets like regular exercise or sports",
			"Practice identifying anger triggers and early warning signs",
			"Learn conflict resolution techniques for better relationships",
		},
	},
	emotion.Fear: {
		immediate: []string{
			"Ground yourself: Feel your feet on the floor and take 3 deep breaths",
			"Use the RAIN technique: Recognize, Allow, Investigate, Nurture the feeling",
			"Break your fear into smaller, manageable parts and tackle one at a time",
			"Practice the mantra: 'This feeling is temporary and I am safe right now'",
		},
		physical: []string{
			"Practice grounding through physical touch (hold a textured object)",
			"Try gentle movement like walking or stretching",
			"Use aromatherapy with calming scents like lavender",
			"Practice progressive muscle relaxation",
		},
		cognitive: []string{
			"Examine evidence for and against your feared outcome",
			"Practice positive self-talk and affirmations",
			"Focus on your past successes and strengths",
			"Visualize yourself handling the situation successfully",
		},
		mindfulness: []string{
			"Try courage-building visualization meditation",
			"Practice present-moment awareness",
			"Engage in protective visualization exercises",
			"Try mantra meditation with calming phrases",
		},
		longTerm: []string{
			"Gradually expose yourself to feared situations in small, manageable steps",
			"Build confidence through setting and achieving small goals",
			"Develop a support network you can reach out to when afraid",
			"Practice visualization techniques to rehearse positive outcomes",
		},
	},
	emotion.Happy: {
		immediate: []string{
			"Practice gratitude: Write down 3 specific things you're grateful for",
			"Share your joy with someone you care about",
			"Engage in a creative activity to channel this positive energy",
			"Take a moment to mindfully savor this feeling",
		},
		longTerm: []string{
			"Maintain positive habits that contribute to your wellbeing",
			"Build on this momentum to tackle challenging goals",
			"Practice savoring positive experiences to extend their impact",
			"Share your strategies with others who might benefit",
		},
	},
	emotion.Neutral: {
		immediate: []string{
			"Set one small, achievable intention for the next hour",
			"Practice mindful breathing for 3 minutes",
			"Do a quick body scan to check in with yourself",
			"Engage in a brief gratitude practice",
		},
	},
}

// fallbackReplies are the static per-label replies used when generation fails.
// Every label in the closed set must have one.
var fallbackReplies = map[emotion.Label]string{
	emotion.Happy:    "It's wonderful that you're feeling positive! Here's a simple technique to amplify this joy: Take a moment to write down three specific things that contributed to this happiness. This gratitude practice can help you recreate these positive experiences. Try sharing your joy with someone close to you - positive emotions grow when shared.",
	emotion.Sad:      "I understand you're going through a difficult time. Here's an immediate technique that can help: Try the '4-7-8' breathing exercise - breathe in for 4 counts, hold for 7, exhale for 8. Repeat 3 times. Also, engage in gentle movement like a short walk, listen to comforting music, or do something kind for yourself today.",
	emotion.Angry:    "I recognize your frustration. Here's an immediate anger management technique: Count slowly to 10 while taking deep breaths, or try progressive muscle relaxation - tense and release each muscle group. Physical exercise like walking or stretching can also help release this energy constructively. Consider writing your feelings down to process them.",
	emotion.Anxious:  "I understand you're feeling anxious. Try this grounding technique right now: Look around and name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste. Follow this with slow, deep breathing. For ongoing anxiety, try scheduling 'worry time' - 15 minutes daily to address concerns, then redirect your focus.",
	emotion.Fear:     "I hear your concerns. Here's a technique to help: Practice the 'STOP' method - Stop what you're doing, Take a breath, Observe your thoughts and feelings, then Proceed with intention. Break down your fear into smaller, manageable parts. What's one small step you could take today to address this concern?",
	emotion.Surprise: "Unexpected events can be unsettling. Try this mindfulness technique: Place both feet on the ground, take three deep breaths, and remind yourself that adaptation is a strength. Journal about this experience to process it. Ask yourself: 'What can I learn from this?' and 'How can I adapt moving forward?'",
	emotion.Disgust:  "Strong negative feelings need healthy outlets. Try this: First, remove yourself from the source if possible. Practice deep breathing, then engage in a cleansing activity like taking a shower, cleaning your space, or doing something that makes you feel refreshed. Set clear boundaries about what you will and won't accept.",
	emotion.Neutral:  "This is a great time for proactive wellness. Try this mindfulness exercise: Set a timer for 5 minutes and focus on your breathing. Notice thoughts without judgment. Consider starting a daily gratitude practice or setting one small, positive intention for today. What's one thing you'd like to accomplish or experience today?",
}

// copingFallbacks back the coping-strategies surface when generation fails.
var copingFallbacks = map[emotion.Label]string{
	emotion.Anxious: "1. Try deep breathing: Inhale for 4, hold for 4, exhale for 6\n2. Ground yourself using the 5-4-3-2-1 technique\n3. Take a short walk or do light stretching\n4. Write down your worries to externalize them",
	emotion.Sad:     "1. Allow yourself to feel the emotion without judgment\n2. Reach out to a trusted friend or family member\n3. Engage in a small self-care activity\n4. Try gentle movement or listen to comforting music",
	emotion.Angry:   "1. Take slow, deep breaths before responding\n2. Count to 10 or take a brief timeout\n3. Express your feelings through journaling\n4. Try progressive muscle relaxation",
	emotion.Happy:   "1. Savor this positive moment mindfully\n2. Share your joy with someone you care about\n3. Write down what you're grateful for\n4. Use this energy for a creative activity",
}

const copingDefault = "Focus on deep breathing and grounding techniques. Remember that all emotions are temporary and valid."

func init() {
	if err := validateCatalog(); err != nil {
		panic(err)
	}
}

// validateCatalog enforces construction-time completeness instead of relying
// on runtime key lookups with implicit defaults.
func validateCatalog() error {
	if _, ok := catalog[emotion.Neutral]; !ok {
		return fmt.Errorf("remedy catalog missing neutral entry")
	}
	for label, e := range catalog {
		if !label.Valid() {
			return fmt.Errorf("remedy catalog has invalid label %q", label)
		}
		if len(e.immediate) == 0 {
			return fmt.Errorf("remedy catalog entry %q has no immediate techniques", label)
		}
	}
	for _, label := range emotion.Labels {
		if _, ok := fallbackReplies[label]; !ok {
			return fmt.Errorf("fallback reply missing for label %q", label)
		}
	}
	return nil
}

// lookup resolves a label's catalog entry, falling back to neutral for labels
// without one.
func lookup(label emotion.Label) entry {
	if e, ok := catalog[label]; ok {
		return e
	}
	return catalog[emotion.Neutral]
}

// FallbackReply returns the static reply template for label, used when reply
// generation fails.
func FallbackReply(label emotion.Label) string {
	if reply, ok := fallbackReplies[label]; ok {
		return reply
	}
	return fallbackReplies[emotion.Neutral]
}

// CopingFallback returns the static coping-strategy list for label.
func CopingFallback(label emotion.Label) string {
	if s, ok := copingFallbacks[label]; ok {
		return s
	}
	return copingDefault
}
