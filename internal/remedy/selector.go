package remedy

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Duggu05-coder/healthego/internal/emotion"
)

// Package holds the techniques drawn for one emotion, capped per tier and
// free of duplicates within a single draw.
type Package struct {
	Immediate   []string
	Physical    []string
	Cognitive   []string
	Mindfulness []string
	LongTerm    []string
}

func (p *Package) tier(t Tier) []string {
	switch t {
	case TierImmediate:
		return p.Immediate
	case TierPhysical:
		return p.Physical
	case TierCognitive:
		return p.Cognitive
	case TierMindfulness:
		return p.Mindfulness
	case TierLongTerm:
		return p.LongTerm
	}
	return nil
}

func (p *Package) setTier(t Tier, items []string) {
	switch t {
	case TierImmediate:
		p.Immediate = items
	case TierPhysical:
		p.Physical = items
	case TierCognitive:
		p.Cognitive = items
	case TierMindfulness:
		p.Mindfulness = items
	case TierLongTerm:
		p.LongTerm = items
	}
}

// Selector draws bounded technique packages from the catalog. Selection is
// randomized per call; the tier structure and caps are fixed. Safe for
// concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Selector.
type Option func(*Selector)

// WithSeed makes selection deterministic, for tests. Production selectors
// default to a time-seeded source; no cross-run reproducibility is promised.
func WithSeed(seed int64) Option {
	return func(s *Selector) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewSelector returns a Selector with a process-local random source.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Package draws up to the per-tier cap of techniques for label, without
// replacement within each tier. Labels absent from the catalog behave
// exactly like Neutral.
func (s *Selector) Package(label emotion.Label) Package {
	e := lookup(label)
	var pkg Package
	for _, t := range tierOrder {
		items := e.tier(t)
		pkg.setTier(t, s.sample(items, min(tierCaps[t], len(items))))
	}
	return pkg
}

// Quick returns one technique for immediate use, drawn from the label's
// immediate tier (Neutral's when the label has none).
func (s *Selector) Quick(label emotion.Label) string {
	items := lookup(label).immediate
	s.mu.Lock()
	defer s.mu.Unlock()
	return items[s.rng.Intn(len(items))]
}

// sample draws n items uniformly without replacement via a partial
// Fisher-Yates shuffle over a copy.
func (s *Selector) sample(items []string, n int) []string {
	if n <= 0 {
		return nil
	}
	pool := make([]string, len(items))
	copy(pool, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
