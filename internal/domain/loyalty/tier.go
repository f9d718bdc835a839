package loyalty

import (
	"errors"
	"sort"

	"github.com/google/uuid"
)

var (
	ErrNoTiers            = errors.New("no membership tiers configured")
	ErrDuplicateTierLevel = errors.New("duplicate tier level")
	ErrTierRangeInvalid   = errors.New("tier min points exceeds max points")
	ErrTierRangeOverlap   = errors.New("tier point ranges overlap")
	ErrTierRangeGap       = errors.New("gap between tier point ranges")
	ErrUnboundedNotLast   = errors.New("only the top tier may be unbounded")
)

// Tier is a membership rank keyed by a contiguous points range.
// MaxPoints == nil means the range is unbounded above (top tier).
type Tier struct {
	ID        uuid.UUID
	Level     int32
	Name      string
	MinPoints int64
	MaxPoints *int64
	Benefits  string
}

// Contains reports whether points falls in [MinPoints, MaxPoints].
func (t Tier) Contains(points int64) bool {
	if points < t.MinPoints {
		return false
	}
	return t.MaxPoints == nil || points <= *t.MaxPoints
}

// Classify returns the lowest-level tier whose range contains points, or nil
// when no tier matches. Tiers are scanned ascending by level, so if ranges
// overlap due to misconfiguration the lowest level deterministically wins.
// A nil result is not an error: new users sit below the lowest tier.
func Classify(points int64, tiers []Tier) *Tier {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	for i := range sorted {
		if sorted[i].Contains(points) {
			return &sorted[i]
		}
	}
	return nil
}

// TierSet is a validated, level-ordered tier ladder.
type TierSet struct {
	tiers []Tier
}

// NewTierSet orders tiers by level and rejects configurations whose point
// ranges are malformed, overlapping, or leave gaps. Adjacent tiers must
// satisfy maxPoints_i + 1 == minPoints_{i+1}.
func NewTierSet(tiers []Tier) (TierSet, error) {
	if len(tiers) == 0 {
		return TierSet{}, ErrNoTiers
	}

	ordered := make([]Tier, len(tiers))
	copy(ordered, tiers)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Level < ordered[j].Level })

	for i, t := range ordered {
		if i > 0 && t.Level == ordered[i-1].Level {
			return TierSet{}, ErrDuplicateTierLevel
		}
		if t.MaxPoints != nil && t.MinPoints > *t.MaxPoints {
			return TierSet{}, ErrTierRangeInvalid
		}
		if t.MaxPoints == nil && i != len(ordered)-1 {
			return TierSet{}, ErrUnboundedNotLast
		}
		if i > 0 {
			prev := ordered[i-1]
			switch {
			case t.MinPoints <= *prev.MaxPoints:
				return TierSet{}, ErrTierRangeOverlap
			case t.MinPoints != *prev.MaxPoints+1:
				return TierSet{}, ErrTierRangeGap
			}
		}
	}

	return TierSet{tiers: ordered}, nil
}

func (s TierSet) Tiers() []Tier {
	out := make([]Tier, len(s.tiers))
	copy(out, s.tiers)
	return out
}

func (s TierSet) Classify(points int64) *Tier {
	return Classify(points, s.tiers)
}

// Next returns the tier above current, or nil when current is the top tier.
// A nil current returns the lowest tier.
func (s TierSet) Next(current *Tier) *Tier {
	if current == nil {
		t := s.tiers[0]
		return &t
	}
	for i := range s.tiers {
		if s.tiers[i].Level == current.Level && i+1 < len(s.tiers) {
			t := s.tiers[i+1]
			return &t
		}
	}
	return nil
}
