package matching

import (
	"math/rand/v2"
	"strings"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

const (
	anonymousBase   = 70
	anonymousJitter = 15 // 70..84

	baseScore = 60
	maxJitter = 5

	minScore = 55
	maxScore = 96

	cityBonus         = 10
	religionBonus     = 10
	motherTongueBonus = 5
	occupationBonus   = 4
	closeAgeBonus     = 6
	nearAgeBonus      = 3
	farAgePenalty     = -2
)

// RandomSource yields a non-negative pseudo-random int in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Scorer computes the compatibility heuristic. It is safe for concurrent use
// when its RandomSource is.
type Scorer struct {
	rng RandomSource
}

// NewScorer returns a Scorer drawing jitter from rng, or from the shared
// math/rand/v2 generator when rng is nil.
func NewScorer(rng RandomSource) *Scorer {
	if rng == nil {
		rng = globalSource{}
	}
	return &Scorer{rng: rng}
}

// Score rates candidate for viewer. Without a viewer the result is a plain
// 70..84 draw and is not clamped; with a viewer it is clamped to 55..96.
func (s *Scorer) Score(viewer, candidate *domain.Profile) int {
	if viewer == nil {
		return anonymousBase + s.rng.IntN(anonymousJitter)
	}

	score := baseScore
	if sameText(viewer.City, candidate.City) {
		score += cityBonus
	}
	if sameText(viewer.Religion, candidate.Religion) {
		score += religionBonus
	}
	if sameText(viewer.MotherTongue, candidate.MotherTongue) {
		score += motherTongueBonus
	}
	if domain.HasText(viewer.Occupation) && domain.HasText(candidate.Occupation) &&
		strings.Contains(*candidate.Occupation, *viewer.Occupation) {
		score += occupationBonus
	}
	if viewer.Age != nil && candidate.Age != nil {
		score += ageBonus(*viewer.Age, *candidate.Age)
	}
	score += s.rng.IntN(maxJitter + 1)

	return clamp(score, minScore, maxScore)
}

func ageBonus(a, b int) int {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 2:
		return closeAgeBonus
	case diff <= 5:
		return nearAgeBonus
	default:
		return farAgePenalty
	}
}

func sameText(a, b *string) bool {
	return domain.HasText(a) && domain.HasText(b) && *a == *b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
