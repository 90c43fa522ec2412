package matching

import (
	"math/rand/v2"
	"testing"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_AnonymousRange(t *testing.T) {
	s := NewScorer(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 500; i++ {
		got := s.Score(nil, &domain.Profile{})
		require.GreaterOrEqual(t, got, 70)
		require.LessOrEqual(t, got, 84)
	}

	assert.Equal(t, 70, NewScorer(fixedSource{v: 0}).Score(nil, &domain.Profile{}))
	assert.Equal(t, 84, NewScorer(fixedSource{v: 100}).Score(nil, &domain.Profile{}))
}

func TestScorer_ViewerRange(t *testing.T) {
	s := NewScorer(rand.New(rand.NewPCG(3, 4)))
	best := &domain.Profile{
		City: strp("Pune"), Religion: strp("Hindu"), MotherTongue: strp("Marathi"),
		Occupation: strp("Engineer"), Age: intp(28),
	}
	worst := &domain.Profile{Age: intp(60)}

	for i := 0; i < 500; i++ {
		for _, cand := range []*domain.Profile{best, worst, {}} {
			got := s.Score(best, cand)
			require.GreaterOrEqual(t, got, 55)
			require.LessOrEqual(t, got, 96)
		}
	}
}

func TestScorer_BaseAndClamp(t *testing.T) {
	zero := NewScorer(fixedSource{v: 0})
	assert.Equal(t, 60, zero.Score(&domain.Profile{}, &domain.Profile{}))

	// 60 - 2 stays above the floor; the floor only matters with negative sums.
	assert.Equal(t, 58, zero.Score(&domain.Profile{Age: intp(20)}, &domain.Profile{Age: intp(40)}))

	all := &domain.Profile{
		City: strp("Pune"), Religion: strp("Hindu"), MotherTongue: strp("Marathi"),
		Occupation: strp("Engineer"), Age: intp(28),
	}
	// 60+10+10+5+4+6+5 = 100, clamped.
	assert.Equal(t, 96, NewScorer(fixedSource{v: 5}).Score(all, all))
}

func TestScorer_IndividualBonuses(t *testing.T) {
	s := NewScorer(fixedSource{v: 0})
	baseline := s.Score(&domain.Profile{}, &domain.Profile{})

	tests := []struct {
		name      string
		viewer    domain.Profile
		candidate domain.Profile
		delta     int
	}{
		{"same city", domain.Profile{City: strp("Pune")}, domain.Profile{City: strp("Pune")}, 10},
		{"different city", domain.Profile{City: strp("Pune")}, domain.Profile{City: strp("Mumbai")}, 0},
		{"empty city never matches", domain.Profile{City: strp("")}, domain.Profile{City: strp("")}, 0},
		{"same religion", domain.Profile{Religion: strp("Jain")}, domain.Profile{Religion: strp("Jain")}, 10},
		{"same mother tongue", domain.Profile{MotherTongue: strp("Tamil")}, domain.Profile{MotherTongue: strp("Tamil")}, 5},
		{"occupation substring", domain.Profile{Occupation: strp("Engineer")}, domain.Profile{Occupation: strp("Software Engineer")}, 4},
		{"occupation is case sensitive", domain.Profile{Occupation: strp("engineer")}, domain.Profile{Occupation: strp("Software Engineer")}, 0},
		{"age diff 0", domain.Profile{Age: intp(30)}, domain.Profile{Age: intp(30)}, 6},
		{"age diff 2", domain.Profile{Age: intp(30)}, domain.Profile{Age: intp(28)}, 6},
		{"age diff 3", domain.Profile{Age: intp(30)}, domain.Profile{Age: intp(33)}, 3},
		{"age diff 5", domain.Profile{Age: intp(30)}, domain.Profile{Age: intp(25)}, 3},
		{"age diff 6", domain.Profile{Age: intp(30)}, domain.Profile{Age: intp(36)}, -2},
		{"candidate age missing", domain.Profile{Age: intp(30)}, domain.Profile{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(&tt.viewer, &tt.candidate)
			assert.Equal(t, baseline+tt.delta, got)
		})
	}
}

func TestScorer_JitterIsAdditive(t *testing.T) {
	viewer := &domain.Profile{City: strp("Pune")}
	cand := &domain.Profile{City: strp("Pune")}

	assert.Equal(t, 70, NewScorer(fixedSource{v: 0}).Score(viewer, cand))
	assert.Equal(t, 75, NewScorer(fixedSource{v: 5}).Score(viewer, cand))
}
