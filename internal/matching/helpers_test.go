package matching

import (
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

// fixedSource always draws the same value, capped to the requested range.
type fixedSource struct{ v int }

func (f fixedSource) IntN(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func newTestEngine(jitter int) *Engine {
	return NewEngine(
		NewScorer(fixedSource{v: jitter}),
		NewClassifier(func() time.Time { return testNow }),
	)
}

func candidate(userID int, fullName string, p domain.Profile) domain.Candidate {
	p.ID = userID * 10
	p.UserID = userID
	return domain.Candidate{
		Profile: p,
		User:    domain.User{ID: userID, FullName: fullName},
	}
}

func ids(vms []domain.MatchViewModel) []int {
	out := make([]int, 0, len(vms))
	for _, vm := range vms {
		out = append(out, vm.ID)
	}
	return out
}
