package matching

import (
	"fmt"
	"sort"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

// RecommendationLimit caps the recommendation list.
const RecommendationLimit = 6

// Engine turns a snapshot of candidates into scored, filtered view models.
// It does no I/O; callers load the pool beforehand.
type Engine struct {
	scorer     *Scorer
	classifier *Classifier
}

func NewEngine(scorer *Scorer, classifier *Classifier) *Engine {
	return &Engine{
		scorer:     scorer,
		classifier: classifier,
	}
}

// ListProfiles returns the candidates that pass criteria, in pool order.
// When viewerID is set the viewer is scored against and left out of the
// result; a viewer without a profile in the pool is an error.
func (e *Engine) ListProfiles(pool []domain.Candidate, viewerID *int, criteria Criteria) ([]domain.MatchViewModel, error) {
	var viewer *domain.Profile
	if viewerID != nil {
		v, err := findViewer(pool, *viewerID)
		if err != nil {
			return nil, err
		}
		viewer = &v.Profile
	}

	result := make([]domain.MatchViewModel, 0, len(pool))
	for i := range pool {
		cand := &pool[i]
		if viewerID != nil && cand.UserID == *viewerID {
			continue
		}
		if !criteria.matchesProfile(cand) {
			continue
		}
		vm := e.Present(viewer, cand)
		if !criteria.matchesScore(vm.CompatibilityScore) {
			continue
		}
		result = append(result, vm)
	}
	return result, nil
}

// RecommendMatches returns up to RecommendationLimit candidates of a
// different gender than the viewer, best score first.
func (e *Engine) RecommendMatches(pool []domain.Candidate, viewerID int) ([]domain.MatchViewModel, error) {
	v, err := findViewer(pool, viewerID)
	if err != nil {
		return nil, err
	}
	viewer := &v.Profile

	result := make([]domain.MatchViewModel, 0, len(pool))
	for i := range pool {
		cand := &pool[i]
		if cand.UserID == viewerID || sameGender(viewer, &cand.Profile) {
			continue
		}
		result = append(result, e.Present(viewer, cand))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CompatibilityScore > result[j].CompatibilityScore
	})
	if len(result) > RecommendationLimit {
		result = result[:RecommendationLimit]
	}
	return result, nil
}

// Present builds the view model of cand as seen by viewer (nil for anonymous).
func (e *Engine) Present(viewer *domain.Profile, cand *domain.Candidate) domain.MatchViewModel {
	score := e.scorer.Score(viewer, &cand.Profile)
	return domain.MatchViewModel{
		ID:                 cand.UserID,
		Name:               cand.User.FullName,
		Age:                cand.Age,
		City:               cand.City,
		Religion:           cand.Religion,
		Occupation:         cand.Occupation,
		Height:             cand.Height,
		Image:              domain.Str(cand.ImageURL),
		Compatibility:      fmt.Sprintf("%d%% match", score),
		CompatibilityScore: score,
		Badge:              e.classifier.Badge(&cand.Profile),
	}
}

func findViewer(pool []domain.Candidate, userID int) (*domain.Candidate, error) {
	for i := range pool {
		if pool[i].UserID == userID {
			return &pool[i], nil
		}
	}
	return nil, fmt.Errorf("viewer %d: %w", userID, domain.ErrProfileNotFound)
}

// sameGender compares the raw gender values. Two unset genders compare equal.
func sameGender(a, b *domain.Profile) bool {
	return domain.Str(a.Gender) == domain.Str(b.Gender)
}
