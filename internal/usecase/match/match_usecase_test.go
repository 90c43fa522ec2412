package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func newUseCaseWithMock(t *testing.T) (*MatchUseCase, *mocks.MockProfileRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	engine := matching.NewEngine(matching.NewScorer(zeroSource{}), matching.NewClassifier(time.Now))
	return NewMatchUseCase(repo, engine), repo
}

func pool() []domain.Candidate {
	return []domain.Candidate{
		{Profile: domain.Profile{ID: 1, UserID: 1, Gender: strp(domain.GenderWoman), City: strp("Pune"), Age: intp(26)}, User: domain.User{ID: 1, FullName: "Priya"}},
		{Profile: domain.Profile{ID: 2, UserID: 2, Gender: strp(domain.GenderMan), City: strp("Pune"), Age: intp(27)}, User: domain.User{ID: 2, FullName: "Arjun"}},
		{Profile: domain.Profile{ID: 3, UserID: 3, Gender: strp(domain.GenderMan), City: strp("Mumbai"), Age: intp(40)}, User: domain.User{ID: 3, FullName: "Vikram"}},
	}
}

func TestListProfiles_Anonymous(t *testing.T) {
	uc, repo := newUseCaseWithMock(t)
	repo.EXPECT().ListCandidates(gomock.Any()).Return(pool(), nil)

	got, err := uc.ListProfiles(context.Background(), nil, matching.Filters{City: "Pune", AgeRange: matching.Any})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Priya", got[0].Name)
	assert.Equal(t, "Arjun", got[1].Name)
}

func TestListProfiles_Viewer(t *testing.T) {
	uc, repo := newUseCaseWithMock(t)
	repo.EXPECT().ListCandidates(gomock.Any()).Return(pool(), nil)

	got, err := uc.ListProfiles(context.Background(), intp(1), matching.Filters{Compatibility: "75+"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 76, got[0].CompatibilityScore)
}

func TestListProfiles_UnknownViewer(t *testing.T) {
	uc, repo := newUseCaseWithMock(t)
	repo.EXPECT().ListCandidates(gomock.Any()).Return(pool(), nil)

	_, err := uc.ListProfiles(context.Background(), intp(99), matching.Filters{})
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestListProfiles_InvalidViewerID(t *testing.T) {
	uc, _ := newUseCaseWithMock(t)
	_, err := uc.ListProfiles(context.Background(), intp(0), matching.Filters{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListProfiles_StoreError(t *testing.T) {
	uc, repo := newUseCaseWithMock(t)
	boom := errors.New("timeout")
	repo.EXPECT().ListCandidates(gomock.Any()).Return(nil, boom)

	_, err := uc.ListProfiles(context.Background(), nil, matching.Filters{})
	require.ErrorIs(t, err, boom)
}

func TestRecommendMatches(t *testing.T) {
	uc, repo := newUseCaseWithMock(t)
	repo.EXPECT().ListCandidates(gomock.Any()).Return(pool(), nil)

	got, err := uc.RecommendMatches(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestRecommendMatches_Errors(t *testing.T) {
	uc, repo := newUseCaseWithMock(t)

	_, err := uc.RecommendMatches(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.EXPECT().ListCandidates(gomock.Any()).Return(pool(), nil)
	_, err = uc.RecommendMatches(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}
