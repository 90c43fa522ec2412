package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

const profileColumns = `
	p.id, p.user_id, p.age, p.gender, p.city, p.about, p.religion, p.height,
	p.marital_status, p.mother_tongue, p.eating_habits, p.drinking_smoking,
	p.education, p.occupation, p.income_range, p.family_details, p.image_url,
	p.last_active, p.created_at, p.updated_at`

// Owner columns are aliased with the "user." prefix so sqlx maps them onto
// domain.Candidate.User.
const ownerColumns = `
	u.id AS "user.id", u.email AS "user.email", u.password AS "user.password",
	u.full_name AS "user.full_name", u.created_at AS "user.created_at"`

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, age, gender, city, about, religion, height,
			marital_status, mother_tongue, eating_habits, drinking_smoking,
			education, occupation, income_range, family_details, image_url
		)
		VALUES (
			:user_id, :age, :gender, :city, :about, :religion, :height,
			:marital_status, :mother_tongue, :eating_habits, :drinking_smoking,
			:education, :occupation, :income_range, :family_details, :image_url
		)
		RETURNING id, last_active, created_at, updated_at
	`
	err := r.namedScan(ctx, query, profile, &profile.ID, &profile.LastActive, &profile.CreatedAt, &profile.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrProfileExists
	}
	return err
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles p WHERE p.user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetCandidateByUserID(ctx context.Context, userID int) (*domain.Candidate, error) {
	var candidate domain.Candidate
	query := `
		SELECT ` + profileColumns + `, ` + ownerColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`
	err := r.db.GetContext(ctx, &candidate, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *profileRepository) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates := []domain.Candidate{}
	query := `
		SELECT ` + profileColumns + `, ` + ownerColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.id
	`
	err := r.db.SelectContext(ctx, &candidates, query)
	return candidates, err
}

// Update overwrites every optional attribute and marks the profile active now.
func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET age = :age, gender = :gender, city = :city, about = :about,
		    religion = :religion, height = :height, marital_status = :marital_status,
		    mother_tongue = :mother_tongue, eating_habits = :eating_habits,
		    drinking_smoking = :drinking_smoking, education = :education,
		    occupation = :occupation, income_range = :income_range,
		    family_details = :family_details, image_url = :image_url,
		    last_active = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = :user_id
		RETURNING id, last_active, created_at, updated_at
	`
	err := r.namedScan(ctx, query, profile, &profile.ID, &profile.LastActive, &profile.CreatedAt, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

// namedScan runs a named query expected to return exactly one row.
func (r *profileRepository) namedScan(ctx context.Context, query string, arg interface{}, dest ...interface{}) error {
	rows, err := r.db.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.Scan(dest...); err != nil {
		return fmt.Errorf("scan profile row: %w", err)
	}
	return rows.Err()
}
