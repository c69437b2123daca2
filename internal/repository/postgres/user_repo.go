package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-talented-backend/internal/domain"
)

type userRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool *pgxpool.Pool) domain.UserRepository {
	return &userRepo{pool: pool}
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, email, role, created_at FROM users WHERE id = $1`

	var user domain.User
	err := db(ctx, r.pool).QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetApplicantProfile retrieves an applicant's profile
func (r *userRepo) GetApplicantProfile(ctx context.Context, userID int64) (*domain.ApplicantProfile, error) {
	query := `
		SELECT user_id, name, education, skills, resume, rating, updated_at
		FROM applicant_profiles
		WHERE user_id = $1`

	var p domain.ApplicantProfile
	err := db(ctx, r.pool).QueryRow(ctx, query, userID).
		Scan(&p.UserID, &p.Name, &p.Education, &p.Skills, &p.Resume, &p.Rating, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetRecruiterProfile retrieves a recruiter's profile
func (r *userRepo) GetRecruiterProfile(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	query := `
		SELECT user_id, name, contact_number, bio, updated_at
		FROM recruiter_profiles
		WHERE user_id = $1`

	var p domain.RecruiterProfile
	err := db(ctx, r.pool).QueryRow(ctx, query, userID).
		Scan(&p.UserID, &p.Name, &p.ContactNumber, &p.Bio, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateApplicantProfile updates the applicant-editable fields. Resume and
// rating have their own writers and are left untouched here.
func (r *userRepo) UpdateApplicantProfile(ctx context.Context, profile *domain.ApplicantProfile) error {
	query := `
		UPDATE applicant_profiles
		SET name = $2, education = $3, skills = $4, updated_at = $5
		WHERE user_id = $1`

	result, err := db(ctx, r.pool).Exec(ctx, query,
		profile.UserID, profile.Name, profile.Education, profile.Skills, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateRecruiterProfile updates the recruiter-editable fields
func (r *userRepo) UpdateRecruiterProfile(ctx context.Context, profile *domain.RecruiterProfile) error {
	query := `
		UPDATE recruiter_profiles
		SET name = $2, contact_number = $3, bio = $4, updated_at = $5
		WHERE user_id = $1`

	result, err := db(ctx, r.pool).Exec(ctx, query,
		profile.UserID, profile.Name, profile.ContactNumber, profile.Bio, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetApplicantResume stores the media reference of an uploaded resume.
func (r *userRepo) SetApplicantResume(ctx context.Context, userID int64, ref string) error {
	result, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE applicant_profiles SET resume = $2, updated_at = $3 WHERE user_id = $1`,
		userID, ref, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetApplicantRating writes back the recomputed average rating.
func (r *userRepo) SetApplicantRating(ctx context.Context, userID int64, rating float64) error {
	result, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE applicant_profiles SET rating = $2 WHERE user_id = $1`,
		userID, rating)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
