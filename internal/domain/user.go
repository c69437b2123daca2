package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleApplicant = "applicant"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplicantProfile holds the applicant-side profile. Rating is the
// aggregate written back by the rating aggregator.
type ApplicantProfile struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Education []string  `json:"education"`
	Skills    []string  `json:"skills"`
	Resume    string    `json:"resume"` // opaque media storage reference
	Rating    float64   `json:"rating"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RecruiterProfile struct {
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Bio           string    `json:"bio"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetApplicantProfile(ctx context.Context, userID int64) (*ApplicantProfile, error)
	GetRecruiterProfile(ctx context.Context, userID int64) (*RecruiterProfile, error)
	UpdateApplicantProfile(ctx context.Context, profile *ApplicantProfile) error
	UpdateRecruiterProfile(ctx context.Context, profile *RecruiterProfile) error
	SetApplicantResume(ctx context.Context, userID int64, ref string) error
	SetApplicantRating(ctx context.Context, userID int64, rating float64) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64, role string) (any, error)
	GetProfileByID(ctx context.Context, targetID int64) (any, error)
	UpdateApplicantProfile(ctx context.Context, userID int64, profile *ApplicantProfile) error
	UpdateRecruiterProfile(ctx context.Context, userID int64, profile *RecruiterProfile) error
	AttachResume(ctx context.Context, userID int64, ref string) error
}
