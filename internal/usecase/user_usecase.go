package usecase

import (
	"context"
	"errors"

	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

// GetProfile returns the caller's role-specific profile.
func (uc *userUsecase) GetProfile(ctx context.Context, userID int64, role string) (any, error) {
	if role == domain.RoleRecruiter {
		p, err := uc.userRepo.GetRecruiterProfile(ctx, userID)
		if err != nil {
			return nil, uc.wrap(err)
		}
		return p, nil
	}
	p, err := uc.userRepo.GetApplicantProfile(ctx, userID)
	if err != nil {
		return nil, uc.wrap(err)
	}
	return p, nil
}

// GetProfileByID resolves the target's role first, then returns the
// matching profile.
func (uc *userUsecase) GetProfileByID(ctx context.Context, targetID int64) (any, error) {
	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, uc.wrap(err)
	}
	return uc.GetProfile(ctx, targetID, user.Role)
}

// UpdateApplicantProfile updates the applicant-editable profile fields.
func (uc *userUsecase) UpdateApplicantProfile(ctx context.Context, userID int64, profile *domain.ApplicantProfile) error {
	profile.UserID = userID
	return uc.wrap(uc.userRepo.UpdateApplicantProfile(ctx, profile))
}

// UpdateRecruiterProfile updates the recruiter-editable profile fields.
func (uc *userUsecase) UpdateRecruiterProfile(ctx context.Context, userID int64, profile *domain.RecruiterProfile) error {
	profile.UserID = userID
	return uc.wrap(uc.userRepo.UpdateRecruiterProfile(ctx, profile))
}

// AttachResume stores the media reference of an uploaded resume against
// the applicant's profile.
func (uc *userUsecase) AttachResume(ctx context.Context, userID int64, ref string) error {
	return uc.wrap(uc.userRepo.SetApplicantResume(ctx, userID, ref))
}

func (uc *userUsecase) wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Profile not found")
	}
	return apperror.Internal(err)
}
