package usecase

import (
	"context"
	"errors"

	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
)

type ratingUsecase struct {
	ratingRepo      domain.RatingRepository
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
	tx              domain.TxRunner
}

// NewRatingUsecase creates a new rating usecase
func NewRatingUsecase(
	ratingRepo domain.RatingRepository,
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
	tx domain.TxRunner,
) domain.RatingUsecase {
	return &ratingUsecase{
		ratingRepo:      ratingRepo,
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		tx:              tx,
	}
}

// Rate records or overwrites the sender's rating of the receiver and
// recomputes the receiver's aggregate in the same transaction. Recruiters
// rate applicants; applicants rate jobs. Eligibility requires an accepted
// or finished engagement and is only checked for a first rating; an
// existing rating stays editable even after the engagement ends.
func (uc *ratingUsecase) Rate(ctx context.Context, senderID int64, senderRole string, receiverID int64, value float64) error {
	if value < 1 || value > 5 {
		return apperror.BadRequest("Rating must be between 1 and 5")
	}

	category := domain.RatingCategoryJob
	if senderRole == domain.RoleRecruiter {
		category = domain.RatingCategoryApplicant
	}

	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := uc.ratingRepo.Get(ctx, senderID, receiverID, category)
		switch {
		case err == nil:
			// Re-rating: eligibility was established on the first rating.
		case errors.Is(err, domain.ErrNotFound):
			eligible, err := uc.eligible(ctx, senderID, senderRole, receiverID)
			if err != nil {
				return apperror.Internal(err)
			}
			if !eligible {
				return apperror.Conflict(apperror.KindNotEligible,
					"You can only rate after an accepted or finished engagement")
			}
		default:
			return apperror.Internal(err)
		}

		rating := &domain.Rating{
			SenderID:   senderID,
			ReceiverID: receiverID,
			Category:   category,
			Value:      value,
		}
		if err := uc.ratingRepo.Upsert(ctx, rating); err != nil {
			return apperror.Internal(err)
		}

		avg, err := uc.ratingRepo.AverageFor(ctx, receiverID, category)
		if err != nil {
			return apperror.New(500, apperror.KindAggregateUpdate,
				"Error while calculating rating", err)
		}
		if category == domain.RatingCategoryApplicant {
			err = uc.userRepo.SetApplicantRating(ctx, receiverID, avg)
		} else {
			err = uc.jobRepo.SetRating(ctx, receiverID, avg)
		}
		if err != nil {
			return apperror.New(500, apperror.KindAggregateUpdate,
				"Error while updating rating", err)
		}
		return nil
	})
}

// Get returns the sender's own rating of the receiver, or the NoRating
// sentinel when none exists.
func (uc *ratingUsecase) Get(ctx context.Context, senderID int64, senderRole string, receiverID int64) (float64, error) {
	category := domain.RatingCategoryJob
	if senderRole == domain.RoleRecruiter {
		category = domain.RatingCategoryApplicant
	}

	rating, err := uc.ratingRepo.Get(ctx, senderID, receiverID, category)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NoRating, nil
		}
		return domain.NoRating, apperror.Internal(err)
	}
	return rating.Value, nil
}

// eligible checks for a qualifying engagement between the parties. A
// recruiter rating an applicant needs one on any of their jobs; an
// applicant rating a job needs one on that specific job.
func (uc *ratingUsecase) eligible(ctx context.Context, senderID int64, senderRole string, receiverID int64) (bool, error) {
	if senderRole == domain.RoleRecruiter {
		return uc.applicationRepo.EligibleEngagementExists(ctx, receiverID, senderID, nil)
	}

	job, err := uc.jobRepo.GetByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return uc.applicationRepo.EligibleEngagementExists(ctx, senderID, job.RecruiterID, &job.ID)
}
