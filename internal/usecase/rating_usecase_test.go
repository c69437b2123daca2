package usecase_test

import (
	"context"
	"testing"

	"go-talented-backend/internal/domain"
	"go-talented-backend/internal/usecase"
	"go-talented-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ratingMocks struct {
	ratings *MockRatingRepo
	apps    *MockApplicationRepo
	jobs    *MockJobRepo
	users   *MockUserRepo
}

func newRatingUC(m ratingMocks) domain.RatingUsecase {
	return usecase.NewRatingUsecase(m.ratings, m.apps, m.jobs, m.users, fakeTxRunner{})
}

func TestRate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a value outside 1 to 5", func(t *testing.T) {
		uc := newRatingUC(ratingMocks{
			ratings: new(MockRatingRepo), apps: new(MockApplicationRepo),
			jobs: new(MockJobRepo), users: new(MockUserRepo),
		})
		err := uc.Rate(ctx, 2, domain.RoleRecruiter, 1, 0)
		assertKind(t, err, apperror.KindValidation)
		err = uc.Rate(ctx, 2, domain.RoleRecruiter, 1, 5.5)
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should reject a first rating without a qualifying engagement", func(t *testing.T) {
		m := ratingMocks{
			ratings: new(MockRatingRepo), apps: new(MockApplicationRepo),
			jobs: new(MockJobRepo), users: new(MockUserRepo),
		}
		m.ratings.On("Get", ctx, int64(2), int64(1), domain.RatingCategoryApplicant).Return(nil, domain.ErrNotFound)
		m.apps.On("EligibleEngagementExists", ctx, int64(1), int64(2), (*int64)(nil)).Return(false, nil)

		err := newRatingUC(m).Rate(ctx, 2, domain.RoleRecruiter, 1, 4)
		assertKind(t, err, apperror.KindNotEligible)
		m.ratings.AssertNotCalled(t, "Upsert")
	})

	t.Run("Should let a recruiter rate an accepted applicant and refresh the aggregate", func(t *testing.T) {
		m := ratingMocks{
			ratings: new(MockRatingRepo), apps: new(MockApplicationRepo),
			jobs: new(MockJobRepo), users: new(MockUserRepo),
		}
		m.ratings.On("Get", ctx, int64(2), int64(1), domain.RatingCategoryApplicant).Return(nil, domain.ErrNotFound)
		m.apps.On("EligibleEngagementExists", ctx, int64(1), int64(2), (*int64)(nil)).Return(true, nil)
		m.ratings.On("Upsert", ctx, mock.AnythingOfType("*domain.Rating")).Return(nil).Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Rating)
			assert.Equal(t, domain.RatingCategoryApplicant, r.Category)
			assert.Equal(t, 4.0, r.Value)
		})
		m.ratings.On("AverageFor", ctx, int64(1), domain.RatingCategoryApplicant).Return(4.5, nil)
		m.users.On("SetApplicantRating", ctx, int64(1), 4.5).Return(nil)

		err := newRatingUC(m).Rate(ctx, 2, domain.RoleRecruiter, 1, 4)
		assert.NoError(t, err)
		m.ratings.AssertExpectations(t)
		m.users.AssertExpectations(t)
	})

	t.Run("Should skip the eligibility check when overwriting an existing rating", func(t *testing.T) {
		m := ratingMocks{
			ratings: new(MockRatingRepo), apps: new(MockApplicationRepo),
			jobs: new(MockJobRepo), users: new(MockUserRepo),
		}
		existing := &domain.Rating{SenderID: 1, ReceiverID: 10, Category: domain.RatingCategoryJob, Value: 2}
		m.ratings.On("Get", ctx, int64(1), int64(10), domain.RatingCategoryJob).Return(existing, nil)
		m.ratings.On("Upsert", ctx, mock.AnythingOfType("*domain.Rating")).Return(nil)
		m.ratings.On("AverageFor", ctx, int64(10), domain.RatingCategoryJob).Return(3.0, nil)
		m.jobs.On("SetRating", ctx, int64(10), 3.0).Return(nil)

		err := newRatingUC(m).Rate(ctx, 1, domain.RoleApplicant, 10, 3)
		assert.NoError(t, err)
		m.apps.AssertNotCalled(t, "EligibleEngagementExists")
	})

	t.Run("Should check the applicant's engagement against the rated job", func(t *testing.T) {
		m := ratingMocks{
			ratings: new(MockRatingRepo), apps: new(MockApplicationRepo),
			jobs: new(MockJobRepo), users: new(MockUserRepo),
		}
		jobID := int64(10)
		m.ratings.On("Get", ctx, int64(1), jobID, domain.RatingCategoryJob).Return(nil, domain.ErrNotFound)
		m.jobs.On("GetByID", ctx, jobID).Return(&domain.Job{ID: jobID, RecruiterID: 2}, nil)
		m.apps.On("EligibleEngagementExists", ctx, int64(1), int64(2), &jobID).Return(true, nil)
		m.ratings.On("Upsert", ctx, mock.AnythingOfType("*domain.Rating")).Return(nil)
		m.ratings.On("AverageFor", ctx, jobID, domain.RatingCategoryJob).Return(5.0, nil)
		m.jobs.On("SetRating", ctx, jobID, 5.0).Return(nil)

		err := newRatingUC(m).Rate(ctx, 1, domain.RoleApplicant, jobID, 5)
		assert.NoError(t, err)
		m.apps.AssertExpectations(t)
	})

	t.Run("Should surface an aggregate recompute failure", func(t *testing.T) {
		m := ratingMocks{
			ratings: new(MockRatingRepo), apps: new(MockApplicationRepo),
			jobs: new(MockJobRepo), users: new(MockUserRepo),
		}
		existing := &domain.Rating{SenderID: 2, ReceiverID: 1, Category: domain.RatingCategoryApplicant, Value: 3}
		m.ratings.On("Get", ctx, int64(2), int64(1), domain.RatingCategoryApplicant).Return(existing, nil)
		m.ratings.On("Upsert", ctx, mock.AnythingOfType("*domain.Rating")).Return(nil)
		m.ratings.On("AverageFor", ctx, int64(1), domain.RatingCategoryApplicant).Return(0.0, assert.AnError)

		err := newRatingUC(m).Rate(ctx, 2, domain.RoleRecruiter, 1, 3)
		assertKind(t, err, apperror.KindAggregateUpdate)
	})
}

func TestGetRating(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the stored value", func(t *testing.T) {
		m := ratingMocks{
			ratings: new(MockRatingRepo), apps: new(MockApplicationRepo),
			jobs: new(MockJobRepo), users: new(MockUserRepo),
		}
		m.ratings.On("Get", ctx, int64(2), int64(1), domain.RatingCategoryApplicant).
			Return(&domain.Rating{Value: 4}, nil)

		value, err := newRatingUC(m).Get(ctx, 2, domain.RoleRecruiter, 1)
		assert.NoError(t, err)
		assert.Equal(t, 4.0, value)
	})

	t.Run("Should return the sentinel when the sender has not rated", func(t *testing.T) {
		m := ratingMocks{
			ratings: new(MockRatingRepo), apps: new(MockApplicationRepo),
			jobs: new(MockJobRepo), users: new(MockUserRepo),
		}
		m.ratings.On("Get", ctx, int64(1), int64(10), domain.RatingCategoryJob).Return(nil, domain.ErrNotFound)

		value, err := newRatingUC(m).Get(ctx, 1, domain.RoleApplicant, 10)
		assert.NoError(t, err)
		assert.Equal(t, float64(domain.NoRating), value)
	})
}
