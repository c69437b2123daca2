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

func newInterviewUC(interviews *MockInterviewRepo, apps *MockApplicationRepo) domain.InterviewUsecase {
	return usecase.NewInterviewUsecase(interviews, apps, fakeTxRunner{})
}

func TestRecordInterview(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject mismatched question and score lists", func(t *testing.T) {
		uc := newInterviewUC(new(MockInterviewRepo), new(MockApplicationRepo))
		_, err := uc.Record(ctx, 1, &domain.InterviewResult{
			ApplicationID: 5,
			Questions:     []string{"q1", "q2"},
			Answers:       []string{"a1", "a2"},
			Scores:        []float64{80},
		})
		assertKind(t, err, apperror.KindMalformedResult)
	})

	t.Run("Should reject an empty session", func(t *testing.T) {
		uc := newInterviewUC(new(MockInterviewRepo), new(MockApplicationRepo))
		_, err := uc.Record(ctx, 1, &domain.InterviewResult{ApplicationID: 5})
		assertKind(t, err, apperror.KindMalformedResult)
	})

	t.Run("Should reject a score outside 0 to 100", func(t *testing.T) {
		uc := newInterviewUC(new(MockInterviewRepo), new(MockApplicationRepo))
		_, err := uc.Record(ctx, 1, &domain.InterviewResult{
			ApplicationID: 5,
			Questions:     []string{"q1"},
			Answers:       []string{"a1"},
			Scores:        []float64{140},
		})
		assertKind(t, err, apperror.KindMalformedResult)
	})

	t.Run("Should reject recording against someone else's application", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		apps.On("GetByID", ctx, int64(5)).Return(&domain.Application{ID: 5, ApplicantID: 99, JobID: 10}, nil)

		uc := newInterviewUC(new(MockInterviewRepo), apps)
		_, err := uc.Record(ctx, 1, &domain.InterviewResult{
			ApplicationID: 5,
			Questions:     []string{"q1"},
			Answers:       []string{"a1"},
			Scores:        []float64{70},
		})
		assertKind(t, err, apperror.KindForbidden)
	})

	t.Run("Should derive the overall score and persist both writes", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		interviews := new(MockInterviewRepo)
		apps.On("GetByID", ctx, int64(5)).Return(&domain.Application{ID: 5, ApplicantID: 1, JobID: 10}, nil)
		interviews.On("Create", ctx, mock.AnythingOfType("*domain.InterviewResult")).Return(nil)
		apps.On("SetInterviewResult", ctx, int64(5), 80.0).Return(nil)

		result, err := newInterviewUC(interviews, apps).Record(ctx, 1, &domain.InterviewResult{
			ApplicationID: 5,
			Questions:     []string{"q1", "q2", "q3"},
			Answers:       []string{"a1", "a2", "a3"},
			Scores:        []float64{70, 80, 90},
			OverallScore:  12, // client-supplied value is ignored
		})
		assert.NoError(t, err)
		assert.Equal(t, 80.0, result.OverallScore)
		assert.Equal(t, int64(10), result.JobID)
		assert.False(t, result.CompletedAt.IsZero())
		interviews.AssertExpectations(t)
		apps.AssertExpectations(t)
	})
}

func TestGetInterviewByApplication(t *testing.T) {
	ctx := context.Background()
	app := &domain.Application{ID: 5, ApplicantID: 1, RecruiterID: 2, JobID: 10}

	t.Run("Should let both parties read the result", func(t *testing.T) {
		for _, tc := range []struct {
			userID int64
			role   string
		}{
			{1, domain.RoleApplicant},
			{2, domain.RoleRecruiter},
		} {
			apps := new(MockApplicationRepo)
			interviews := new(MockInterviewRepo)
			apps.On("GetByID", ctx, int64(5)).Return(app, nil)
			interviews.On("GetByApplicationID", ctx, int64(5)).Return(&domain.InterviewResult{ApplicationID: 5}, nil)

			result, err := newInterviewUC(interviews, apps).GetByApplication(ctx, tc.userID, tc.role, 5)
			assert.NoError(t, err)
			assert.Equal(t, int64(5), result.ApplicationID)
		}
	})

	t.Run("Should forbid a third party", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		apps.On("GetByID", ctx, int64(5)).Return(app, nil)

		_, err := newInterviewUC(new(MockInterviewRepo), apps).GetByApplication(ctx, 99, domain.RoleRecruiter, 5)
		assertKind(t, err, apperror.KindForbidden)
	})

	t.Run("Should report when no interview was recorded", func(t *testing.T) {
		apps := new(MockApplicationRepo)
		interviews := new(MockInterviewRepo)
		apps.On("GetByID", ctx, int64(5)).Return(app, nil)
		interviews.On("GetByApplicationID", ctx, int64(5)).Return(nil, domain.ErrNotFound)

		_, err := newInterviewUC(interviews, apps).GetByApplication(ctx, 1, domain.RoleApplicant, 5)
		assertKind(t, err, apperror.KindNotFound)
	})
}
