package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
)

type interviewUsecase struct {
	interviewRepo   domain.InterviewRepository
	applicationRepo domain.ApplicationRepository
	tx              domain.TxRunner
}

// NewInterviewUsecase creates a new interview result usecase
func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	appRepo domain.ApplicationRepository,
	tx domain.TxRunner,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:   interviewRepo,
		applicationRepo: appRepo,
		tx:              tx,
	}
}

// Record stores a completed interview session against the applicant's own
// application. The overall score is always derived from the submitted
// per-question scores, never trusted from the client.
func (uc *interviewUsecase) Record(ctx context.Context, applicantID int64, result *domain.InterviewResult) (*domain.InterviewResult, error) {
	n := len(result.Questions)
	if n == 0 || len(result.Answers) != n || len(result.Scores) != n {
		return nil, apperror.New(400, apperror.KindMalformedResult,
			"Questions, answers and scores must be non-empty and of equal length", nil)
	}
	for _, s := range result.Scores {
		if s < 0 || s > 100 || math.IsNaN(s) {
			return nil, apperror.New(400, apperror.KindMalformedResult,
				"Each score must be between 0 and 100", nil)
		}
	}

	app, err := uc.applicationRepo.GetByID(ctx, result.ApplicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if app.ApplicantID != applicantID {
		return nil, apperror.Forbidden("This application is not yours")
	}

	var sum float64
	for _, s := range result.Scores {
		sum += s
	}
	result.OverallScore = sum / float64(n)
	result.JobID = app.JobID
	result.ApplicantID = applicantID
	result.CompletedAt = time.Now()

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.interviewRepo.Create(ctx, result); err != nil {
			return apperror.Internal(err)
		}
		if err := uc.applicationRepo.SetInterviewResult(ctx, result.ApplicationID, result.OverallScore); err != nil {
			return apperror.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetByApplication returns the interview result for an application the
// caller is a party to.
func (uc *interviewUsecase) GetByApplication(ctx context.Context, userID int64, role string, applicationID int64) (*domain.InterviewResult, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if role == domain.RoleApplicant && app.ApplicantID != userID {
		return nil, apperror.Forbidden("This application is not yours")
	}
	if role == domain.RoleRecruiter && app.RecruiterID != userID {
		return nil, apperror.Forbidden("You do not own this application's job")
	}

	result, err := uc.interviewRepo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No interview recorded for this application")
		}
		return nil, apperror.Internal(err)
	}
	return result, nil
}

// List returns the caller's interview results: their own sessions for an
// applicant, sessions across owned jobs for a recruiter.
func (uc *interviewUsecase) List(ctx context.Context, userID int64, role string) ([]domain.InterviewResult, error) {
	var (
		results []domain.InterviewResult
		err     error
	)
	if role == domain.RoleRecruiter {
		results, err = uc.interviewRepo.ListByRecruiter(ctx, userID)
	} else {
		results, err = uc.interviewRepo.ListByApplicant(ctx, userID)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return results, nil
}
