package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	tx              domain.TxRunner
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	tx domain.TxRunner,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		tx:              tx,
	}
}

// Apply submits an applicant's application to a job. Every admission check
// runs inside one transaction so no check can observe a half-applied state.
func (uc *applicationUsecase) Apply(ctx context.Context, applicantID, jobID int64, sop string) (*domain.Application, error) {
	var created *domain.Application

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		// 1. Reject a second application to the same job
		open, err := uc.applicationRepo.OpenPairExists(ctx, applicantID, jobID)
		if err != nil {
			return apperror.Internal(err)
		}
		if open {
			return apperror.Conflict(apperror.KindDuplicateApplication,
				"You have already applied for this job")
		}

		// 2. Validate the job exists. The row lock serializes concurrent
		// applies (and accepts) on the same job, so the capacity counts
		// below cannot both read the last free slot.
		job, err := uc.jobRepo.GetByIDForUpdate(ctx, jobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Job does not exist")
			}
			return apperror.Internal(err)
		}

		// 3. Job-side capacity: active applications vs maxApplicants
		jobActive, err := uc.applicationRepo.ActiveCountForJob(ctx, jobID)
		if err != nil {
			return apperror.Internal(err)
		}
		if jobActive >= int64(job.MaxApplicants) {
			return apperror.Conflict(apperror.KindJobApplicationLimit,
				"Application limit reached")
		}

		// 4. Applicant-side capacity: active applications across all jobs
		myActive, err := uc.applicationRepo.ActiveCountForApplicant(ctx, applicantID)
		if err != nil {
			return apperror.Internal(err)
		}
		if myActive >= domain.MaxActiveApplicationsPerApplicant {
			return apperror.Conflict(apperror.KindApplicantLimit,
				fmt.Sprintf("You have %d active applications. Hence you cannot apply.", myActive))
		}

		// 5. An accepted applicant cannot apply anywhere until finished
		accepted, err := uc.applicationRepo.AcceptedCountForApplicant(ctx, applicantID)
		if err != nil {
			return apperror.Internal(err)
		}
		if accepted > 0 {
			return apperror.Conflict(apperror.KindAlreadyEmployed,
				"You already have an accepted job. Hence you cannot apply.")
		}

		app := &domain.Application{
			ApplicantID:       applicantID,
			RecruiterID:       job.RecruiterID,
			JobID:             jobID,
			Status:            domain.StatusApplied,
			SOP:               sop,
			DateOfApplication: time.Now(),
		}
		if err := uc.applicationRepo.Create(ctx, app); err != nil {
			return apperror.Internal(err)
		}
		created = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetMyApplications returns the caller's applications: an applicant sees
// their own, a recruiter sees applications across their jobs.
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID int64, role string) ([]domain.Application, error) {
	var (
		apps []domain.Application
		err  error
	)
	if role == domain.RoleRecruiter {
		apps, err = uc.applicationRepo.ListForRecruiter(ctx, userID, domain.ApplicationFilter{})
	} else {
		apps, err = uc.applicationRepo.GetByApplicantID(ctx, userID)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListByJobID returns a job's applications for its owning recruiter.
func (uc *applicationUsecase) ListByJobID(ctx context.Context, recruiterID, jobID int64, statuses []string) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.RecruiterID != recruiterID {
		return nil, apperror.Forbidden("You do not own this job")
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID, recruiterID, statuses)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListApplicants lists applications across the recruiter's jobs with
// filtering and sorting.
func (uc *applicationUsecase) ListApplicants(ctx context.Context, recruiterID int64, filter domain.ApplicationFilter) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.ListForRecruiter(ctx, recruiterID, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// Accept moves an application to accepted. The job row is locked for the
// whole transaction so two concurrent accepts on the same job serialize;
// the positions check, the cascade withdrawal of the applicant's other
// pending applications, and the counter refresh all commit together.
func (uc *applicationUsecase) Accept(ctx context.Context, recruiterID, applicationID int64, dateOfJoining time.Time) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		app, err := uc.applicationRepo.GetByID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Application not found")
			}
			return apperror.Internal(err)
		}
		// An application on another recruiter's job is reported as absent
		// rather than revealing it exists.
		if app.RecruiterID != recruiterID {
			return apperror.NotFound("Application not found")
		}
		if app.Status != domain.StatusApplied && app.Status != domain.StatusShortlisted {
			return apperror.Conflict(apperror.KindInvalidTransition,
				fmt.Sprintf("Cannot accept an application in status %q", app.Status))
		}

		job, err := uc.jobRepo.GetByIDForUpdate(ctx, app.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Job not found")
			}
			return apperror.Internal(err)
		}

		acceptedCount, err := uc.applicationRepo.AcceptedCountForJob(ctx, app.JobID)
		if err != nil {
			return apperror.Internal(err)
		}
		if acceptedCount >= int64(job.MaxPositions) {
			return apperror.Conflict(apperror.KindPositionsFilled,
				"All positions for this job are already filled")
		}

		if dateOfJoining.IsZero() {
			dateOfJoining = time.Now()
		}
		if err := uc.applicationRepo.Accept(ctx, applicationID, dateOfJoining); err != nil {
			return apperror.Internal(err)
		}

		// Withdraw the applicant's other pending applications everywhere.
		if _, err := uc.applicationRepo.CancelOtherPending(ctx, app.ApplicantID, applicationID); err != nil {
			return apperror.Internal(err)
		}

		// Refresh the denormalized counter from the live count rather than
		// incrementing, so it cannot drift under concurrency.
		fresh, err := uc.applicationRepo.AcceptedCountForJob(ctx, app.JobID)
		if err != nil {
			return apperror.Internal(err)
		}
		if err := uc.jobRepo.SetAcceptedCandidates(ctx, app.JobID, int(fresh)); err != nil {
			return apperror.Internal(err)
		}
		return nil
	})
}

// UpdateStatus applies a role-scoped status transition. Acceptance is not
// reachable here; it has its own capacity-gated operation.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, userID int64, role string, applicationID int64, status string) error {
	if status == domain.StatusAccepted {
		return apperror.BadRequest("Use the accept operation to accept an application")
	}
	if !domain.RoleMayRequest(role, status) {
		return apperror.Forbidden(fmt.Sprintf("Your role cannot set status %q", status))
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	if role == domain.RoleRecruiter && app.RecruiterID != userID {
		return apperror.Forbidden("You do not own this application's job")
	}
	if role == domain.RoleApplicant && app.ApplicantID != userID {
		return apperror.Forbidden("This application is not yours")
	}

	if !domain.CanTransition(role, app.Status, status) {
		return apperror.Conflict(apperror.KindInvalidTransition,
			fmt.Sprintf("Cannot move application from %q to %q", app.Status, status))
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
