package usecase

import (
	"context"
	"errors"
	"time"

	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
	tx              domain.TxRunner
}

// NewJobUsecase creates a new job usecase
func NewJobUsecase(
	jobRepo domain.JobRepository,
	appRepo domain.ApplicationRepository,
	tx domain.TxRunner,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		applicationRepo: appRepo,
		tx:              tx,
	}
}

// CreateJob publishes a new job posting owned by the recruiter.
func (uc *jobUsecase) CreateJob(ctx context.Context, recruiterID int64, job *domain.Job) error {
	if job.MaxApplicants <= 0 || job.MaxPositions <= 0 {
		return apperror.BadRequest("maxApplicants and maxPositions must be positive")
	}
	if job.MaxPositions > job.MaxApplicants {
		return apperror.BadRequest("maxPositions cannot exceed maxApplicants")
	}
	if !job.Deadline.After(time.Now()) {
		return apperror.BadRequest("Deadline must be in the future")
	}

	job.RecruiterID = recruiterID
	job.DateOfPosting = time.Now()
	job.AcceptedCandidates = 0

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJobDetails returns a single job posting.
func (uc *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// ListJobs returns the job feed with search, range filters and sorting.
func (uc *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// UpdateJob changes the mutable fields of an owned posting. Only the
// capacity limits and the deadline are recruiter-editable after posting.
func (uc *jobUsecase) UpdateJob(ctx context.Context, recruiterID, jobID int64, upd domain.JobUpdate) error {
	if upd.MaxApplicants == nil && upd.MaxPositions == nil && upd.Deadline == nil {
		return apperror.BadRequest("Nothing to update")
	}
	if upd.MaxApplicants != nil && *upd.MaxApplicants <= 0 {
		return apperror.BadRequest("maxApplicants must be positive")
	}
	if upd.MaxPositions != nil && *upd.MaxPositions <= 0 {
		return apperror.BadRequest("maxPositions must be positive")
	}

	err := uc.jobRepo.Update(ctx, jobID, recruiterID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found or not owned by you")
		}
		return apperror.Internal(err)
	}
	return nil
}

// DeleteJob removes an owned posting and soft-deletes its live
// applications in the same transaction. Terminal applications keep their
// status for history.
func (uc *jobUsecase) DeleteJob(ctx context.Context, recruiterID, jobID int64) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.applicationRepo.MarkDeletedForJob(ctx, jobID); err != nil {
			return apperror.Internal(err)
		}
		if err := uc.jobRepo.Delete(ctx, jobID, recruiterID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Job not found or not owned by you")
			}
			return apperror.Internal(err)
		}
		return nil
	})
}
