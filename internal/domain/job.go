package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job is a posting owned by a recruiter. MaxApplicants caps concurrently
// active applications, MaxPositions caps concurrently accepted applicants.
// AcceptedCandidates is refreshed from the live accepted count inside the
// same transaction that changes it, never incremented blindly.
type Job struct {
	ID                 int64     `json:"id"`
	RecruiterID        int64     `json:"recruiter_id"`
	Title              string    `json:"title"`
	MaxApplicants      int       `json:"max_applicants"`
	MaxPositions       int       `json:"max_positions"`
	AcceptedCandidates int       `json:"accepted_candidates"`
	DateOfPosting      time.Time `json:"date_of_posting"`
	Deadline           time.Time `json:"deadline"`
	Skillsets          []string  `json:"skillsets"`
	JobType            string    `json:"job_type"`
	Duration           int       `json:"duration"`
	Salary             int       `json:"salary"`
	Rating             float64   `json:"rating"`

	// Joined data for list responses
	RecruiterName *string `json:"recruiter_name,omitempty"`
}

// JobFilter narrows job listings.
type JobFilter struct {
	RecruiterID *int64
	TitleQuery  string
	JobTypes    []string
	SalaryMin   *int
	SalaryMax   *int
	MaxDuration *int
	SortBy      string
	SortDesc    bool
}

// JobUpdate carries the recruiter-mutable fields. Nil means unchanged.
type JobUpdate struct {
	MaxApplicants *int
	MaxPositions  *int
	Deadline      *time.Time
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// GetByIDForUpdate locks the job row for the remainder of the current
	// transaction, serializing concurrent capacity checks on the same job.
	GetByIDForUpdate(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, filter JobFilter) ([]Job, error)
	Update(ctx context.Context, id, recruiterID int64, upd JobUpdate) error
	SetAcceptedCandidates(ctx context.Context, id int64, count int) error
	SetRating(ctx context.Context, id int64, rating float64) error
	Delete(ctx context.Context, id, recruiterID int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, recruiterID int64, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	UpdateJob(ctx context.Context, recruiterID, jobID int64, upd JobUpdate) error
	DeleteJob(ctx context.Context, recruiterID, jobID int64) error
}
