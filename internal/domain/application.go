package domain

import (
	"context"
	"time"
)

// Application status values. The lifecycle only moves forward:
// applied → shortlisted → accepted | rejected | cancelled, accepted → finished.
// "deleted" is system-induced when the job itself is removed.
const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
	StatusDeleted     = "deleted"
	StatusCancelled   = "cancelled"
	StatusFinished    = "finished"
)

// MaxActiveApplicationsPerApplicant caps how many applications an applicant
// may hold in the active set at once, across all jobs.
const MaxActiveApplicationsPerApplicant = 10

// CapacityStatuses is the set of statuses that occupy job capacity
// (counted against maxApplicants and the per-applicant cap). An accepted
// slot still occupies capacity until the engagement is finished.
var CapacityStatuses = []string{StatusApplied, StatusShortlisted, StatusAccepted}

// OpenPairStatuses is the set of statuses that block a second application
// to the same job by the same applicant. Accepted is excluded here because
// the already-employed check reports it separately.
var OpenPairStatuses = []string{StatusApplied, StatusShortlisted, StatusRejected, StatusFinished}

// PendingStatuses is the set cancelled by the accept cascade: every other
// application of a freshly accepted applicant in one of these states is
// withdrawn automatically.
var PendingStatuses = []string{StatusApplied, StatusShortlisted}

// IsTerminalStatus reports whether no user-triggered transition may leave
// the status.
func IsTerminalStatus(s string) bool {
	return s == StatusRejected || s == StatusDeleted || s == StatusCancelled
}

// allowedTransitions maps role → target status → permitted source statuses.
// Accept is absent on purpose: it has its own capacity-gated operation.
var allowedTransitions = map[string]map[string][]string{
	RoleRecruiter: {
		StatusShortlisted: {StatusApplied},
		StatusRejected:    {StatusApplied, StatusShortlisted},
		StatusFinished:    {StatusAccepted},
	},
	RoleApplicant: {
		StatusCancelled: {StatusApplied, StatusShortlisted},
	},
}

// CanTransition reports whether the role may move an application from the
// current status to the target status.
func CanTransition(role, from, to string) bool {
	sources, ok := allowedTransitions[role][to]
	if !ok {
		return false
	}
	for _, s := range sources {
		if s == from {
			return true
		}
	}
	return false
}

// RoleMayRequest reports whether the role is permitted to request the
// target status at all, regardless of the current state.
func RoleMayRequest(role, to string) bool {
	_, ok := allowedTransitions[role][to]
	return ok
}

// Application is a single applicant-to-job application. The recruiter
// reference is denormalized from the job at apply time. Rows are never
// physically deleted; job removal flips status to "deleted" instead.
type Application struct {
	ID                 int64      `json:"id"`
	ApplicantID        int64      `json:"applicant_id"`
	RecruiterID        int64      `json:"recruiter_id"`
	JobID              int64      `json:"job_id"`
	Status             string     `json:"status"`
	SOP                string     `json:"sop"`
	DateOfApplication  time.Time  `json:"date_of_application"`
	DateOfJoining      *time.Time `json:"date_of_joining,omitempty"`
	InterviewCompleted bool       `json:"interview_completed"`
	InterviewScore     float64    `json:"interview_score"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

// ApplicationFilter narrows the recruiter's applicants listing.
type ApplicationFilter struct {
	JobID    *int64
	Statuses []string
	SortBy   string
	SortDesc bool
}

// ApplicationRepository defines data access for applications. The count
// methods centralize the capacity-counting policy: every checkpoint uses
// the same status sets instead of restating them inline.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID, recruiterID int64, statuses []string) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID int64) ([]Application, error)
	ListForRecruiter(ctx context.Context, recruiterID int64, filter ApplicationFilter) ([]Application, error)

	// Capacity tracker queries, phrased the same way the invariants are:
	// CapacityStatuses for the active set, accepted for positions.
	ActiveCountForJob(ctx context.Context, jobID int64) (int64, error)
	AcceptedCountForJob(ctx context.Context, jobID int64) (int64, error)
	ActiveCountForApplicant(ctx context.Context, applicantID int64) (int64, error)
	AcceptedCountForApplicant(ctx context.Context, applicantID int64) (int64, error)
	EligibleEngagementExists(ctx context.Context, applicantID, recruiterID int64, jobID *int64) (bool, error)
	OpenPairExists(ctx context.Context, applicantID, jobID int64) (bool, error)

	UpdateStatus(ctx context.Context, id int64, status string) error
	Accept(ctx context.Context, id int64, dateOfJoining time.Time) error
	CancelOtherPending(ctx context.Context, applicantID, exceptID int64) (int64, error)
	MarkDeletedForJob(ctx context.Context, jobID int64) error
	SetInterviewResult(ctx context.Context, id int64, score float64) error
}

// ApplicationUsecase is the application lifecycle engine.
type ApplicationUsecase interface {
	// Applicant operations
	Apply(ctx context.Context, applicantID, jobID int64, sop string) (*Application, error)
	GetMyApplications(ctx context.Context, userID int64, role string) ([]Application, error)

	// Recruiter operations
	ListByJobID(ctx context.Context, recruiterID, jobID int64, statuses []string) ([]Application, error)
	ListApplicants(ctx context.Context, recruiterID int64, filter ApplicationFilter) ([]Application, error)
	Accept(ctx context.Context, recruiterID, applicationID int64, dateOfJoining time.Time) error
	UpdateStatus(ctx context.Context, userID int64, role string, applicationID int64, status string) error
}
