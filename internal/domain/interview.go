package domain

import (
	"context"
	"time"
)

// InterviewResult is the append-only record of one completed interview
// session. Questions, answers and scores are parallel arrays of equal
// length; VideoRef is an opaque media storage reference and may be empty
// when the interview was recorded without video.
type InterviewResult struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	JobID         int64     `json:"job_id"`
	ApplicantID   int64     `json:"applicant_id"`
	Questions     []string  `json:"questions"`
	Answers       []string  `json:"answers"`
	Scores        []float64 `json:"scores"`
	OverallScore  float64   `json:"overall_score"`
	VideoRef      string    `json:"video_ref,omitempty"`
	CompletedAt   time.Time `json:"completed_at"`
}

type InterviewRepository interface {
	Create(ctx context.Context, result *InterviewResult) error
	GetByApplicationID(ctx context.Context, applicationID int64) (*InterviewResult, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]InterviewResult, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]InterviewResult, error)
}

// InterviewUsecase is the interview result recorder.
type InterviewUsecase interface {
	Record(ctx context.Context, applicantID int64, result *InterviewResult) (*InterviewResult, error)
	GetByApplication(ctx context.Context, userID int64, role string, applicationID int64) (*InterviewResult, error)
	List(ctx context.Context, userID int64, role string) ([]InterviewResult, error)
}
