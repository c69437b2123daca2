package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-talented-backend/internal/domain"
)

type interviewRepo struct {
	pool *pgxpool.Pool
}

// NewInterviewRepository creates a new interview result repository
func NewInterviewRepository(pool *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{pool: pool}
}

const interviewColumns = `i.id, i.application_id, i.job_id, i.applicant_id,
	i.questions, i.answers, i.scores, i.overall_score, i.video_ref, i.completed_at`

func scanInterview(row pgx.Row, res *domain.InterviewResult) error {
	return row.Scan(
		&res.ID, &res.ApplicationID, &res.JobID, &res.ApplicantID,
		&res.Questions, &res.Answers, &res.Scores, &res.OverallScore,
		&res.VideoRef, &res.CompletedAt,
	)
}

// Create inserts an interview result. Rows are immutable once written.
func (r *interviewRepo) Create(ctx context.Context, result *domain.InterviewResult) error {
	query := `
		INSERT INTO interview_results (application_id, job_id, applicant_id,
			questions, answers, scores, overall_score, video_ref, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}

	return db(ctx, r.pool).QueryRow(ctx, query,
		result.ApplicationID,
		result.JobID,
		result.ApplicantID,
		result.Questions,
		result.Answers,
		result.Scores,
		result.OverallScore,
		result.VideoRef,
		result.CompletedAt,
	).Scan(&result.ID)
}

// GetByApplicationID retrieves the result recorded for an application.
func (r *interviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) (*domain.InterviewResult, error) {
	query := `SELECT ` + interviewColumns + ` FROM interview_results i WHERE i.application_id = $1`

	var res domain.InterviewResult
	err := scanInterview(db(ctx, r.pool).QueryRow(ctx, query, applicationID), &res)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// ListByApplicant lists an applicant's interview results, newest first.
func (r *interviewRepo) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.InterviewResult, error) {
	query := `SELECT ` + interviewColumns + `
		FROM interview_results i
		WHERE i.applicant_id = $1
		ORDER BY i.completed_at DESC`
	return r.list(ctx, query, applicantID)
}

// ListByRecruiter lists results across a recruiter's jobs, newest first.
func (r *interviewRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.InterviewResult, error) {
	query := `SELECT ` + interviewColumns + `
		FROM interview_results i
		JOIN jobs j ON i.job_id = j.id
		WHERE j.recruiter_id = $1
		ORDER BY i.completed_at DESC`
	return r.list(ctx, query, recruiterID)
}

func (r *interviewRepo) list(ctx context.Context, query string, args ...any) ([]domain.InterviewResult, error) {
	rows, err := db(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.InterviewResult
	for rows.Next() {
		var res domain.InterviewResult
		if err := scanInterview(rows, &res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
