package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-talented-backend/internal/domain"
)

type applicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(pool *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{pool: pool}
}

const applicationColumns = `a.id, a.applicant_id, a.recruiter_id, a.job_id, a.status, a.sop,
	a.date_of_application, a.date_of_joining, a.interview_completed, a.interview_score`

func scanApplication(row pgx.Row, app *domain.Application, extra ...any) error {
	dest := []any{
		&app.ID, &app.ApplicantID, &app.RecruiterID, &app.JobID, &app.Status, &app.SOP,
		&app.DateOfApplication, &app.DateOfJoining, &app.InterviewCompleted, &app.InterviewScore,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (applicant_id, recruiter_id, job_id, status, sop, date_of_application)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	if app.Status == "" {
		app.Status = domain.StatusApplied
	}
	if app.DateOfApplication.IsZero() {
		app.DateOfApplication = time.Now()
	}

	return db(ctx, r.pool).QueryRow(ctx, query,
		app.ApplicantID,
		app.RecruiterID,
		app.JobID,
		app.Status,
		app.SOP,
		app.DateOfApplication,
	).Scan(&app.ID)
}

// GetByID retrieves an application by ID with the joined job title
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, j.title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	err := scanApplication(db(ctx, r.pool).QueryRow(ctx, query, id), &app, &app.JobTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves applications for one of the recruiter's jobs,
// optionally narrowed to a status set.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID, recruiterID int64, statuses []string) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, p.name
		FROM applications a
		LEFT JOIN applicant_profiles p ON a.applicant_id = p.user_id
		WHERE a.job_id = $1 AND a.recruiter_id = $2`
	args := []any{jobID, recruiterID}

	if len(statuses) > 0 {
		query += ` AND a.status = ANY($3)`
		args = append(args, statuses)
	}
	query += ` ORDER BY a.date_of_application DESC`

	rows, err := db(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app, &app.ApplicantName); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByApplicantID retrieves all applications for an applicant with job titles
func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, j.title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.applicant_id = $1
		ORDER BY a.date_of_application DESC`

	rows, err := db(ctx, r.pool).Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app, &app.JobTitle); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

var applicantSortColumns = map[string]string{
	"name":                "p.name",
	"date_of_application": "a.date_of_application",
	"date_of_joining":     "a.date_of_joining",
	"rating":              "p.rating",
	"interview_score":     "a.interview_score",
}

// ListForRecruiter lists applications across the recruiter's jobs with the
// jobId/status filters and sorting of the applicants listing.
func (r *applicationRepo) ListForRecruiter(ctx context.Context, recruiterID int64, filter domain.ApplicationFilter) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, j.title, p.name
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN applicant_profiles p ON a.applicant_id = p.user_id
		WHERE a.recruiter_id = $1`
	args := []any{recruiterID}

	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		query += fmt.Sprintf(` AND a.job_id = $%d`, len(args))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		query += fmt.Sprintf(` AND a.status = ANY($%d)`, len(args))
	}

	// Sort column comes from a whitelist, never from the raw query string.
	orderBy := "a.id"
	if col, ok := applicantSortColumns[filter.SortBy]; ok {
		orderBy = col
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(` ORDER BY %s %s`, orderBy, direction)

	rows, err := db(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app, &app.JobTitle, &app.ApplicantName); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// ActiveCountForJob counts applications occupying the job's capacity.
func (r *applicationRepo) ActiveCountForJob(ctx context.Context, jobID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1 AND status = ANY($2)`,
		jobID, domain.CapacityStatuses)
}

// AcceptedCountForJob counts applications filling the job's positions.
func (r *applicationRepo) AcceptedCountForJob(ctx context.Context, jobID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1 AND status = $2`,
		jobID, domain.StatusAccepted)
}

// ActiveCountForApplicant counts the applicant's capacity-occupying
// applications across all jobs.
func (r *applicationRepo) ActiveCountForApplicant(ctx context.Context, applicantID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM applications WHERE applicant_id = $1 AND status = ANY($2)`,
		applicantID, domain.CapacityStatuses)
}

// AcceptedCountForApplicant counts the applicant's currently accepted
// applications. Greater than zero means already employed.
func (r *applicationRepo) AcceptedCountForApplicant(ctx context.Context, applicantID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM applications WHERE applicant_id = $1 AND status = $2`,
		applicantID, domain.StatusAccepted)
}

// EligibleEngagementExists reports whether an accepted or finished
// application links the applicant to the recruiter (rating of an
// applicant) or to the given job (rating of a job).
func (r *applicationRepo) EligibleEngagementExists(ctx context.Context, applicantID, recruiterID int64, jobID *int64) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM applications
		WHERE applicant_id = $1 AND recruiter_id = $2 AND status = ANY($3)`
	args := []any{applicantID, recruiterID, []string{domain.StatusAccepted, domain.StatusFinished}}
	if jobID != nil {
		query += ` AND job_id = $4`
		args = append(args, *jobID)
	}
	query += `)`

	var exists bool
	err := db(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&exists)
	return exists, err
}

// OpenPairExists reports whether the applicant already has an application
// to the job that blocks a reapply.
func (r *applicationRepo) OpenPairExists(ctx context.Context, applicantID, jobID int64) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM applications
		WHERE applicant_id = $1 AND job_id = $2 AND status = ANY($3))`

	var exists bool
	err := db(ctx, r.pool).QueryRow(ctx, query, applicantID, jobID, domain.OpenPairStatuses).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := db(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

// UpdateStatus updates the status of an application
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Accept marks an application accepted and records the date of joining.
func (r *applicationRepo) Accept(ctx context.Context, id int64, dateOfJoining time.Time) error {
	result, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE applications SET status = $2, date_of_joining = $3 WHERE id = $1`,
		id, domain.StatusAccepted, dateOfJoining)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CancelOtherPending cancels the applicant's other pending applications.
// Returns how many were withdrawn by the cascade.
func (r *applicationRepo) CancelOtherPending(ctx context.Context, applicantID, exceptID int64) (int64, error) {
	result, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE applications SET status = $3 WHERE applicant_id = $1 AND id <> $2 AND status = ANY($4)`,
		applicantID, exceptID, domain.StatusCancelled, domain.PendingStatuses)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// MarkDeletedForJob soft-deletes every non-terminal application of a job.
func (r *applicationRepo) MarkDeletedForJob(ctx context.Context, jobID int64) error {
	_, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE applications SET status = $2 WHERE job_id = $1 AND status <> ALL($3)`,
		jobID, domain.StatusDeleted,
		[]string{domain.StatusRejected, domain.StatusDeleted, domain.StatusCancelled, domain.StatusFinished})
	return err
}

// SetInterviewResult flags the application's interview as completed with
// its overall score.
func (r *applicationRepo) SetInterviewResult(ctx context.Context, id int64, score float64) error {
	result, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE applications SET interview_completed = TRUE, interview_score = $2 WHERE id = $1`,
		id, score)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
