package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-talented-backend/internal/domain"
)

type jobRepo struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(pool *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{pool: pool}
}

const jobColumns = `j.id, j.recruiter_id, j.title, j.max_applicants, j.max_positions,
	j.accepted_candidates, j.date_of_posting, j.deadline, j.skillsets, j.job_type,
	j.duration, j.salary, j.rating`

func scanJob(row pgx.Row, job *domain.Job, extra ...any) error {
	dest := []any{
		&job.ID, &job.RecruiterID, &job.Title, &job.MaxApplicants, &job.MaxPositions,
		&job.AcceptedCandidates, &job.DateOfPosting, &job.Deadline, &job.Skillsets,
		&job.JobType, &job.Duration, &job.Salary, &job.Rating,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

// Create inserts a new job posting
func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (recruiter_id, title, max_applicants, max_positions,
			date_of_posting, deadline, skillsets, job_type, duration, salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	return db(ctx, r.pool).QueryRow(ctx, query,
		job.RecruiterID,
		job.Title,
		job.MaxApplicants,
		job.MaxPositions,
		job.DateOfPosting,
		job.Deadline,
		job.Skillsets,
		job.JobType,
		job.Duration,
		job.Salary,
	).Scan(&job.ID)
}

// GetByID retrieves a job by ID
func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate retrieves a job by ID with a row lock. Only meaningful
// inside a transaction; the lock is held until it commits or rolls back.
func (r *jobRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Job, error) {
	return r.getByID(ctx, id, " FOR UPDATE OF j")
}

func (r *jobRepo) getByID(ctx context.Context, id int64, lock string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1` + lock

	var job domain.Job
	err := scanJob(db(ctx, r.pool).QueryRow(ctx, query, id), &job)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

var jobSortColumns = map[string]string{
	"salary":          "j.salary",
	"duration":        "j.duration",
	"rating":          "j.rating",
	"date_of_posting": "j.date_of_posting",
	"title":           "j.title",
}

// Fetch lists jobs with the search and range filters of the job feed.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `, p.name
		FROM jobs j
		LEFT JOIN recruiter_profiles p ON j.recruiter_id = p.user_id
		WHERE 1=1`
	var args []any

	if filter.RecruiterID != nil {
		args = append(args, *filter.RecruiterID)
		query += fmt.Sprintf(` AND j.recruiter_id = $%d`, len(args))
	}
	if filter.TitleQuery != "" {
		args = append(args, "%"+filter.TitleQuery+"%")
		query += fmt.Sprintf(` AND j.title ILIKE $%d`, len(args))
	}
	if len(filter.JobTypes) > 0 {
		args = append(args, filter.JobTypes)
		query += fmt.Sprintf(` AND j.job_type = ANY($%d)`, len(args))
	}
	if filter.SalaryMin != nil {
		args = append(args, *filter.SalaryMin)
		query += fmt.Sprintf(` AND j.salary >= $%d`, len(args))
	}
	if filter.SalaryMax != nil {
		args = append(args, *filter.SalaryMax)
		query += fmt.Sprintf(` AND j.salary <= $%d`, len(args))
	}
	if filter.MaxDuration != nil {
		args = append(args, *filter.MaxDuration)
		query += fmt.Sprintf(` AND j.duration < $%d`, len(args))
	}

	orderBy := "j.id"
	if col, ok := jobSortColumns[filter.SortBy]; ok {
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

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job, &job.RecruiterName); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Update changes the recruiter-mutable fields of an owned job.
func (r *jobRepo) Update(ctx context.Context, id, recruiterID int64, upd domain.JobUpdate) error {
	query := `UPDATE jobs SET id = id`
	args := []any{id, recruiterID}

	if upd.MaxApplicants != nil {
		args = append(args, *upd.MaxApplicants)
		query += fmt.Sprintf(`, max_applicants = $%d`, len(args))
	}
	if upd.MaxPositions != nil {
		args = append(args, *upd.MaxPositions)
		query += fmt.Sprintf(`, max_positions = $%d`, len(args))
	}
	if upd.Deadline != nil {
		args = append(args, *upd.Deadline)
		query += fmt.Sprintf(`, deadline = $%d`, len(args))
	}
	query += ` WHERE id = $1 AND recruiter_id = $2`

	result, err := db(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetAcceptedCandidates refreshes the denormalized accepted counter.
func (r *jobRepo) SetAcceptedCandidates(ctx context.Context, id int64, count int) error {
	result, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE jobs SET accepted_candidates = $2 WHERE id = $1`, id, count)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetRating writes back the recomputed average rating of a job.
func (r *jobRepo) SetRating(ctx context.Context, id int64, rating float64) error {
	result, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE jobs SET rating = $2 WHERE id = $1`, id, rating)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an owned job posting. Applications survive the delete and
// are soft-deleted separately in the same transaction.
func (r *jobRepo) Delete(ctx context.Context, id, recruiterID int64) error {
	result, err := db(ctx, r.pool).Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND recruiter_id = $2`, id, recruiterID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
