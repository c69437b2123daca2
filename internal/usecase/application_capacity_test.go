package usecase_test

import (
	"context"
	"slices"
	"sync"
	"testing"

	"go-talented-backend/internal/domain"
	"go-talented-backend/internal/usecase"
	"go-talented-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

// capacityStore is an in-memory backend with the transactional behavior
// the postgres layer provides: plain reads never block, GetByIDForUpdate
// takes the job's row lock, and the lock is held until the surrounding
// transaction ends.
type capacityStore struct {
	mu   sync.Mutex
	job  *domain.Job
	apps []domain.Application
	next int64

	rowLock sync.Mutex
}

type capacityTxKey struct{}

type capacityTx struct {
	lockHeld bool
}

type capacityTxRunner struct{ st *capacityStore }

func (r capacityTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := &capacityTx{}
	err := fn(context.WithValue(ctx, capacityTxKey{}, tx))
	if tx.lockHeld {
		r.st.rowLock.Unlock()
	}
	return err
}

type capacityAppRepo struct {
	domain.ApplicationRepository
	st *capacityStore
}

func (r capacityAppRepo) OpenPairExists(ctx context.Context, applicantID, jobID int64) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, a := range r.st.apps {
		if a.ApplicantID == applicantID && a.JobID == jobID && slices.Contains(domain.OpenPairStatuses, a.Status) {
			return true, nil
		}
	}
	return false, nil
}

func (r capacityAppRepo) ActiveCountForJob(ctx context.Context, jobID int64) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var n int64
	for _, a := range r.st.apps {
		if a.JobID == jobID && slices.Contains(domain.CapacityStatuses, a.Status) {
			n++
		}
	}
	return n, nil
}

func (r capacityAppRepo) ActiveCountForApplicant(ctx context.Context, applicantID int64) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var n int64
	for _, a := range r.st.apps {
		if a.ApplicantID == applicantID && slices.Contains(domain.CapacityStatuses, a.Status) {
			n++
		}
	}
	return n, nil
}

func (r capacityAppRepo) AcceptedCountForApplicant(ctx context.Context, applicantID int64) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var n int64
	for _, a := range r.st.apps {
		if a.ApplicantID == applicantID && a.Status == domain.StatusAccepted {
			n++
		}
	}
	return n, nil
}

func (r capacityAppRepo) Create(ctx context.Context, app *domain.Application) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.next++
	app.ID = r.st.next
	r.st.apps = append(r.st.apps, *app)
	return nil
}

type capacityJobRepo struct {
	domain.JobRepository
	st *capacityStore
}

func (r capacityJobRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Job, error) {
	r.st.rowLock.Lock()
	if tx, ok := ctx.Value(capacityTxKey{}).(*capacityTx); ok {
		tx.lockHeld = true
	}
	job := *r.st.job
	return &job, nil
}

func TestApplySerializesConcurrentApplies(t *testing.T) {
	st := &capacityStore{
		job:  &domain.Job{ID: 10, RecruiterID: 2, MaxApplicants: 2, MaxPositions: 1},
		apps: []domain.Application{{ID: 1, ApplicantID: 7, JobID: 10, Status: domain.StatusApplied}},
		next: 1,
	}
	uc := usecase.NewApplicationUsecase(
		capacityAppRepo{st: st},
		capacityJobRepo{st: st},
		capacityTxRunner{st: st},
	)

	// One slot left on the job; both applicants race for it.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Apply(context.Background(), int64(100+i), 10, "sop")
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			failures++
			assertKind(t, err, apperror.KindJobApplicationLimit)
		}
	}
	assert.Equal(t, 1, failures, "exactly one concurrent apply may win the last slot")

	active := 0
	for _, a := range st.apps {
		if a.JobID == 10 && slices.Contains(domain.CapacityStatuses, a.Status) {
			active++
		}
	}
	assert.LessOrEqual(t, active, st.job.MaxApplicants)
}
