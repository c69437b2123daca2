package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID, recruiterID int64, statuses []string) ([]domain.Application, error) {
	args := m.Called(ctx, jobID, recruiterID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListForRecruiter(ctx context.Context, recruiterID int64, filter domain.ApplicationFilter) ([]domain.Application, error) {
	args := m.Called(ctx, recruiterID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ActiveCountForJob(ctx context.Context, jobID int64) (int64, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) AcceptedCountForJob(ctx context.Context, jobID int64) (int64, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) ActiveCountForApplicant(ctx context.Context, applicantID int64) (int64, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) AcceptedCountForApplicant(ctx context.Context, applicantID int64) (int64, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) EligibleEngagementExists(ctx context.Context, applicantID, recruiterID int64, jobID *int64) (bool, error) {
	args := m.Called(ctx, applicantID, recruiterID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) OpenPairExists(ctx context.Context, applicantID, jobID int64) (bool, error) {
	args := m.Called(ctx, applicantID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) Accept(ctx context.Context, id int64, dateOfJoining time.Time) error {
	return m.Called(ctx, id, dateOfJoining).Error(0)
}

func (m *MockApplicationRepo) CancelOtherPending(ctx context.Context, applicantID, exceptID int64) (int64, error) {
	args := m.Called(ctx, applicantID, exceptID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) MarkDeletedForJob(ctx context.Context, jobID int64) error {
	return m.Called(ctx, jobID).Error(0)
}

func (m *MockApplicationRepo) SetInterviewResult(ctx context.Context, id int64, score float64) error {
	return m.Called(ctx, id, score).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, id, recruiterID int64, upd domain.JobUpdate) error {
	return m.Called(ctx, id, recruiterID, upd).Error(0)
}

func (m *MockJobRepo) SetAcceptedCandidates(ctx context.Context, id int64, count int) error {
	return m.Called(ctx, id, count).Error(0)
}

func (m *MockJobRepo) SetRating(ctx context.Context, id int64, rating float64) error {
	return m.Called(ctx, id, rating).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id, recruiterID int64) error {
	return m.Called(ctx, id, recruiterID).Error(0)
}

type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Get(ctx context.Context, senderID, receiverID int64, category string) (*domain.Rating, error) {
	args := m.Called(ctx, senderID, receiverID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepo) Upsert(ctx context.Context, rating *domain.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *MockRatingRepo) AverageFor(ctx context.Context, receiverID int64, category string) (float64, error) {
	args := m.Called(ctx, receiverID, category)
	return args.Get(0).(float64), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetApplicantProfile(ctx context.Context, userID int64) (*domain.ApplicantProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicantProfile), args.Error(1)
}

func (m *MockUserRepo) GetRecruiterProfile(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}

func (m *MockUserRepo) UpdateApplicantProfile(ctx context.Context, profile *domain.ApplicantProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockUserRepo) UpdateRecruiterProfile(ctx context.Context, profile *domain.RecruiterProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockUserRepo) SetApplicantResume(ctx context.Context, userID int64, ref string) error {
	return m.Called(ctx, userID, ref).Error(0)
}

func (m *MockUserRepo) SetApplicantRating(ctx context.Context, userID int64, rating float64) error {
	return m.Called(ctx, userID, rating).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, result *domain.InterviewResult) error {
	return m.Called(ctx, result).Error(0)
}

func (m *MockInterviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) (*domain.InterviewResult, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewResult), args.Error(1)
}

func (m *MockInterviewRepo) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.InterviewResult, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewResult), args.Error(1)
}

func (m *MockInterviewRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.InterviewResult, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewResult), args.Error(1)
}

// fakeTxRunner just runs the function; unit tests assert the calls made
// inside, not transactional behavior.
type fakeTxRunner struct{}

func (fakeTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// assertKind checks that err is an AppError of the expected kind.
func assertKind(t *testing.T, err error, kind string) {
	t.Helper()
	var appErr *apperror.AppError
	if assert.True(t, errors.As(err, &appErr), "expected AppError, got %v", err) {
		assert.Equal(t, kind, appErr.Kind)
	}
}
