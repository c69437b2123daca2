package v1_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1 "go-talented-backend/internal/delivery/http/v1"
	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type capturingInterviewUC struct {
	applicantID int64
	result      *domain.InterviewResult
}

func (u *capturingInterviewUC) Record(ctx context.Context, applicantID int64, result *domain.InterviewResult) (*domain.InterviewResult, error) {
	u.applicantID = applicantID
	u.result = result
	return result, nil
}

func (u *capturingInterviewUC) GetByApplication(ctx context.Context, userID int64, role string, applicationID int64) (*domain.InterviewResult, error) {
	return nil, nil
}

func (u *capturingInterviewUC) List(ctx context.Context, userID int64, role string) ([]domain.InterviewResult, error) {
	return nil, nil
}

type unavailableStore struct{}

func (s *unavailableStore) Put(ctx context.Context, ref, contentType string, body io.Reader) error {
	return errors.New("backend unavailable")
}

func (s *unavailableStore) Get(ctx context.Context, ref string) (*storage.Object, error) {
	return nil, storage.ErrNotFound
}

type memStore struct {
	refs []string
}

func (s *memStore) Put(ctx context.Context, ref, contentType string, body io.Reader) error {
	s.refs = append(s.refs, ref)
	return nil
}

func (s *memStore) Get(ctx context.Context, ref string) (*storage.Object, error) {
	return nil, storage.ErrNotFound
}

func interviewRouter(uc domain.InterviewUsecase, store storage.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), int64(7))
		c.Set(string(domain.KeyUserRole), domain.RoleApplicant)
	})
	g := r.Group("")
	v1.NewInterviewHandler(g, g, uc, store)
	return r
}

func sessionForm(t *testing.T, withVideo bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	assert.NoError(t, mw.WriteField("application_id", "42"))
	for _, q := range []string{"Tell me about yourself", "Why this role"} {
		assert.NoError(t, mw.WriteField("questions", q))
	}
	for _, a := range []string{"I build backends", "Growth"} {
		assert.NoError(t, mw.WriteField("answers", a))
	}
	for _, s := range []string{"80", "90"} {
		assert.NoError(t, mw.WriteField("scores", s))
	}
	if withVideo {
		part, err := mw.CreateFormFile("video", "session.webm")
		assert.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader("webm-bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestRecordInterview(t *testing.T) {
	t.Run("Should record the scores with an empty reference when the upload fails", func(t *testing.T) {
		uc := &capturingInterviewUC{}
		r := interviewRouter(uc, &unavailableStore{})

		body, contentType := sessionForm(t, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/interview-results", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		if assert.NotNil(t, uc.result) {
			assert.Equal(t, int64(42), uc.result.ApplicationID)
			assert.Equal(t, []float64{80, 90}, uc.result.Scores)
			assert.Empty(t, uc.result.VideoRef)
		}
		assert.Equal(t, int64(7), uc.applicantID)
	})

	t.Run("Should attach the stored reference when the upload succeeds", func(t *testing.T) {
		uc := &capturingInterviewUC{}
		store := &memStore{}
		r := interviewRouter(uc, store)

		body, contentType := sessionForm(t, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/interview-results", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		if assert.NotNil(t, uc.result) {
			assert.True(t, strings.HasPrefix(uc.result.VideoRef, "interviews/"))
		}
		assert.Len(t, store.refs, 1)
	})

	t.Run("Should record a session sent without video", func(t *testing.T) {
		uc := &capturingInterviewUC{}
		r := interviewRouter(uc, &unavailableStore{})

		body, contentType := sessionForm(t, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/interview-results", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		if assert.NotNil(t, uc.result) {
			assert.Empty(t, uc.result.VideoRef)
		}
	})
}
