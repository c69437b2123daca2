package v1

import (
	"net/http"
	"strconv"

	"go-talented-backend/internal/delivery/http/middleware"
	"go-talented-backend/internal/delivery/http/response"
	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
	"go-talented-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
	store       storage.Store
}

// NewInterviewHandler registers interview result routes
func NewInterviewHandler(r *gin.RouterGroup, uploads *gin.RouterGroup, interviewUC domain.InterviewUsecase, store storage.Store) {
	handler := &InterviewHandler{interviewUC: interviewUC, store: store}

	// The recording upload carries video and goes through the stricter
	// upload rate limit group.
	uploads.POST("/interview-results", middleware.RequireRole(domain.RoleApplicant), handler.Record)
	r.GET("/interview-results", handler.List)
	r.GET("/applications/:id/interview", handler.GetByApplication)
}

// Record godoc
// @Summary      Record an interview result
// @Description  Store a completed session's questions, answers and scores, with an optional video recording (Applicant only). Sent as multipart form data with repeated questions/answers/scores fields.
// @Tags         interviews
// @Accept       multipart/form-data
// @Produce      json
// @Param        application_id  formData  int     true   "Application ID"
// @Param        questions       formData  string  true   "Question (repeated)"
// @Param        answers         formData  string  true   "Answer (repeated)"
// @Param        scores          formData  number  true   "Score 0-100 (repeated)"
// @Param        video           formData  file    false  "Session recording (webm)"
// @Success      201             {object}  response.Response{data=domain.InterviewResult}
// @Failure      400             {object}  response.Response
// @Failure      403             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Router       /interview-results [post]
// @Security     BearerAuth
func (h *InterviewHandler) Record(c *gin.Context) {
	applicationID, err := strconv.ParseInt(c.PostForm("application_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	result := &domain.InterviewResult{
		ApplicationID: applicationID,
		Questions:     c.PostFormArray("questions"),
		Answers:       c.PostFormArray("answers"),
	}
	for _, raw := range c.PostFormArray("scores") {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(apperror.New(http.StatusBadRequest, apperror.KindMalformedResult,
				"Scores must be numeric", err))
			return
		}
		result.Scores = append(result.Scores, score)
	}

	// The video is optional and its upload may fail; the scores are
	// recorded either way, with an empty reference when no recording
	// could be stored.
	if file, err := c.FormFile("video"); err == nil {
		if src, err := file.Open(); err == nil {
			defer src.Close()

			ref := storage.NewRef("interviews", file.Filename)
			contentType := file.Header.Get("Content-Type")
			if contentType == "" {
				contentType = "video/webm"
			}
			if err := h.store.Put(c.Request.Context(), ref, contentType, src); err == nil {
				result.VideoRef = ref
			}
		}
	}

	applicantID := c.GetInt64(string(domain.KeyUserID))
	saved, err := h.interviewUC.Record(c, applicantID, result)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview result recorded", saved)
}

// List godoc
// @Summary      List interview results
// @Description  Applicants see their own sessions, recruiters see sessions across their jobs
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.InterviewResult}
// @Router       /interview-results [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	results, err := h.interviewUC.List(c, userID, role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview results retrieved", results)
}

// GetByApplication godoc
// @Summary      Get the interview result of an application
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.InterviewResult}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/interview [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetByApplication(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	result, err := h.interviewUC.GetByApplication(c, userID, role, applicationID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview result retrieved", result)
}
