package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-talented-backend/internal/delivery/http/middleware"
	"go-talented-backend/internal/delivery/http/response"
	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
	"go-talented-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	r.POST("/jobs/:id/applications", middleware.RequireRole(domain.RoleApplicant), handler.Apply)
	r.GET("/jobs/:id/applications", middleware.RequireRole(domain.RoleRecruiter), handler.ListJobApplications)
	r.GET("/applications", handler.GetMyApplications)
	r.PUT("/applications/:id/status", handler.UpdateStatus)
	r.GET("/applicants", middleware.RequireRole(domain.RoleRecruiter), handler.ListApplicants)
}

// ApplyRequest is the request payload for applying to a job
type ApplyRequest struct {
	SOP string `json:"sop" binding:"max=2000"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application with a statement of purpose (Applicant only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      int           true  "Job ID"
// @Param        body   body      ApplyRequest  true  "Application data"
// @Success      201    {object}  response.Response{data=domain.Application}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /jobs/{id}/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	applicantID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.applicationUC.Apply(c, applicantID, jobID, req.SOP)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetMyApplications godoc
// @Summary      Get my applications
// @Description  An applicant gets their own applications, a recruiter gets applications across their jobs
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	applications, err := h.applicationUC.GetMyApplications(c, userID, role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Get applications for a specific owned job (Recruiter only)
// @Tags         applications
// @Produce      json
// @Param        id      path      int     true   "Job ID"
// @Param        status  query     string  false  "Comma-separated status filter"
// @Success      200     {object}  response.Response{data=[]domain.Application}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var statuses []string
	if v := c.Query("status"); v != "" {
		statuses = strings.Split(v, ",")
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))
	applications, err := h.applicationUC.ListByJobID(c, recruiterID, jobID, statuses)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListApplicants godoc
// @Summary      List applicants across my jobs
// @Description  List applications across all owned jobs with filters and sorting (Recruiter only)
// @Tags         applications
// @Produce      json
// @Param        jobId   query     int     false  "Restrict to one job"
// @Param        status  query     string  false  "Comma-separated status filter"
// @Param        sortBy  query     string  false  "Sort column"  Enums(name, date_of_application, date_of_joining, rating, interview_score)
// @Param        desc    query     bool    false  "Sort descending"
// @Success      200     {object}  response.Response{data=[]domain.Application}
// @Failure      403     {object}  response.Response
// @Router       /applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	filter := domain.ApplicationFilter{
		SortBy:   c.Query("sortBy"),
		SortDesc: c.Query("desc") == "true",
	}
	if v, err := strconv.ParseInt(c.Query("jobId"), 10, 64); err == nil {
		filter.JobID = &v
	}
	if v := c.Query("status"); v != "" {
		filter.Statuses = strings.Split(v, ",")
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))
	applications, err := h.applicationUC.ListApplicants(c, recruiterID, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicants retrieved", applications)
}

// UpdateStatusRequest is the request payload for a status transition.
// DateOfJoining only applies when the new status is accepted.
type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required,app_status"`
	DateOfJoining string `json:"date_of_joining"`
}

// UpdateStatus godoc
// @Summary      Change an application's status
// @Description  Recruiters shortlist, accept, reject or finish; applicants cancel
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	// Acceptance runs the capacity-gated path; everything else is a plain
	// transition.
	if req.Status == domain.StatusAccepted {
		if role != domain.RoleRecruiter {
			c.Error(apperror.Forbidden("Only recruiters can accept applications"))
			return
		}
		var dateOfJoining time.Time
		if req.DateOfJoining != "" {
			dateOfJoining, err = time.Parse(time.RFC3339, req.DateOfJoining)
			if err != nil {
				c.Error(apperror.BadRequest("date_of_joining must be an RFC3339 timestamp"))
				return
			}
		}
		if err := h.applicationUC.Accept(c, userID, id, dateOfJoining); err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Application accepted", nil)
		return
	}

	if err := h.applicationUC.UpdateStatus(c, userID, role, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
