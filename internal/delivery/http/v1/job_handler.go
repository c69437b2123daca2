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

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing the feed needs no account
	public.GET("/jobs", handler.List)
	public.GET("/jobs/:id", handler.GetDetails)

	// Posting management is recruiter-only
	jobs := protected.Group("/jobs")
	jobs.Use(middleware.RequireRole(domain.RoleRecruiter))
	{
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
	protected.GET("/recruiter/jobs", middleware.RequireRole(domain.RoleRecruiter), handler.ListMine)
}

type CreateJobRequest struct {
	Title         string    `json:"title" binding:"required"`
	MaxApplicants int       `json:"max_applicants" binding:"required,gt=0"`
	MaxPositions  int       `json:"max_positions" binding:"required,gt=0"`
	Deadline      time.Time `json:"deadline" binding:"required,future_date"`
	Skillsets     []string  `json:"skillsets"`
	JobType       string    `json:"job_type" binding:"required,oneof=full-time part-time work-from-home"`
	Duration      int       `json:"duration" binding:"gte=0,lte=7"`
	Salary        int       `json:"salary" binding:"gte=0"`
}

type UpdateJobRequest struct {
	MaxApplicants *int    `json:"max_applicants" binding:"omitempty,gt=0"`
	MaxPositions  *int    `json:"max_positions" binding:"omitempty,gt=0"`
	Deadline      *string `json:"deadline"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  Publish a new job posting (Recruiter only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	job := &domain.Job{
		Title:         req.Title,
		MaxApplicants: req.MaxApplicants,
		MaxPositions:  req.MaxPositions,
		Deadline:      req.Deadline,
		Skillsets:     req.Skillsets,
		JobType:       req.JobType,
		Duration:      req.Duration,
		Salary:        req.Salary,
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.CreateJob(c, recruiterID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully", job)
}

// List godoc
// @Summary      List jobs
// @Description  Browse the job feed with search, filters and sorting
// @Tags         jobs
// @Produce      json
// @Param        q         query     string  false  "Title search"
// @Param        jobType   query     string  false  "Comma-separated job types"
// @Param        salaryMin query     int     false  "Minimum salary"
// @Param        salaryMax query     int     false  "Maximum salary"
// @Param        duration  query     int     false  "Maximum duration (exclusive)"
// @Param        sortBy    query     string  false  "Sort column"  Enums(salary, duration, rating, date_of_posting, title)
// @Param        desc      query     bool    false  "Sort descending"
// @Success      200       {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		TitleQuery: c.Query("q"),
		SortBy:     c.Query("sortBy"),
		SortDesc:   c.Query("desc") == "true",
	}
	if v := c.Query("jobType"); v != "" {
		filter.JobTypes = strings.Split(v, ",")
	}
	if v, err := strconv.Atoi(c.Query("salaryMin")); err == nil {
		filter.SalaryMin = &v
	}
	if v, err := strconv.Atoi(c.Query("salaryMax")); err == nil {
		filter.SalaryMax = &v
	}
	if v, err := strconv.Atoi(c.Query("duration")); err == nil && v > 0 {
		filter.MaxDuration = &v
	}

	jobs, err := h.jobUC.ListJobs(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// ListMine godoc
// @Summary      List my job postings
// @Description  List the authenticated recruiter's own postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      403  {object}  response.Response
// @Router       /recruiter/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	recruiterID := c.GetInt64(string(domain.KeyUserID))
	filter := domain.JobFilter{
		RecruiterID: &recruiterID,
		SortBy:      c.Query("sortBy"),
		SortDesc:    c.Query("desc") == "true",
	}

	jobs, err := h.jobUC.ListJobs(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// Update godoc
// @Summary      Update a job posting
// @Description  Change the capacity limits or deadline of an owned posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int               true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	upd := domain.JobUpdate{
		MaxApplicants: req.MaxApplicants,
		MaxPositions:  req.MaxPositions,
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			c.Error(apperror.BadRequest("Deadline must be an RFC3339 timestamp"))
			return
		}
		upd.Deadline = &deadline
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.UpdateJob(c, recruiterID, id, upd); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", nil)
}

// Delete godoc
// @Summary      Delete a job posting
// @Description  Remove an owned posting; its live applications are marked deleted
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c, recruiterID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
