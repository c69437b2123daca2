package v1

import (
	"net/http"
	"strconv"

	"go-talented-backend/internal/delivery/http/response"
	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
	"go-talented-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingUC domain.RatingUsecase
}

// NewRatingHandler registers rating routes
func NewRatingHandler(r *gin.RouterGroup, ratingUC domain.RatingUsecase) {
	handler := &RatingHandler{ratingUC: ratingUC}

	r.PUT("/rating", handler.Rate)
	r.GET("/rating", handler.Get)
}

// RateRequest is the request payload for submitting a rating. ReceiverID
// is an applicant's user ID when a recruiter rates, a job ID when an
// applicant rates.
type RateRequest struct {
	ReceiverID int64   `json:"receiver_id" binding:"required"`
	Rating     float64 `json:"rating" binding:"rating_value"`
}

// Rate godoc
// @Summary      Submit a rating
// @Description  Recruiters rate applicants, applicants rate jobs; repeat submissions overwrite
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        body  body      RateRequest  true  "Rating"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /rating [put]
// @Security     BearerAuth
func (h *RatingHandler) Rate(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	if err := h.ratingUC.Rate(c, userID, role, req.ReceiverID, req.Rating); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Rating saved successfully", nil)
}

// Get godoc
// @Summary      Get my rating of a receiver
// @Description  Returns -1 when no rating has been submitted yet
// @Tags         ratings
// @Produce      json
// @Param        id   query     int  true  "Receiver ID (applicant user ID or job ID)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /rating [get]
// @Security     BearerAuth
func (h *RatingHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	receiverID, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid receiver ID"))
		return
	}

	value, err := h.ratingUC.Get(c, userID, role, receiverID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Rating retrieved", gin.H{"rating": value})
}
