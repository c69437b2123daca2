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

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler registers profile routes
func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	r.GET("/user", handler.GetMyProfile)
	r.GET("/user/:id", handler.GetProfileByID)
	r.PUT("/user", handler.UpdateMyProfile)
}

type UpdateApplicantProfileRequest struct {
	Name      string   `json:"name" binding:"required"`
	Education []string `json:"education"`
	Skills    []string `json:"skills"`
}

type UpdateRecruiterProfileRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Bio           string `json:"bio"`
}

// GetMyProfile godoc
// @Summary      Get my profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user [get]
// @Security     BearerAuth
func (h *UserHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	profile, err := h.userUC.GetProfile(c, userID, role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// GetProfileByID godoc
// @Summary      Get a user's profile by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfileByID(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid user ID"))
		return
	}

	profile, err := h.userUC.GetProfileByID(c, targetID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateMyProfile godoc
// @Summary      Update my profile
// @Description  Updates the role-specific editable profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role == domain.RoleRecruiter {
		var req UpdateRecruiterProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
			return
		}
		err := h.userUC.UpdateRecruiterProfile(c, userID, &domain.RecruiterProfile{
			Name:          req.Name,
			ContactNumber: req.ContactNumber,
			Bio:           req.Bio,
		})
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Profile updated successfully", nil)
		return
	}

	var req UpdateApplicantProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}
	err := h.userUC.UpdateApplicantProfile(c, userID, &domain.ApplicantProfile{
		Name:      req.Name,
		Education: req.Education,
		Skills:    req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", nil)
}
