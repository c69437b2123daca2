package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go-talented-backend/internal/delivery/http/middleware"
	"go-talented-backend/internal/delivery/http/response"
	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
	"go-talented-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

const maxResumeSize = 10 << 20 // 10 MB

type UploadHandler struct {
	userUC domain.UserUsecase
	store  storage.Store
}

// NewUploadHandler registers media upload and download routes
func NewUploadHandler(r *gin.RouterGroup, uploads *gin.RouterGroup, userUC domain.UserUsecase, store storage.Store) {
	handler := &UploadHandler{userUC: userUC, store: store}

	uploads.POST("/upload/resume", middleware.RequireRole(domain.RoleApplicant), handler.UploadResume)
	r.GET("/media/*ref", handler.Download)
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  Store a PDF resume and attach it to the applicant's profile
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume (PDF)"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /upload/resume [post]
// @Security     BearerAuth
func (h *UploadHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file is required"))
		return
	}
	if file.Size > maxResumeSize {
		c.Error(apperror.BadRequest("Resume must be smaller than 10MB"))
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.Error(apperror.BadRequest("Resume must be a PDF file"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	ref := storage.NewRef("resumes", file.Filename)
	if err := h.store.Put(c.Request.Context(), ref, "application/pdf", src); err != nil {
		c.Error(apperror.New(http.StatusServiceUnavailable, apperror.KindStorageUnavailable,
			"Failed to store resume", err))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.userUC.AttachResume(c, userID, ref); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded successfully", gin.H{"ref": ref})
}

// Download godoc
// @Summary      Download a stored media object
// @Description  Streams a previously uploaded resume or interview recording by its reference
// @Tags         media
// @Produce      octet-stream
// @Param        ref  path      string  true  "Object reference"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Response
// @Router       /media/{ref} [get]
// @Security     BearerAuth
func (h *UploadHandler) Download(c *gin.Context) {
	ref := strings.TrimPrefix(c.Param("ref"), "/")
	if ref == "" {
		c.Error(apperror.BadRequest("Invalid media reference"))
		return
	}

	obj, err := h.store.Get(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.Error(apperror.NotFound("Media not found"))
			return
		}
		c.Error(apperror.New(http.StatusServiceUnavailable, apperror.KindStorageUnavailable,
			"Failed to retrieve media", err))
		return
	}
	defer obj.Body.Close()

	c.Header("Content-Type", obj.ContentType)
	if obj.Size > 0 {
		c.Header("Content-Length", fmt.Sprintf("%d", obj.Size))
	}
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, obj.Body)
}
