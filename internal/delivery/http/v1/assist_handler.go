package v1

import (
	"net/http"

	"go-talented-backend/internal/delivery/http/response"
	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
	"go-talented-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AssistHandler struct {
	assistUC domain.AssistUsecase
}

// NewAssistHandler registers the AI-assisted content routes
func NewAssistHandler(r *gin.RouterGroup, assistUC domain.AssistUsecase) {
	handler := &AssistHandler{assistUC: assistUC}

	assist := r.Group("/assist")
	{
		assist.POST("/skills", handler.GenerateSkills)
		assist.POST("/summary", handler.GenerateSummary)
		assist.POST("/learning-path", handler.SuggestLearningPath)
		assist.POST("/interview-question", handler.GenerateQuestion)
		assist.POST("/evaluate-answer", handler.EvaluateAnswer)
	}
}

// GenerateSkills godoc
// @Summary      Generate a skill list for the resume builder
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ResumeInput  true  "Resume input"
// @Success      200   {object}  response.Response{data=[]string}
// @Failure      400   {object}  response.Response
// @Router       /assist/skills [post]
// @Security     BearerAuth
func (h *AssistHandler) GenerateSkills(c *gin.Context) {
	var in domain.ResumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	skills, err := h.assistUC.GenerateSkills(c, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills generated", skills)
}

// GenerateSummary godoc
// @Summary      Generate a professional summary for the resume builder
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ResumeInput  true  "Resume input"
// @Success      200   {object}  response.Response{data=string}
// @Failure      400   {object}  response.Response
// @Router       /assist/summary [post]
// @Security     BearerAuth
func (h *AssistHandler) GenerateSummary(c *gin.Context) {
	var in domain.ResumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	summary, err := h.assistUC.GenerateSummary(c, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Summary generated", summary)
}

// SuggestLearningPath godoc
// @Summary      Suggest a structured learning path
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        body  body      domain.LearningPathInput  true  "Learning path input"
// @Success      200   {object}  response.Response{data=domain.LearningPath}
// @Failure      400   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /assist/learning-path [post]
// @Security     BearerAuth
func (h *AssistHandler) SuggestLearningPath(c *gin.Context) {
	var in domain.LearningPathInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	path, err := h.assistUC.SuggestLearningPath(c, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Learning path generated", path)
}

// GenerateQuestion godoc
// @Summary      Generate one interview question
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        body  body      domain.QuestionInput  true  "Question input"
// @Success      200   {object}  response.Response{data=string}
// @Failure      400   {object}  response.Response
// @Router       /assist/interview-question [post]
// @Security     BearerAuth
func (h *AssistHandler) GenerateQuestion(c *gin.Context) {
	var in domain.QuestionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	question, err := h.assistUC.GenerateInterviewQuestion(c, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Question generated", question)
}

// EvaluateAnswer godoc
// @Summary      Score a candidate answer with feedback
// @Tags         assist
// @Accept       json
// @Produce      json
// @Param        body  body      domain.AnswerInput  true  "Answer input"
// @Success      200   {object}  response.Response{data=domain.AnswerEvaluation}
// @Failure      400   {object}  response.Response
// @Router       /assist/evaluate-answer [post]
// @Security     BearerAuth
func (h *AssistHandler) EvaluateAnswer(c *gin.Context) {
	var in domain.AnswerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	eval, err := h.assistUC.EvaluateAnswer(c, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Answer evaluated", eval)
}
