package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
	"go-talented-backend/pkg/genai"
)

type assistUsecase struct {
	gen domain.TextGenerator
	log *slog.Logger
}

// NewAssistUsecase creates a new AI-assisted content usecase
func NewAssistUsecase(gen domain.TextGenerator, log *slog.Logger) domain.AssistUsecase {
	return &assistUsecase{gen: gen, log: log}
}

// GenerateSkills produces a skill list for the resume builder. When the
// collaborator fails or returns nothing usable, the input technologies
// are returned instead so the caller always gets a list.
func (uc *assistUsecase) GenerateSkills(ctx context.Context, in domain.ResumeInput) ([]string, error) {
	prompt := fmt.Sprintf(`Generate a list of professional skills for:
Position: %s
Technologies: %s
Experience: %d years

Return only a comma-separated list of relevant technical and soft skills.`,
		in.CurrentPosition, in.CurrentTechnologies, in.CurrentLength)

	text, err := uc.gen.Generate(ctx, prompt)
	if err != nil {
		uc.log.Warn("skills generation failed, using technologies as fallback", "error", err)
		return splitCommaList(in.CurrentTechnologies), nil
	}

	skills := splitCommaList(text)
	if len(skills) == 0 {
		return splitCommaList(in.CurrentTechnologies), nil
	}
	return skills, nil
}

// GenerateSummary produces a first-person professional summary, falling
// back to a templated one on failure.
func (uc *assistUsecase) GenerateSummary(ctx context.Context, in domain.ResumeInput) (string, error) {
	prompt := fmt.Sprintf(`Generate a professional summary for:
Name: %s
Current Position: %s
Years of Experience: %d
Technologies: %s

Write a concise, first-person professional summary (100-150 words) that:
1. Highlights key expertise
2. Mentions years of experience
3. Emphasizes technical skills
4. Notes significant achievements

Return only the summary text, no additional formatting.`,
		in.FullName, in.CurrentPosition, in.CurrentLength, in.CurrentTechnologies)

	text, err := uc.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		uc.log.Warn("summary generation failed, using templated fallback", "error", err)
		return fmt.Sprintf("Experienced %s with %d years of expertise in %s. "+
			"Proven track record of delivering high-quality solutions and driving technical innovation.",
			in.CurrentPosition, in.CurrentLength, in.CurrentTechnologies), nil
	}
	return strings.TrimSpace(text), nil
}

// SuggestLearningPath asks for a structured learning path as JSON. Unlike
// the resume helpers there is no useful deterministic fallback, so a
// malformed answer surfaces as an error.
func (uc *assistUsecase) SuggestLearningPath(ctx context.Context, in domain.LearningPathInput) (*domain.LearningPath, error) {
	if in.Skill == "" || in.CurrentLevel == "" || in.LearningGoal == "" {
		return nil, apperror.BadRequest("skill, currentLevel and learningGoal are required")
	}

	prompt := fmt.Sprintf(`Generate a structured learning path in valid JSON format only, no additional text:
{
  "learning_path": {
    "overview": "Brief overview of %s learning path",
    "prerequisites": ["Required prerequisite 1", "Required prerequisite 2"],
    "milestones": [
      {
        "title": "Milestone title",
        "description": "Milestone description",
        "duration": "Estimated duration",
        "resources": [
          {
            "type": "video|article|exercise",
            "title": "Resource title",
            "url": "Resource URL"
          }
        ]
      }
    ],
    "estimated_time_to_complete": "Total estimated duration",
    "skill_level": "%s",
    "goal": "%s"
  }
}
Tailor the path to a %s learner aiming for %q within %s, preferring %s resources.`,
		in.Skill, in.CurrentLevel, in.LearningGoal,
		in.CurrentLevel, in.LearningGoal, in.Timeframe, in.PreferredStyle)

	text, err := uc.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, apperror.New(502, apperror.KindStorageUnavailable,
			"Failed to generate learning path", err)
	}

	var wrapper struct {
		LearningPath domain.LearningPath `json:"learning_path"`
	}
	if err := json.Unmarshal([]byte(genai.StripJSONFences(text)), &wrapper); err != nil {
		uc.log.Warn("learning path response was not valid JSON", "error", err)
		return nil, apperror.New(502, apperror.KindStorageUnavailable,
			"Failed to parse learning path", err)
	}
	if len(wrapper.LearningPath.Milestones) == 0 {
		return nil, apperror.New(502, apperror.KindStorageUnavailable,
			"Learning path had no milestones", nil)
	}
	return &wrapper.LearningPath, nil
}

// GenerateInterviewQuestion produces one interview question for the given
// role and skills. The fallback question keeps an assessment session
// going when the collaborator is down.
func (uc *assistUsecase) GenerateInterviewQuestion(ctx context.Context, in domain.QuestionInput) (string, error) {
	prompt := fmt.Sprintf(`You are interviewing a candidate for the role of %s.
Candidate skills: %s
Years of experience: %d
This is question number %d of the session; do not repeat earlier topics.

Ask exactly one concise technical interview question. Return only the question text.`,
		in.JobTitle, in.Skills, in.Experience, in.CurrentQuestion+1)

	text, err := uc.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		uc.log.Warn("question generation failed, using fallback question", "error", err)
		return fmt.Sprintf("Tell me about your experience with %s?", in.JobTitle), nil
	}
	return strings.TrimSpace(text), nil
}

// EvaluateAnswer scores a candidate answer from 0 to 100 with feedback.
func (uc *assistUsecase) EvaluateAnswer(ctx context.Context, in domain.AnswerInput) (*domain.AnswerEvaluation, error) {
	if in.Question == "" || in.UserAnswer == "" {
		return nil, apperror.BadRequest("question and userAnswer are required")
	}

	prompt := fmt.Sprintf(`Evaluate this interview answer in valid JSON format only, no additional text:
{"score": <integer 0-100>, "feedback": "<two or three sentences of constructive feedback>"}

Question: %s
Expected answer characteristics: %s
Candidate answer: %s`,
		in.Question, in.ExpectedAnswer, in.UserAnswer)

	text, err := uc.gen.Generate(ctx, prompt)
	if err != nil {
		uc.log.Warn("answer evaluation failed, using neutral fallback", "error", err)
		return &domain.AnswerEvaluation{
			Score:    0,
			Feedback: "We could not evaluate this answer automatically. Please try again.",
		}, nil
	}

	var eval domain.AnswerEvaluation
	if err := json.Unmarshal([]byte(genai.StripJSONFences(text)), &eval); err != nil {
		uc.log.Warn("evaluation response was not valid JSON", "error", err)
		return &domain.AnswerEvaluation{
			Score:    0,
			Feedback: "We could not evaluate this answer automatically. Please try again.",
		}, nil
	}
	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > 100 {
		eval.Score = 100
	}
	return &eval, nil
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
