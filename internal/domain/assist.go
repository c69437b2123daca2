package domain

import "context"

// TextGenerator is the boundary to the generative-language collaborator.
// Callers own parsing and validation of the returned text and must fall
// back to a deterministic default when the output is malformed or missing.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ResumeInput feeds the resume builder endpoints.
type ResumeInput struct {
	FullName            string   `json:"full_name"`
	CurrentPosition     string   `json:"current_position"`
	CurrentLength       int      `json:"current_length"`
	CurrentTechnologies string   `json:"current_technologies"`
	Companies           []string `json:"companies"`
}

// LearningPathInput feeds the learning-path suggestion endpoint.
type LearningPathInput struct {
	Skill          string `json:"skill"`
	CurrentLevel   string `json:"current_level"`
	LearningGoal   string `json:"learning_goal"`
	Timeframe      string `json:"timeframe"`
	PreferredStyle string `json:"preferred_style"`
}

// LearningPath is the parsed structured answer.
type LearningPath struct {
	Overview                string      `json:"overview"`
	Prerequisites           []string    `json:"prerequisites"`
	Milestones              []Milestone `json:"milestones"`
	EstimatedTimeToComplete string      `json:"estimated_time_to_complete"`
	SkillLevel              string      `json:"skill_level"`
	Goal                    string      `json:"goal"`
}

type Milestone struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Resources   []LearningResource `json:"resources"`
}

type LearningResource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// QuestionInput feeds the interview-question generator.
type QuestionInput struct {
	JobTitle        string `json:"job_title"`
	Skills          string `json:"skills"`
	Experience      int    `json:"experience"`
	CurrentQuestion int    `json:"current_question"`
}

// AnswerInput feeds the answer evaluator.
type AnswerInput struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
	UserAnswer     string `json:"user_answer"`
}

// AnswerEvaluation is the evaluator's parsed verdict.
type AnswerEvaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// AssistUsecase wraps the AI-assisted layer: resume generation, interview
// question generation, answer evaluation and learning-path suggestions.
type AssistUsecase interface {
	GenerateSkills(ctx context.Context, in ResumeInput) ([]string, error)
	GenerateSummary(ctx context.Context, in ResumeInput) (string, error)
	SuggestLearningPath(ctx context.Context, in LearningPathInput) (*LearningPath, error)
	GenerateInterviewQuestion(ctx context.Context, in QuestionInput) (string, error)
	EvaluateAnswer(ctx context.Context, in AnswerInput) (*AnswerEvaluation, error)
}
