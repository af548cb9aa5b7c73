package ai

import "context"

// GradeInput contains the artefacts needed to evaluate one answer sheet.
type GradeInput struct {
	StudentAnswerText string
	QuestionPaperText string
	AnswerKeyText     string
	Filename          string
	Tone              string
}

// QuestionEvaluation is the per-question verdict returned by the AI grader.
// Score is an opaque "x/y" display string; no numeric consistency with the
// overall score is enforced.
type QuestionEvaluation struct {
	ID            int    `json:"id"`
	Question      string `json:"question"`
	StudentAnswer string `json:"studentAnswer"`
	ModelAnswer   string `json:"modelAnswer"`
	Evaluation    string `json:"evaluation"`
	Score         string `json:"score"`
	Reasoning     string `json:"reasoning"`
}

// EvaluationResult is the structured feedback returned by the AI grader.
type EvaluationResult struct {
	StudentName     string               `json:"studentName"`
	PaperTitle      string               `json:"paperTitle"`
	Score           int                  `json:"score"`
	FeedbackSummary string               `json:"feedbackSummary"`
	ImprovementTips []string             `json:"improvementTips"`
	Questions       []QuestionEvaluation `json:"questions"`
}

// Grader describes an AI model capable of evaluating an answer sheet against
// a question paper and model answer key.
type Grader interface {
	Grade(ctx context.Context, input GradeInput) (EvaluationResult, error)
}
