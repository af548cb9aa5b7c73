package client

import (
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/ai"
)

// Status is the client-visible lifecycle of one evaluation.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusError      Status = "Error"
)

// Terminal reports whether no further transitions can occur.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Evaluation is one graded submission as tracked by the client. Score,
// feedback, tips and questions are present only once Completed; Error only
// when the evaluation failed.
type Evaluation struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	Status          Status                  `json:"status"`
	Score           *int                    `json:"score,omitempty"`
	Date            string                  `json:"date"`
	FeedbackSummary string                  `json:"feedbackSummary,omitempty"`
	ImprovementTips []string                `json:"improvementTips,omitempty"`
	Questions       []ai.QuestionEvaluation `json:"questions,omitempty"`
	Error           string                  `json:"error,omitempty"`
}

// SubmitRequest is the submission payload sent to the evaluation endpoint.
type SubmitRequest struct {
	StudentAnswerText string `json:"studentAnswerText"`
	QuestionPaperText string `json:"questionPaperText"`
	AnswerKeyText     string `json:"answerKeyText"`
	Filename          string `json:"filename"`
	EvaluationID      string `json:"evaluationId"`
	Tone              string `json:"tone"`
}

// TaskState is the server-side task record as reported by the polling
// endpoint. Input texts echoed by the server are ignored here; the poller
// only needs the status and the terminal payload.
type TaskState struct {
	Status string               `json:"status"`
	Result *ai.EvaluationResult `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}
