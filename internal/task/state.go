package task

import (
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/ai"
)

// Status is the lifecycle of one evaluation task.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether no further transitions can occur.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// State is the server-side record for one evaluation id. It holds the raw
// input documents while the grading call is in flight and, once terminal,
// either the structured result or an error message.
type State struct {
	Status            Status               `json:"status"`
	StudentAnswerText string               `json:"studentAnswerText,omitempty"`
	QuestionPaperText string               `json:"questionPaperText,omitempty"`
	AnswerKeyText     string               `json:"answerKeyText,omitempty"`
	Filename          string               `json:"filename,omitempty"`
	Tone              string               `json:"tone,omitempty"`
	Result            *ai.EvaluationResult `json:"result,omitempty"`
	Error             string               `json:"error,omitempty"`
}
