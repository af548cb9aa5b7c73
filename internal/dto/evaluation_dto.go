package dto

import (
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/ai"
)

// EvaluateRequest is the submission payload for one paper evaluation. The
// three document texts arrive pre-extracted; OCR happens on the client.
type EvaluateRequest struct {
	StudentAnswerText string `json:"studentAnswerText" validate:"required"`
	QuestionPaperText string `json:"questionPaperText" validate:"required"`
	AnswerKeyText     string `json:"answerKeyText" validate:"required"`
	Filename          string `json:"filename"`
	EvaluationID      string `json:"evaluationId" validate:"required"`
	Tone              string `json:"tone"`
}

// GradeInput converts the request into the grader's input shape.
func (r EvaluateRequest) GradeInput() ai.GradeInput {
	return ai.GradeInput{
		StudentAnswerText: r.StudentAnswerText,
		QuestionPaperText: r.QuestionPaperText,
		AnswerKeyText:     r.AnswerKeyText,
		Filename:          r.Filename,
		Tone:              r.Tone,
	}
}
