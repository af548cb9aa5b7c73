package task

import (
	"sync"

	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/ai"
)

// Runner owns the task state for exactly one evaluation id. All transitions
// go through the runner, so the only synchronisation needed per id is the
// runner's own mutex.
type Runner struct {
	mu    sync.Mutex
	state State
}

// NewRunner returns a runner in the idle state.
func NewRunner() *Runner {
	return &Runner{state: State{Status: StatusIdle}}
}

// Begin attempts the idle/terminal -> processing transition, storing the
// inputs and clearing any previous result or error. It returns false without
// side effects when an evaluation is already in flight, which makes duplicate
// submissions for the same id a no-op.
func (r *Runner) Begin(input ai.GradeInput) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.Status == StatusProcessing {
		return false
	}

	r.state = State{
		Status:            StatusProcessing,
		StudentAnswerText: input.StudentAnswerText,
		QuestionPaperText: input.QuestionPaperText,
		AnswerKeyText:     input.AnswerKeyText,
		Filename:          input.Filename,
		Tone:              input.Tone,
	}

	return true
}

// Complete stores the grading result and moves the task to completed.
func (r *Runner) Complete(result ai.EvaluationResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Status = StatusCompleted
	r.state.Result = &result
	r.state.Error = ""
}

// Fail records a terminal error. The message must be human readable; it is
// relayed to polling clients verbatim.
func (r *Runner) Fail(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message == "" {
		message = "An unknown error occurred during AI evaluation."
	}

	r.state.Status = StatusError
	r.state.Result = nil
	r.state.Error = message
}

// Snapshot returns a copy of the current task state. Safe to call at any
// time; before the first Begin it reports idle.
func (r *Runner) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.state
	if r.state.Result != nil {
		result := *r.state.Result
		snapshot.Result = &result
	}

	return snapshot
}
