package task

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/ai"
)

type stubGrader struct {
	mu     sync.Mutex
	calls  int
	result ai.EvaluationResult
	err    error
	block  chan struct{}
}

func (s *stubGrader) Grade(ctx context.Context, input ai.GradeInput) (ai.EvaluationResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.block != nil {
		<-s.block
	}

	if s.err != nil {
		return ai.EvaluationResult{}, s.err
	}

	return s.result, nil
}

func (s *stubGrader) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitForTerminal(t *testing.T, runner *Runner) State {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		state := runner.Snapshot()
		if state.Status.Terminal() {
			return state
		}

		select {
		case <-deadline:
			t.Fatalf("task never reached a terminal state, stuck at %s", state.Status)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestDispatcherCompletesTask(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	grader := &stubGrader{result: ai.EvaluationResult{Score: 92, FeedbackSummary: "Well done."}}
	dispatcher := NewDispatcher(grader, 4, zerolog.New(io.Discard))
	dispatcher.Start(ctx, 2)

	runner := NewRunner()
	input := gradeInput()
	require.True(t, runner.Begin(input))
	dispatcher.Enqueue("e1", runner, input)

	state := waitForTerminal(t, runner)
	require.Equal(t, StatusCompleted, state.Status)
	require.Equal(t, 92, state.Result.Score)
	require.Equal(t, 1, grader.callCount())
}

func TestDispatcherFailsTaskOnGraderError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	grader := &stubGrader{err: errors.New("parse evaluation json: unexpected end of JSON input")}
	dispatcher := NewDispatcher(grader, 4, zerolog.New(io.Discard))
	dispatcher.Start(ctx, 1)

	runner := NewRunner()
	input := gradeInput()
	require.True(t, runner.Begin(input))
	dispatcher.Enqueue("e1", runner, input)

	state := waitForTerminal(t, runner)
	require.Equal(t, StatusError, state.Status)
	require.Contains(t, state.Error, "parse evaluation json")
	require.Nil(t, state.Result)
}

func TestDuplicateSubmissionIssuesSingleCall(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})
	grader := &stubGrader{result: ai.EvaluationResult{Score: 70}, block: release}
	dispatcher := NewDispatcher(grader, 4, zerolog.New(io.Discard))
	dispatcher.Start(ctx, 2)

	runner := NewRunner()
	input := gradeInput()

	require.True(t, runner.Begin(input))
	dispatcher.Enqueue("e1", runner, input)

	// Second submission while the first is still in flight.
	require.False(t, runner.Begin(input))

	close(release)
	state := waitForTerminal(t, runner)
	require.Equal(t, StatusCompleted, state.Status)
	require.Equal(t, 1, grader.callCount())
}

func TestDispatcherFullQueueFailsFast(t *testing.T) {
	// No workers started, queue of one: the second job cannot be accepted.
	grader := &stubGrader{result: ai.EvaluationResult{}}
	dispatcher := NewDispatcher(grader, 1, zerolog.New(io.Discard))

	first := NewRunner()
	second := NewRunner()
	input := gradeInput()
	require.True(t, first.Begin(input))
	require.True(t, second.Begin(input))

	dispatcher.Enqueue("e1", first, input)
	dispatcher.Enqueue("e2", second, input)

	state := second.Snapshot()
	require.Equal(t, StatusError, state.Status)
	require.NotEmpty(t, state.Error)
}
