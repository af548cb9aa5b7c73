package task

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/ai"
)

type job struct {
	id     string
	runner *Runner
	input  ai.GradeInput
}

// Dispatcher decouples the HTTP handler from the grading call: the handler
// enqueues a job and returns immediately, a worker performs the single
// provider call and writes the terminal state back into the job's runner.
// There is no retry and no timeout on the call itself; workers stop when the
// lifecycle context passed to Start is cancelled.
type Dispatcher struct {
	jobs   chan job
	grader ai.Grader
	logger zerolog.Logger
}

// NewDispatcher builds a dispatcher with the given queue capacity.
func NewDispatcher(grader ai.Grader, queueSize int, logger zerolog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}

	return &Dispatcher{
		jobs:   make(chan job, queueSize),
		grader: grader,
		logger: logger.With().Str("component", "task_dispatcher").Logger(),
	}
}

// Start launches the worker goroutines. Workers exit when ctx is cancelled;
// an in-flight provider call still runs to completion or failure.
func (d *Dispatcher) Start(ctx context.Context, workers int) {
	if workers <= 0 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		go d.work(ctx)
	}
}

// Enqueue hands a started evaluation to the worker pool. The caller must have
// transitioned the runner to processing via Begin first. A full queue fails
// the task immediately rather than blocking the request path.
func (d *Dispatcher) Enqueue(id string, runner *Runner, input ai.GradeInput) {
	select {
	case d.jobs <- job{id: id, runner: runner, input: input}:
	default:
		d.logger.Error().Str("evaluation_id", id).Msg("evaluation queue full")
		runner.Fail("Evaluation queue is full. Please try again later.")
	}
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-d.jobs:
			d.run(ctx, j)
		}
	}
}

func (d *Dispatcher) run(ctx context.Context, j job) {
	logger := d.logger.With().Str("evaluation_id", j.id).Logger()
	logger.Info().Str("filename", j.input.Filename).Str("tone", j.input.Tone).Msg("grading started")

	result, err := d.grader.Grade(ctx, j.input)
	if err != nil {
		logger.Error().Err(err).Msg("ai evaluation failed")
		j.runner.Fail(err.Error())
		return
	}

	j.runner.Complete(result)
	logger.Info().Int("score", result.Score).Msg("grading completed")
}
