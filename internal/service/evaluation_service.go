package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/dto"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/task"
)

// EvaluationService exposes the evaluation submission and status operations.
type EvaluationService interface {
	Start(ctx context.Context, payload dto.EvaluateRequest) error
	Status(ctx context.Context, id string) (task.State, error)
}

type evaluationService struct {
	registry   *task.Registry
	dispatcher *task.Dispatcher
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewEvaluationService constructs the evaluation service.
func NewEvaluationService(registry *task.Registry, dispatcher *task.Dispatcher, validate *validator.Validate, logger zerolog.Logger) EvaluationService {
	return &evaluationService{
		registry:   registry,
		dispatcher: dispatcher,
		validator:  validate,
		logger:     logger.With().Str("component", "evaluation_service").Logger(),
	}
}

// Start validates the submission and hands it to the worker pool. When an
// evaluation for the same id is already in flight the call is accepted and
// silently ignored; the stored inputs stay untouched and no second provider
// call is issued.
func (s *evaluationService) Start(ctx context.Context, payload dto.EvaluateRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	runner := s.registry.Get(payload.EvaluationID)
	if !runner.Begin(payload.GradeInput()) {
		s.logger.Info().Str("evaluation_id", payload.EvaluationID).Msg("evaluation already in progress")
		return nil
	}

	s.dispatcher.Enqueue(payload.EvaluationID, runner, payload.GradeInput())
	return nil
}

// Status returns the current task state for the id. An id that has never been
// submitted reports idle; the registry creates its runner lazily.
func (s *evaluationService) Status(ctx context.Context, id string) (task.State, error) {
	return s.registry.Get(id).Snapshot(), nil
}
