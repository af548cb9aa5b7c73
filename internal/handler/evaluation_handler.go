package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/dto"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/service"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/utils"
)

const missingDocumentsMessage = "All three documents and an evaluationId are required."

// EvaluationHandler manages the evaluation submission and polling endpoints.
type EvaluationHandler struct {
	service service.EvaluationService
	logger  zerolog.Logger
}

// NewEvaluationHandler builds an evaluation handler instance.
func NewEvaluationHandler(service service.EvaluationService, logger zerolog.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		service: service,
		logger:  logger.With().Str("component", "evaluation_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *EvaluationHandler) Register(router fiber.Router) {
	router.Post("/evaluate", h.evaluate)
	router.Get("/evaluation/:id", h.status)
}

func (h *EvaluationHandler) evaluate(c *fiber.Ctx) error {
	var payload dto.EvaluateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, missingDocumentsMessage)
	}

	if err := h.service.Start(c.Context(), payload); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendAccepted(c, "Evaluation process started.", payload.EvaluationID)
}

func (h *EvaluationHandler) status(c *fiber.Ctx) error {
	id := c.Params("id")

	state, err := h.service.Status(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, state)
}

func (h *EvaluationHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, missingDocumentsMessage)
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}
