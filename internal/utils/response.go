package utils

import "github.com/gofiber/fiber/v2"

// APIResponse describes the common structure for API responses.
type APIResponse struct {
	Success      bool        `json:"success"`
	Data         interface{} `json:"data,omitempty"`
	Message      string      `json:"message,omitempty"`
	Error        string      `json:"error,omitempty"`
	EvaluationID string      `json:"evaluationId,omitempty"`
}

// SendSuccess sends a successful JSON response carrying a data payload.
func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// SendAccepted acknowledges a submission that will be processed in the background.
func SendAccepted(c *fiber.Ctx, message, evaluationID string) error {
	if message == "" {
		message = "accepted"
	}

	return c.Status(fiber.StatusAccepted).JSON(APIResponse{
		Success:      true,
		Message:      message,
		EvaluationID: evaluationID,
	})
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Error:   message,
	})
}
