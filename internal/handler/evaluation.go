package handler

import (
	"quiz-grader/internal/domain"
	"quiz-grader/internal/dto"
	"quiz-grader/internal/logger"
	"quiz-grader/internal/service"
	"quiz-grader/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EvaluationHandler handles answer evaluation HTTP requests
type EvaluationHandler struct {
	service   service.EvaluationService
	validator *validation.Validator
}

// NewEvaluationHandler creates a new EvaluationHandler instance
func NewEvaluationHandler(service service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetQuestions handles GET /api/questions. The question set is static,
// in-process data.
func (h *EvaluationHandler) GetQuestions(c *fiber.Ctx) error {
	questions := make([]dto.QuestionResponse, 0, len(domain.DefaultQuestions))
	for _, q := range domain.DefaultQuestions {
		questions = append(questions, dto.QuestionResponse{
			ID:       q.ID,
			Question: q.Text,
		})
	}
	return c.JSON(questions)
}

// Evaluate handles POST /api/evaluate. The body is a JSON object mapping
// question ids to answers, each either a bare string or a
// {question, userAnswer} record.
func (h *EvaluationHandler) Evaluate(c *fiber.Ctx) error {
	var submissions dto.Submissions
	if err := c.BodyParser(&submissions); err != nil {
		logger.Get().Warn("Failed to parse evaluation request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	// Completeness is the caller's contract; the pipeline assumes it holds.
	if errs := h.validator.ValidateSubmissions(submissions); len(errs) > 0 {
		return errs // Handled by the ErrorHandler middleware
	}

	response, err := h.service.Evaluate(c.UserContext(), submissions)
	if err != nil {
		logger.Get().Error("Failed to evaluate submissions",
			zap.Error(err),
			zap.Int("submission_count", len(submissions)),
		)
		return err // Status mapping is the ErrorHandler middleware's job
	}

	return c.JSON(response)
}
