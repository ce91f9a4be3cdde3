package validation

import (
	"fmt"
	"strings"

	"quiz-grader/internal/domain"
	"quiz-grader/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubmissions checks the completeness invariant before the pipeline
// runs: at least one submission, and every answer non-blank after trimming.
// The pipeline itself never re-checks these.
func (v *Validator) ValidateSubmissions(submissions dto.Submissions) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(submissions) == 0 {
		errors = append(errors, domain.NewMissingFieldError("submissions"))
		return errors
	}

	seen := make(map[string]bool, len(submissions))
	for _, sub := range submissions {
		if strings.TrimSpace(sub.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("questionId"))
			continue
		}
		if seen[sub.QuestionID] {
			errors = append(errors, domain.NewInvalidFormatError(
				sub.QuestionID, "duplicate question id"))
			continue
		}
		seen[sub.QuestionID] = true

		if strings.TrimSpace(sub.Answer.UserAnswer) == "" {
			errors = append(errors, domain.NewMissingFieldError(
				fmt.Sprintf("%s.userAnswer", sub.QuestionID)))
		}
	}

	return errors
}
