package service

import "quiz-grader/internal/dto"

// itemOutcome records the result of evaluating one submission: either a
// completed comparison or a skip with the reason preserved. Collecting
// outcomes explicitly, then partitioning, replaces skip-and-continue loop
// control.
type itemOutcome struct {
	questionID string
	comparison *dto.ComparisonResult
	skipReason error
}

func (o itemOutcome) skipped() bool {
	return o.comparison == nil
}

// aggregate partitions the per-item outcomes into the final response.
// Outcomes arrive in submission order and that order is preserved; skipped
// items contribute to the total count only.
func aggregate(totalQuestions int, outcomes []itemOutcome) *dto.EvaluationResponse {
	comparisons := make([]dto.ComparisonResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.skipped() {
			continue
		}
		comparisons = append(comparisons, *outcome.comparison)
	}

	return &dto.EvaluationResponse{
		TotalQuestions:    totalQuestions,
		AnswersComparison: comparisons,
	}
}
