package service

import (
	"context"

	"quiz-grader/internal/domain"
	"quiz-grader/internal/dto"
	"quiz-grader/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EvaluationService defines the interface for answer evaluation
type EvaluationService interface {
	Evaluate(ctx context.Context, submissions dto.Submissions) (*dto.EvaluationResponse, error)
}

// evaluationService implements EvaluationService
type evaluationService struct {
	provider    domain.ReferenceAnswerProvider
	maxInFlight int
}

// NewEvaluationService creates a new instance of evaluationService.
// maxInFlight caps concurrent reference-answer requests so the backend is
// not overwhelmed; values below 1 mean sequential processing.
func NewEvaluationService(provider domain.ReferenceAnswerProvider, maxInFlight int) EvaluationService {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &evaluationService{
		provider:    provider,
		maxInFlight: maxInFlight,
	}
}

// Evaluate obtains a reference answer for every submission, scores the user
// answer against it, and assembles the response in submission order. A
// failed or empty reference answer skips that item only; it still counts
// toward TotalQuestions. Cancellation of ctx abandons in-flight requests
// and discards partial results.
func (s *evaluationService) Evaluate(ctx context.Context, submissions dto.Submissions) (*dto.EvaluationResponse, error) {
	if len(submissions) == 0 {
		return nil, domain.NewInvalidInputError("At least one submission is required")
	}

	outcomes := make([]itemOutcome, len(submissions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxInFlight)

	for i, sub := range submissions {
		g.Go(func() error {
			outcomes[i] = s.evaluateItem(gctx, sub)
			return nil
		})
	}

	// Worker funcs never return an error; Wait only fences completion.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		logger.Get().Warn("Evaluation cancelled, discarding partial results", zap.Error(err))
		return nil, domain.NewInternalError("Evaluation cancelled", err)
	}

	return aggregate(len(submissions), outcomes), nil
}

func (s *evaluationService) evaluateItem(ctx context.Context, sub dto.Submission) itemOutcome {
	prompt := domain.BuildPrompt(sub.Answer.Question, sub.Answer.UserAnswer)

	referenceAnswer, err := s.provider.GetReferenceAnswer(ctx, prompt)
	if err != nil {
		logger.Get().Warn("No reference answer, skipping item",
			zap.String("question_id", sub.QuestionID),
			zap.Error(err),
		)
		return itemOutcome{
			questionID: sub.QuestionID,
			skipReason: domain.NewReferenceAnswerError(sub.QuestionID, err),
		}
	}

	score := domain.ScoreOutOfTen(sub.Answer.UserAnswer, referenceAnswer)

	return itemOutcome{
		questionID: sub.QuestionID,
		comparison: &dto.ComparisonResult{
			QuestionID:    sub.QuestionID,
			Question:      sub.Answer.Question,
			UserAnswer:    sub.Answer.UserAnswer,
			AIAnswer:      referenceAnswer,
			ScoreOutOfTen: score,
		},
	}
}
