package reference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quiz-grader/internal/config"
	"quiz-grader/internal/domain"
	"quiz-grader/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// OpenAIProvider implements domain.ReferenceAnswerProvider against the
// OpenAI chat-completion API through langchaingo.
type OpenAIProvider struct {
	llm     *openai.LLM
	timeout time.Duration
}

// NewOpenAIProvider creates a new OpenAIProvider. Credentials come from the
// explicit config object, never from ambient globals.
func NewOpenAIProvider(cfg config.OpenAIConfig, timeout time.Duration) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}

	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI LLM client: %w", err)
	}

	return &OpenAIProvider{llm: llm, timeout: timeout}, nil
}

// GetReferenceAnswer implements domain.ReferenceAnswerProvider
func (p *OpenAIProvider) GetReferenceAnswer(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	completion, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt)
	if err != nil {
		logger.Get().Error("OpenAI completion failed", zap.Error(err))
		return "", domain.NewLLMServiceError(fmt.Errorf("openai call failed: %w", err))
	}

	completion = strings.TrimSpace(completion)
	if completion == "" {
		return "", domain.NewEmptyCompletionError()
	}
	return completion, nil
}
