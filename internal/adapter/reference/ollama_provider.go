package reference

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quiz-grader/internal/config"
	"quiz-grader/internal/domain"
	"quiz-grader/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaProvider implements domain.ReferenceAnswerProvider against a local
// Ollama server through langchaingo.
type OllamaProvider struct {
	llm     *ollama.LLM
	timeout time.Duration
}

// NewOllamaProvider creates a new OllamaProvider.
func NewOllamaProvider(cfg config.OllamaConfig, timeout time.Duration) (*OllamaProvider, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama LLM client: %w", err)
	}

	return &OllamaProvider{llm: llm, timeout: timeout}, nil
}

// GetReferenceAnswer implements domain.ReferenceAnswerProvider
func (p *OllamaProvider) GetReferenceAnswer(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	completion, err := p.llm.Call(ctx, prompt, llms.WithTemperature(0.1))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			logger.Get().Error("Ollama request timed out", zap.Error(err))
			return "", domain.NewLLMServiceError(fmt.Errorf("ollama request timed out: %w", err))
		}
		logger.Get().Error("Ollama completion failed", zap.Error(err))
		return "", domain.NewLLMServiceError(fmt.Errorf("ollama call failed: %w", err))
	}

	completion = stripThinkTags(strings.TrimSpace(completion))
	if completion == "" {
		return "", domain.NewEmptyCompletionError()
	}
	return completion, nil
}

// stripThinkTags removes a <think>...</think> block some reasoning models
// prepend to their output.
func stripThinkTags(s string) string {
	start := strings.Index(s, "<think>")
	if start == -1 {
		return s
	}
	end := strings.Index(s, "</think>")
	if end == -1 || end < start {
		return s
	}
	return strings.TrimSpace(s[:start] + s[end+len("</think>"):])
}
