package domain

import "context"

// ReferenceAnswerProvider obtains a reference answer for a prompt from a
// text-generation backend. Implementations return the completion trimmed of
// surrounding whitespace and treat an empty completion as a failure.
// Completions are non-deterministic: the same prompt may yield different
// text on repeated calls.
type ReferenceAnswerProvider interface {
	GetReferenceAnswer(ctx context.Context, prompt string) (string, error)
}

// BuildPrompt assembles the prompt sent to the reference-answer backend:
// the question text and the user's answer separated by a single space, or
// the bare answer when no question text was submitted.
func BuildPrompt(question, userAnswer string) string {
	if question == "" {
		return userAnswer
	}
	return question + " " + userAnswer
}
