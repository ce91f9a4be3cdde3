package validation

import (
	"testing"

	"quiz-grader/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubmissions(t *testing.T) {
	v := NewValidator()

	t.Run("valid submissions pass", func(t *testing.T) {
		subs := dto.Submissions{
			{QuestionID: "1", Answer: dto.SubmittedAnswer{Question: "What is ReactJS?", UserAnswer: "A JS library"}},
			{QuestionID: "2", Answer: dto.SubmittedAnswer{UserAnswer: "Virtual DOM"}},
		}
		assert.Empty(t, v.ValidateSubmissions(subs))
	})

	t.Run("empty submissions rejected", func(t *testing.T) {
		errs := v.ValidateSubmissions(dto.Submissions{})
		assert.Len(t, errs, 1)
		assert.Equal(t, "submissions", errs[0].Field)
	})

	t.Run("blank answer rejected", func(t *testing.T) {
		subs := dto.Submissions{
			{QuestionID: "1", Answer: dto.SubmittedAnswer{UserAnswer: "   "}},
		}
		errs := v.ValidateSubmissions(subs)
		assert.Len(t, errs, 1)
		assert.Equal(t, "1.userAnswer", errs[0].Field)
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		subs := dto.Submissions{
			{QuestionID: "1", Answer: dto.SubmittedAnswer{UserAnswer: "a"}},
			{QuestionID: "1", Answer: dto.SubmittedAnswer{UserAnswer: "b"}},
		}
		errs := v.ValidateSubmissions(subs)
		assert.Len(t, errs, 1)
	})

	t.Run("blank question id rejected", func(t *testing.T) {
		subs := dto.Submissions{
			{QuestionID: " ", Answer: dto.SubmittedAnswer{UserAnswer: "a"}},
		}
		errs := v.ValidateSubmissions(subs)
		assert.Len(t, errs, 1)
		assert.Equal(t, "questionId", errs[0].Field)
	})
}
