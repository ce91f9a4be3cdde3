package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionsUnmarshalPreservesKeyOrder(t *testing.T) {
	body := `{"3": "third", "1": "first", "2": "second"}`

	var subs Submissions
	require.NoError(t, json.Unmarshal([]byte(body), &subs))

	require.Len(t, subs, 3)
	assert.Equal(t, "3", subs[0].QuestionID)
	assert.Equal(t, "1", subs[1].QuestionID)
	assert.Equal(t, "2", subs[2].QuestionID)
	assert.Equal(t, "third", subs[0].Answer.UserAnswer)
}

func TestSubmissionsUnmarshalMixedValueShapes(t *testing.T) {
	body := `{
		"1": {"question": "What is ReactJS?", "userAnswer": "A JS library"},
		"2": "Virtual DOM"
	}`

	var subs Submissions
	require.NoError(t, json.Unmarshal([]byte(body), &subs))

	require.Len(t, subs, 2)
	assert.Equal(t, "What is ReactJS?", subs[0].Answer.Question)
	assert.Equal(t, "A JS library", subs[0].Answer.UserAnswer)
	assert.Empty(t, subs[1].Answer.Question)
	assert.Equal(t, "Virtual DOM", subs[1].Answer.UserAnswer)
}

func TestSubmissionsUnmarshalEmptyObject(t *testing.T) {
	var subs Submissions
	require.NoError(t, json.Unmarshal([]byte(`{}`), &subs))
	assert.Empty(t, subs)
}

func TestSubmissionsUnmarshalRejectsNonObject(t *testing.T) {
	var subs Submissions
	assert.Error(t, json.Unmarshal([]byte(`["a", "b"]`), &subs))
	assert.Error(t, json.Unmarshal([]byte(`"a"`), &subs))
}

func TestSubmissionsMarshalRoundTrip(t *testing.T) {
	original := Submissions{
		{QuestionID: "2", Answer: SubmittedAnswer{Question: "What is tsx?", UserAnswer: "Typed JSX"}},
		{QuestionID: "1", Answer: SubmittedAnswer{UserAnswer: "A JS library"}},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Submissions
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestEvaluationResponseTotalScore(t *testing.T) {
	resp := &EvaluationResponse{
		TotalQuestions: 3,
		AnswersComparison: []ComparisonResult{
			{QuestionID: "1", ScoreOutOfTen: 7},
			{QuestionID: "2", ScoreOutOfTen: 10},
		},
	}

	earned, possible := resp.TotalScore()
	assert.Equal(t, 17, earned)
	// Possible total counts compared items, not submitted ones.
	assert.Equal(t, 20, possible)
}
