package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SubmittedAnswer is one submitted item. The request may carry it either as
// a bare JSON string (the answer alone) or as a structured object with the
// question text included.
type SubmittedAnswer struct {
	Question   string `json:"question,omitempty"`
	UserAnswer string `json:"userAnswer"`
}

// UnmarshalJSON accepts both value shapes: "answer" and
// {"question": "...", "userAnswer": "..."}.
func (a *SubmittedAnswer) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = SubmittedAnswer{UserAnswer: s}
		return nil
	}

	type plain SubmittedAnswer
	var v plain
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*a = SubmittedAnswer(v)
	return nil
}

// Submission pairs a question id with its submitted answer.
type Submission struct {
	QuestionID string
	Answer     SubmittedAnswer
}

// Submissions is the decoded request body: the JSON object mapping question
// ids to answers, with the object's key order preserved. A Go map would lose
// that order, and the response's comparison list must match it, so the body
// is decoded token-wise instead.
type Submissions []Submission

func (s *Submissions) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("submissions: expected JSON object, got %v", tok)
	}

	out := Submissions{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("submissions: expected string key, got %v", keyTok)
		}

		var answer SubmittedAnswer
		if err := dec.Decode(&answer); err != nil {
			return fmt.Errorf("submissions: invalid value for key %q: %w", key, err)
		}
		out = append(out, Submission{QuestionID: key, Answer: answer})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

func (s Submissions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sub := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sub.QuestionID)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(sub.Answer)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ComparisonResult is the per-question record pairing the user's answer,
// the reference answer and the derived score.
type ComparisonResult struct {
	QuestionID    string `json:"questionId"`
	Question      string `json:"question,omitempty"`
	UserAnswer    string `json:"userAnswer"`
	AIAnswer      string `json:"aiAnswer"`
	ScoreOutOfTen int    `json:"scoreOutOfTen"`
}

// EvaluationResponse is the root evaluation output. TotalQuestions counts
// every submitted item; AnswersComparison may be shorter when reference
// answers could not be obtained for some items.
type EvaluationResponse struct {
	TotalQuestions    int                `json:"totalQuestions"`
	AnswersComparison []ComparisonResult `json:"answersComparison"`
}

// TotalScore sums the per-item scores. The possible total is ten points per
// compared item, not per submitted item.
func (r *EvaluationResponse) TotalScore() (earned, possible int) {
	for _, c := range r.AnswersComparison {
		earned += c.ScoreOutOfTen
	}
	return earned, len(r.AnswersComparison) * 10
}

// QuestionResponse represents one static question in the API response
type QuestionResponse struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
