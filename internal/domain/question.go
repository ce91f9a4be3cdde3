package domain

// Question is one entry of the static question set. The set is defined at
// process start and never mutated.
type Question struct {
	ID   int
	Text string
}

// DefaultQuestions is the question set served to clients. Submissions are
// keyed by these ids, though the pipeline scores whatever ids it receives.
var DefaultQuestions = []Question{
	{ID: 1, Text: "What is ReactJS?"},
	{ID: 2, Text: "Explain props and state in React with differences?"},
	{ID: 3, Text: "What is tsx?"},
	{ID: 4, Text: "What is Virtual DOM?"},
	{ID: 5, Text: "What is higher-order component in React?"},
}
