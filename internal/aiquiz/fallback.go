package aiquiz

import "fmt"

// PlaceholderQuestions builds the deterministic fallback set substituted
// when generation fails, so the quiz flow never aborts on an AI outage.
func PlaceholderQuestions(count int) []Question {
	if count < 1 {
		count = 1
	}

	questions := make([]Question, count)
	for i := range questions {
		questions[i] = Question{
			QuestionText:  fmt.Sprintf("Placeholder question %d: automatic generation was unavailable. Which option is marked as correct?", i+1),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
		}
	}
	return questions
}
