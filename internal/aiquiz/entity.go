package aiquiz

// Question is one generated multiple-choice question. CorrectAnswer is
// always an exact copy of one element of Options.
type Question struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuestionRequest carries the extracted source text and the desired number
// of questions.
type QuestionRequest struct {
	SourceText string
	Count      int
}
