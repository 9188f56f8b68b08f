package aiquiz

import "fmt"

// maxSourceTextLength bounds how much of the extracted document is included
// in the prompt. This is a cost and latency control, not a correctness
// requirement.
const maxSourceTextLength = 15000

const systemPrompt = `
You are an educational quiz generator. Based on text extracted from a user's
PDF notes, you create clear, substantive multiple-choice questions.

Rules:
1. Every question must be strictly grounded in the provided notes.
2. Each question has exactly 4 options and exactly one correct answer.
3. "correctAnswer" must be an exact, character-for-character copy of one of
   the strings in "options".
4. Distractors must be plausible: similar length, structure and tone as the
   correct option. Never make the correct answer obviously longer or more
   technical.
5. Never reveal the answer inside the question text.

Return ONLY a valid JSON array, with no text outside the JSON, in exactly
this format:

[
  {
    "questionText": "The question?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": "Option B"
  }
]
`

func BuildUserPrompt(req QuestionRequest) string {
	text := req.SourceText
	if len(text) > maxSourceTextLength {
		text = text[:maxSourceTextLength]
	}

	return fmt.Sprintf(
		"Generate exactly %d multiple-choice questions from the following notes. "+
			"Follow the format specified in the system prompt.\n\nNOTES:\n%s",
		req.Count, text,
	)
}
