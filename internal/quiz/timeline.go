package quiz

import (
	"fmt"

	"github.com/Tomasz2002/AI-project/internal/aiquiz"
	"github.com/google/uuid"
)

// maxQuestionsPerBlock caps how many questions share one timestamp.
const maxQuestionsPerBlock = 5

// BuildTimeline spreads generated questions evenly across the video
// duration. Questions are chunked in order into groups of at most
// maxQuestionsPerBlock; with g groups, group i (1-based) lands at
// floor(duration/(g+1) * i), so no block ever reaches the end of the video
// and timestamps strictly increase. Videos too short to give every group
// its own second get fewer, larger blocks instead of colliding timestamps.
// Zero questions yield no blocks.
func BuildTimeline(questions []aiquiz.Question, durationSeconds int) []QuizBlock {
	if len(questions) == 0 {
		return nil
	}

	groups := (len(questions) + maxQuestionsPerBlock - 1) / maxQuestionsPerBlock
	// interval >= 1s keeps the floored timestamps distinct.
	if maxGroups := durationSeconds - 1; groups > maxGroups {
		if maxGroups < 1 {
			maxGroups = 1
		}
		groups = maxGroups
	}
	perBlock := (len(questions) + groups - 1) / groups
	interval := float64(durationSeconds) / float64(groups+1)

	blocks := make([]QuizBlock, 0, groups)
	for i := 0; i < groups; i++ {
		start := i * perBlock
		end := start + perBlock
		if end > len(questions) {
			end = len(questions)
		}

		timestamp := int(interval * float64(i+1))
		blocks = append(blocks, QuizBlock{
			Timestamp:          timestamp,
			TimestampFormatted: FormatTimestamp(timestamp),
			Questions:          toBlockQuestions(questions[start:end]),
		})
	}

	return blocks
}

// FormatTimestamp renders whole seconds as "M:SS".
func FormatTimestamp(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func toBlockQuestions(generated []aiquiz.Question) []Question {
	questions := make([]Question, len(generated))
	for i, q := range generated {
		questions[i] = Question{
			ID:            uuid.New().String(),
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return questions
}
