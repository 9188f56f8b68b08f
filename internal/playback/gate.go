package playback

import (
	"time"

	"github.com/Tomasz2002/AI-project/internal/quiz"
)

// Timings observed by drivers embedding the gate. The gate itself is a pure
// state machine and never arms timers; the driver polls the player position
// every PollInterval and, after a correct answer, fires FeedbackElapsed once
// CorrectFeedbackDelay has passed.
const (
	PollInterval         = time.Second
	CorrectFeedbackDelay = 1500 * time.Millisecond
)

type State int

const (
	Playing State = iota
	PausedAwaitingQuiz
	QuestionActive
	FeedbackCorrect
	FeedbackIncorrect
	Resuming
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case PausedAwaitingQuiz:
		return "paused_awaiting_quiz"
	case QuestionActive:
		return "question_active"
	case FeedbackCorrect:
		return "feedback_correct"
	case FeedbackIncorrect:
		return "feedback_incorrect"
	case Resuming:
		return "resuming"
	}
	return "unknown"
}

// Command tells the embedding player what to do after an event.
type Command int

const (
	None Command = iota
	Pause
	ShowQuestion
	Resume
)

func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case Pause:
		return "pause"
	case ShowQuestion:
		return "show_question"
	case Resume:
		return "resume"
	}
	return "unknown"
}

// UnlockMode selects how a quiz block releases playback.
type UnlockMode int

const (
	// UnlockAllQuestions requires every question in the block to be answered
	// correctly; a wrong answer replays the same question after acknowledgment.
	UnlockAllQuestions UnlockMode = iota

	// UnlockByCount resumes as soon as the configured number of correct
	// answers accumulates. Wrong answers skip to the next question, and
	// running out of questions resumes playback regardless.
	UnlockByCount
)

// Gate sequences quiz overlays over video playback. Blocks trigger in order,
// at most once, when the playhead reaches their timestamp. All methods must
// be called from a single goroutine.
type Gate struct {
	blocks            []quiz.QuizBlock
	mode              UnlockMode
	questionsToUnlock int

	state          State
	lastShownBlock int
	completed      map[string]struct{}

	pending        []int // indices into the active block's question list
	cursor         int
	correctInBlock int
}

// NewGate builds a gate over the quiz's blocks. Questions whose IDs appear
// in alreadyCompleted are skipped when their block triggers, so a returning
// viewer does not re-answer what they already passed.
func NewGate(blocks []quiz.QuizBlock, mode UnlockMode, questionsToUnlock int, alreadyCompleted []string) *Gate {
	if questionsToUnlock < 1 {
		questionsToUnlock = 1
	}
	completed := make(map[string]struct{}, len(alreadyCompleted))
	for _, id := range alreadyCompleted {
		completed[id] = struct{}{}
	}
	return &Gate{
		blocks:            blocks,
		mode:              mode,
		questionsToUnlock: questionsToUnlock,
		state:             Playing,
		lastShownBlock:    -1,
		completed:         completed,
	}
}

func (g *Gate) State() State { return g.state }

// LastShownBlock reports the index of the most recently triggered block,
// or -1 when none has triggered yet.
func (g *Gate) LastShownBlock() int { return g.lastShownBlock }

// CompletedQuestionIDs returns the IDs answered correctly so far, the
// payload for a progress update.
func (g *Gate) CompletedQuestionIDs() []string {
	ids := make([]string, 0, len(g.completed))
	for id := range g.completed {
		ids = append(ids, id)
	}
	return ids
}

// CurrentQuestion returns the question the viewer must answer, valid in the
// QuestionActive and feedback states.
func (g *Gate) CurrentQuestion() (*quiz.Question, bool) {
	if g.lastShownBlock < 0 || g.cursor >= len(g.pending) {
		return nil, false
	}
	switch g.state {
	case QuestionActive, FeedbackCorrect, FeedbackIncorrect:
		q := g.blocks[g.lastShownBlock].Questions[g.pending[g.cursor]]
		return &q, true
	}
	return nil, false
}

// Tick reports the current playhead position. While playing, the first
// untriggered block whose timestamp has been reached fires; blocks never
// fire out of order and never fire twice.
func (g *Gate) Tick(currentTime float64) Command {
	if g.state != Playing {
		return None
	}

	next := g.lastShownBlock + 1
	if next >= len(g.blocks) || currentTime < float64(g.blocks[next].Timestamp) {
		return None
	}

	g.lastShownBlock = next
	g.pending = g.pending[:0]
	for i, q := range g.blocks[next].Questions {
		if _, done := g.completed[q.ID]; !done {
			g.pending = append(g.pending, i)
		}
	}
	g.cursor = 0
	g.correctInBlock = 0

	// Everything in this block was answered on a previous visit.
	if len(g.pending) == 0 {
		return None
	}

	g.state = PausedAwaitingQuiz
	return Pause
}

// QuestionShown acknowledges that the player paused; the overlay for the
// current question goes up.
func (g *Gate) QuestionShown() Command {
	if g.state != PausedAwaitingQuiz {
		return None
	}
	g.state = QuestionActive
	return ShowQuestion
}

// AnswerSelected records the viewer's choice for the current question.
func (g *Gate) AnswerSelected(option string) Command {
	if g.state != QuestionActive {
		return None
	}
	question, ok := g.CurrentQuestion()
	if !ok {
		return None
	}
	if option == question.CorrectAnswer {
		g.state = FeedbackCorrect
	} else {
		g.state = FeedbackIncorrect
	}
	return None
}

// FeedbackElapsed fires when the correct-answer display delay has passed.
// The question is marked completed and the gate advances.
func (g *Gate) FeedbackElapsed() Command {
	if g.state != FeedbackCorrect {
		return None
	}
	if question, ok := g.CurrentQuestion(); ok {
		g.completed[question.ID] = struct{}{}
	}
	g.correctInBlock++
	g.cursor++

	if g.mode == UnlockByCount && g.correctInBlock >= g.questionsToUnlock {
		return g.resume()
	}
	if g.cursor >= len(g.pending) {
		return g.resume()
	}
	g.state = QuestionActive
	return ShowQuestion
}

// Acknowledge is the explicit click after a wrong answer. Unlike a correct
// answer, playback never resumes implicitly from here in UnlockAllQuestions
// mode: the same question comes back until it is answered correctly.
func (g *Gate) Acknowledge() Command {
	if g.state != FeedbackIncorrect {
		return None
	}

	if g.mode == UnlockAllQuestions {
		g.state = QuestionActive
		return ShowQuestion
	}

	// UnlockByCount skips forward; an exhausted block releases playback
	// even without enough correct answers.
	g.cursor++
	if g.cursor >= len(g.pending) {
		return g.resume()
	}
	g.state = QuestionActive
	return ShowQuestion
}

// Resumed acknowledges that the player restarted playback.
func (g *Gate) Resumed() Command {
	if g.state != Resuming {
		return None
	}
	g.state = Playing
	return None
}

func (g *Gate) resume() Command {
	g.state = Resuming
	return Resume
}
