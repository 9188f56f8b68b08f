package playback_test

import (
	"fmt"
	"testing"

	"github.com/Tomasz2002/AI-project/internal/playback"
	"github.com/Tomasz2002/AI-project/internal/quiz"
)

func buildBlocks(timestamps []int, questionsPerBlock int) []quiz.QuizBlock {
	blocks := make([]quiz.QuizBlock, len(timestamps))
	for b, ts := range timestamps {
		questions := make([]quiz.Question, questionsPerBlock)
		for q := range questions {
			questions[q] = quiz.Question{
				ID:            fmt.Sprintf("b%d-q%d", b, q),
				QuestionText:  fmt.Sprintf("Block %d question %d?", b, q),
				Options:       []string{"right", "wrong-1", "wrong-2", "wrong-3"},
				CorrectAnswer: "right",
			}
		}
		blocks[b] = quiz.QuizBlock{
			Timestamp:          ts,
			TimestampFormatted: quiz.FormatTimestamp(ts),
			Questions:          questions,
		}
	}
	return blocks
}

// answerCorrectly walks the gate through the overlay for one question.
func answerCorrectly(t *testing.T, gate *playback.Gate) playback.Command {
	t.Helper()
	if gate.State() != playback.QuestionActive {
		t.Fatalf("expected QuestionActive, got %v", gate.State())
	}
	if cmd := gate.AnswerSelected("right"); cmd != playback.None {
		t.Fatalf("AnswerSelected returned %v, expected None", cmd)
	}
	if gate.State() != playback.FeedbackCorrect {
		t.Fatalf("expected FeedbackCorrect, got %v", gate.State())
	}
	return gate.FeedbackElapsed()
}

func TestGateTriggersBlocksInOrderOnce(t *testing.T) {
	gate := playback.NewGate(buildBlocks([]int{150, 300}, 1), playback.UnlockAllQuestions, 1, nil)

	if cmd := gate.Tick(100); cmd != playback.None {
		t.Errorf("tick before the first timestamp returned %v", cmd)
	}
	if gate.LastShownBlock() != -1 {
		t.Errorf("no block should have triggered yet, got index %d", gate.LastShownBlock())
	}

	// A seek past both timestamps still fires the earliest block first.
	if cmd := gate.Tick(500); cmd != playback.Pause {
		t.Fatalf("expected Pause, got %v", cmd)
	}
	if gate.LastShownBlock() != 0 {
		t.Fatalf("expected block 0, got %d", gate.LastShownBlock())
	}

	// A triggered block never fires again, even while paused.
	if cmd := gate.Tick(500); cmd != playback.None {
		t.Errorf("tick while paused returned %v", cmd)
	}

	if cmd := gate.QuestionShown(); cmd != playback.ShowQuestion {
		t.Fatalf("expected ShowQuestion, got %v", cmd)
	}
	if cmd := answerCorrectly(t, gate); cmd != playback.Resume {
		t.Fatalf("expected Resume after the only question, got %v", cmd)
	}
	if cmd := gate.Resumed(); cmd != playback.None {
		t.Errorf("Resumed returned %v", cmd)
	}
	if gate.State() != playback.Playing {
		t.Fatalf("expected Playing after resume, got %v", gate.State())
	}

	// The next tick past 300 fires block 1, and only block 1.
	if cmd := gate.Tick(500); cmd != playback.Pause {
		t.Fatalf("expected Pause for block 1, got %v", cmd)
	}
	if gate.LastShownBlock() != 1 {
		t.Errorf("expected block 1, got %d", gate.LastShownBlock())
	}
}

func TestUnlockAllQuestionsMode(t *testing.T) {
	gate := playback.NewGate(buildBlocks([]int{10}, 2), playback.UnlockAllQuestions, 1, nil)

	gate.Tick(10)
	gate.QuestionShown()

	first, ok := gate.CurrentQuestion()
	if !ok {
		t.Fatal("expected an active question")
	}

	// A wrong answer replays the same question after acknowledgment.
	gate.AnswerSelected("wrong-1")
	if gate.State() != playback.FeedbackIncorrect {
		t.Fatalf("expected FeedbackIncorrect, got %v", gate.State())
	}
	if cmd := gate.Acknowledge(); cmd != playback.ShowQuestion {
		t.Fatalf("expected ShowQuestion after ack, got %v", cmd)
	}
	replayed, _ := gate.CurrentQuestion()
	if replayed.ID != first.ID {
		t.Errorf("expected the same question to replay, got %q after %q", replayed.ID, first.ID)
	}

	// Both questions must be answered correctly before playback resumes.
	if cmd := answerCorrectly(t, gate); cmd != playback.ShowQuestion {
		t.Fatalf("expected the next question, got %v", cmd)
	}
	if cmd := answerCorrectly(t, gate); cmd != playback.Resume {
		t.Fatalf("expected Resume after the last question, got %v", cmd)
	}

	if got := len(gate.CompletedQuestionIDs()); got != 2 {
		t.Errorf("expected 2 completed questions, got %d", got)
	}
}

func TestUnlockByCountMode(t *testing.T) {
	t.Run("ResumesAtThreshold", func(t *testing.T) {
		gate := playback.NewGate(buildBlocks([]int{10}, 4), playback.UnlockByCount, 2, nil)
		gate.Tick(10)
		gate.QuestionShown()

		if cmd := answerCorrectly(t, gate); cmd != playback.ShowQuestion {
			t.Fatalf("expected the next question after one correct answer, got %v", cmd)
		}
		if cmd := answerCorrectly(t, gate); cmd != playback.Resume {
			t.Fatalf("expected Resume at the unlock threshold, got %v", cmd)
		}
		if got := len(gate.CompletedQuestionIDs()); got != 2 {
			t.Errorf("expected 2 completed questions, got %d", got)
		}
	})

	t.Run("WrongAnswersSkipForward", func(t *testing.T) {
		gate := playback.NewGate(buildBlocks([]int{10}, 3), playback.UnlockByCount, 2, nil)
		gate.Tick(10)
		gate.QuestionShown()

		first, _ := gate.CurrentQuestion()
		gate.AnswerSelected("wrong-1")
		if cmd := gate.Acknowledge(); cmd != playback.ShowQuestion {
			t.Fatalf("expected the next question after ack, got %v", cmd)
		}
		second, _ := gate.CurrentQuestion()
		if second.ID == first.ID {
			t.Error("a wrong answer must skip forward, not replay")
		}
	})

	t.Run("ExhaustedBlockResumesRegardless", func(t *testing.T) {
		gate := playback.NewGate(buildBlocks([]int{10}, 2), playback.UnlockByCount, 2, nil)
		gate.Tick(10)
		gate.QuestionShown()

		gate.AnswerSelected("wrong-1")
		if cmd := gate.Acknowledge(); cmd != playback.ShowQuestion {
			t.Fatalf("expected the second question, got %v", cmd)
		}
		gate.AnswerSelected("wrong-2")
		if cmd := gate.Acknowledge(); cmd != playback.Resume {
			t.Fatalf("expected Resume on an exhausted block, got %v", cmd)
		}
		if got := len(gate.CompletedQuestionIDs()); got != 0 {
			t.Errorf("no question was answered correctly, got %d completed", got)
		}
	})
}

func TestFeedbackAsymmetry(t *testing.T) {
	gate := playback.NewGate(buildBlocks([]int{10}, 2), playback.UnlockAllQuestions, 1, nil)
	gate.Tick(10)
	gate.QuestionShown()

	// Acknowledge has no effect on a correct answer, and FeedbackElapsed
	// has no effect on a wrong one.
	gate.AnswerSelected("right")
	if cmd := gate.Acknowledge(); cmd != playback.None {
		t.Errorf("Acknowledge in FeedbackCorrect returned %v", cmd)
	}
	if gate.State() != playback.FeedbackCorrect {
		t.Errorf("state changed to %v", gate.State())
	}
	gate.FeedbackElapsed()

	gate.AnswerSelected("wrong-1")
	if cmd := gate.FeedbackElapsed(); cmd != playback.None {
		t.Errorf("FeedbackElapsed in FeedbackIncorrect returned %v", cmd)
	}
	if gate.State() != playback.FeedbackIncorrect {
		t.Errorf("state changed to %v", gate.State())
	}
}

func TestGateSkipsAlreadyCompletedQuestions(t *testing.T) {
	blocks := buildBlocks([]int{10, 20}, 2)

	t.Run("FullyCompletedBlockDoesNotPause", func(t *testing.T) {
		gate := playback.NewGate(blocks, playback.UnlockAllQuestions, 1,
			[]string{"b0-q0", "b0-q1"})

		if cmd := gate.Tick(15); cmd != playback.None {
			t.Fatalf("a fully completed block must not pause, got %v", cmd)
		}
		if gate.LastShownBlock() != 0 {
			t.Errorf("block 0 should be marked shown, got %d", gate.LastShownBlock())
		}
		if gate.State() != playback.Playing {
			t.Errorf("expected Playing, got %v", gate.State())
		}
	})

	t.Run("PartiallyCompletedBlockShowsRemainder", func(t *testing.T) {
		gate := playback.NewGate(blocks, playback.UnlockAllQuestions, 1, []string{"b0-q0"})

		if cmd := gate.Tick(15); cmd != playback.Pause {
			t.Fatalf("expected Pause, got %v", cmd)
		}
		gate.QuestionShown()
		q, _ := gate.CurrentQuestion()
		if q.ID != "b0-q1" {
			t.Errorf("expected the unanswered question, got %q", q.ID)
		}
		if cmd := answerCorrectly(t, gate); cmd != playback.Resume {
			t.Errorf("expected Resume after the only remaining question, got %v", cmd)
		}
	})
}

func TestEventsOutsideTheirState(t *testing.T) {
	gate := playback.NewGate(buildBlocks([]int{10}, 1), playback.UnlockAllQuestions, 1, nil)

	if cmd := gate.QuestionShown(); cmd != playback.None {
		t.Errorf("QuestionShown while playing returned %v", cmd)
	}
	if cmd := gate.AnswerSelected("right"); cmd != playback.None {
		t.Errorf("AnswerSelected while playing returned %v", cmd)
	}
	if cmd := gate.Resumed(); cmd != playback.None {
		t.Errorf("Resumed while playing returned %v", cmd)
	}
	if gate.State() != playback.Playing {
		t.Errorf("stray events changed state to %v", gate.State())
	}
}
