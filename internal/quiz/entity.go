package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz is one persisted quiz-generation run: the source material, the
// generation parameters, the generated timeline and the owner's progress.
type Quiz struct {
	ID                          uuid.UUID                      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                      uuid.UUID                      `gorm:"type:uuid;not null;index" json:"user_id"`
	YoutubeURL                  string                         `gorm:"type:text;not null" json:"youtubeUrl"`
	YoutubeVideoID              string                         `gorm:"type:text;not null" json:"youtubeVideoId"`
	YoutubeVideoDurationSeconds int                            `gorm:"not null" json:"youtubeVideoDurationSeconds"`
	DocumentFileName            string                         `gorm:"type:text;not null" json:"documentFileName"`
	DocumentFilePath            string                         `gorm:"type:text;not null" json:"documentFilePath"`
	PageFrom                    int                            `gorm:"not null" json:"pageFrom"`
	PageTo                      int                            `gorm:"not null" json:"pageTo"`
	QuizQuestionCount           int                            `gorm:"not null" json:"quizQuestionCount"`
	QuestionsToUnlock           int                            `gorm:"not null" json:"questionsToUnlock"`
	GeneratedQuizzes            datatypes.JSONSlice[QuizBlock] `gorm:"type:jsonb;not null" json:"generatedQuizzes"`
	CompletedQuestions          datatypes.JSONSlice[string]    `gorm:"type:jsonb;not null" json:"completedQuestions"`
	CreatedAt                   time.Time                      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time                      `gorm:"autoUpdateTime" json:"updated_at"`
}

// QuizBlock is one pause-point in the video: a group of questions anchored
// to a timestamp. Blocks are stored in chronological order.
type QuizBlock struct {
	Timestamp          int        `json:"timestamp"`
	TimestampFormatted string     `json:"timestampFormatted"`
	Questions          []Question `json:"questions"`
}

// Question is an embedded question with a stable ID for progress tracking.
// CorrectAnswer is always an exact element of Options.
type Question struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}
