package quiz

// UploadMaterialDTO is the first step of the flow: the uploaded document
// plus the video it accompanies.
type UploadMaterialDTO struct {
	FileName   string
	MimeType   string
	Data       []byte
	YoutubeURL string
}

type GenerateQuizDTO struct {
	SessionID         string `json:"sessionId"`
	PageFrom          int    `json:"pageFrom"`
	PageTo            int    `json:"pageTo"`
	QuizCount         int    `json:"quizCount"`
	QuestionsToUnlock int    `json:"questionsToUnlock"`
}

type UpdateProgressDTO struct {
	CompletedQuestionIDs []string `json:"completedQuestionIds"`
}
