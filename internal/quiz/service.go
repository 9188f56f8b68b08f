package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomasz2002/AI-project/internal/aiquiz"
	"github.com/Tomasz2002/AI-project/internal/config"
	"github.com/Tomasz2002/AI-project/internal/pdftext"
	"github.com/Tomasz2002/AI-project/internal/youtube"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrMissingFile     = errors.New("file is required")
	ErrUnsupportedFile = errors.New("only PDF files are supported")
	ErrSessionExpired  = errors.New("upload session expired")
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrForbidden       = errors.New("quiz does not belong to the user")
	ErrInvalidID       = errors.New("invalid id format")
	ErrInvalidCounts   = errors.New("question counts must be positive")
	ErrInvalidVideoURL = errors.New("could not extract a video id from the url")
	ErrExternalAPI     = errors.New("external api error")
)

type QuizService interface {
	BeginUpload(ctx context.Context, dto UploadMaterialDTO) (string, error)
	Generate(ctx context.Context, dto GenerateQuizDTO, userID uuid.UUID) (*Quiz, error)
	FindByID(ctx context.Context, id string) (*Quiz, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*Quiz, error)
	UpdateProgress(ctx context.Context, id string, completedQuestionIDs []string) (*Quiz, error)
	DeleteQuiz(ctx context.Context, id string, userID uuid.UUID) error
}

type quizService struct {
	repo      QuizRepository
	sessions  SessionStore
	files     FileStore
	metadata  youtube.MetadataClient
	generator aiquiz.Service
}

func NewService(repo QuizRepository, sessions SessionStore, files FileStore, metadata youtube.MetadataClient, generator aiquiz.Service) QuizService {
	return &quizService{
		repo:      repo,
		sessions:  sessions,
		files:     files,
		metadata:  metadata,
		generator: generator,
	}
}

func (s *quizService) BeginUpload(ctx context.Context, dto UploadMaterialDTO) (string, error) {
	log := config.WithContext(ctx)

	if len(dto.Data) == 0 {
		return "", ErrMissingFile
	}

	sessionID := uuid.New().String()
	s.sessions.Put(sessionID, UploadSession{
		FileName:   dto.FileName,
		MimeType:   dto.MimeType,
		YoutubeURL: dto.YoutubeURL,
		Data:       dto.Data,
	})

	log.Infof("Upload session created: %s (%s, %d bytes)", sessionID, dto.FileName, len(dto.Data))
	return sessionID, nil
}

// Generate runs the whole pipeline: page-range text extraction, durable
// file write, video duration lookup, AI question generation (with the
// placeholder fallback) and timeline distribution, then persists the quiz
// and consumes the upload session. A failure before persistence leaves the
// session in place so the client can retry; the store's TTL bounds the leak.
func (s *quizService) Generate(ctx context.Context, dto GenerateQuizDTO, userID uuid.UUID) (*Quiz, error) {
	log := config.WithContext(ctx)

	if dto.QuizCount < 1 || dto.QuestionsToUnlock < 1 {
		return nil, ErrInvalidCounts
	}

	session, ok := s.sessions.Get(dto.SessionID)
	if !ok {
		log.Warnf("Upload session not found: %s", dto.SessionID)
		return nil, ErrSessionExpired
	}

	if session.MimeType != "application/pdf" {
		return nil, ErrUnsupportedFile
	}

	extractedText, err := pdftext.ExtractPages(session.Data, dto.PageFrom, dto.PageTo)
	if err != nil {
		log.WithError(err).Warn("Text extraction failed")
		return nil, err
	}

	videoID, ok := youtube.ExtractVideoID(session.YoutubeURL)
	if !ok {
		return nil, ErrInvalidVideoURL
	}

	duration, err := s.metadata.VideoDurationSeconds(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Video duration lookup failed")
		return nil, fmt.Errorf("%w: %v", ErrExternalAPI, err)
	}

	// Written only after every fallible lookup: a retried session must not
	// leave copies of the document behind.
	storedName := uuid.New().String() + "-" + session.FileName
	storedPath, err := s.files.Save(storedName, session.Data)
	if err != nil {
		log.WithError(err).Error("Failed to store uploaded document")
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	questions, err := s.generator.GenerateQuestions(ctx, aiquiz.QuestionRequest{
		SourceText: extractedText,
		Count:      dto.QuizCount,
	})
	if err != nil {
		log.WithError(err).Error("AI generation failed, substituting placeholder questions")
		questions = aiquiz.PlaceholderQuestions(dto.QuizCount)
	}

	quiz := &Quiz{
		ID:                          uuid.New(),
		UserID:                      userID,
		YoutubeURL:                  session.YoutubeURL,
		YoutubeVideoID:              videoID,
		YoutubeVideoDurationSeconds: duration,
		DocumentFileName:            session.FileName,
		DocumentFilePath:            storedPath,
		PageFrom:                    dto.PageFrom,
		PageTo:                      dto.PageTo,
		QuizQuestionCount:           dto.QuizCount,
		QuestionsToUnlock:           dto.QuestionsToUnlock,
		GeneratedQuizzes:            BuildTimeline(questions, duration),
		CompletedQuestions:          datatypes.JSONSlice[string]{},
	}

	if err := s.repo.Create(quiz); err != nil {
		log.WithError(err).Error("Failed to persist quiz")
		if rmErr := s.files.Delete(storedPath); rmErr != nil {
			log.WithError(rmErr).Warnf("Failed to clean up stored document %s", storedPath)
		}
		return nil, err
	}

	s.sessions.Delete(dto.SessionID)

	log.Infof("Quiz created: %s (%d blocks, video %s)", quiz.ID.String(), len(quiz.GeneratedQuizzes), videoID)
	return quiz, nil
}

func (s *quizService) FindByID(ctx context.Context, id string) (*Quiz, error) {
	log := config.WithContext(ctx)

	quizID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	quiz, err := s.repo.GetByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

func (s *quizService) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	quizzes, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list user quizzes")
		return nil, err
	}
	return quizzes, nil
}

// UpdateProgress unions the given question IDs into the completed set.
// Re-submitting an already-completed ID has no effect.
func (s *quizService) UpdateProgress(ctx context.Context, id string, completedQuestionIDs []string) (*Quiz, error) {
	log := config.WithContext(ctx)

	quiz, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(quiz.CompletedQuestions))
	for _, qid := range quiz.CompletedQuestions {
		seen[qid] = struct{}{}
	}
	for _, qid := range completedQuestionIDs {
		if _, ok := seen[qid]; ok {
			continue
		}
		seen[qid] = struct{}{}
		quiz.CompletedQuestions = append(quiz.CompletedQuestions, qid)
	}

	if err := s.repo.Save(quiz); err != nil {
		log.WithError(err).Error("Failed to save quiz progress")
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, id string, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	quiz, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if quiz.UserID != userID {
		log.Warnf("User %s attempted to delete quiz %s owned by %s", userID, quiz.ID, quiz.UserID)
		return ErrForbidden
	}

	// Best effort: a missing file must not block record deletion.
	if err := s.files.Delete(quiz.DocumentFilePath); err != nil {
		log.WithError(err).Warnf("Failed to delete stored document %s", quiz.DocumentFilePath)
	}

	if err := s.repo.Delete(quiz.ID); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.Infof("Quiz deleted: %s", quiz.ID.String())
	return nil
}
