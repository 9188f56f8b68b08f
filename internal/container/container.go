package container

import (
	"context"
	"log"
	"os"

	"github.com/Tomasz2002/AI-project/internal/aiquiz"
	"github.com/Tomasz2002/AI-project/internal/auth"
	"github.com/Tomasz2002/AI-project/internal/config"
	"github.com/Tomasz2002/AI-project/internal/quiz"
	"github.com/Tomasz2002/AI-project/internal/user"
	"github.com/Tomasz2002/AI-project/internal/youtube"
)

type Container struct {
	UserContainer   *user.UserContainer
	AIQuizContainer *aiquiz.AIQuizContainer
	QuizContainer   *quiz.QuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&user.User{}, &quiz.Quiz{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads/documents"
	}

	userContainer := user.NewUserContainer(config.DB)
	aiQuizContainer := aiquiz.NewAIQuizContainer()
	quizContainer := quiz.NewQuizContainer(
		config.DB,
		quiz.NewLocalFileStore(uploadDir),
		youtube.NewClient(os.Getenv("YOUTUBE_API_KEY")),
		aiQuizContainer.Service,
	)

	return &Container{
		UserContainer:   userContainer,
		AIQuizContainer: aiQuizContainer,
		QuizContainer:   quizContainer,
	}
}
