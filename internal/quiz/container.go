package quiz

import (
	"github.com/Tomasz2002/AI-project/internal/aiquiz"
	"github.com/Tomasz2002/AI-project/internal/youtube"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler  *Handler
	Service  QuizService
	Sessions *MemorySessionStore
}

func NewQuizContainer(db *gorm.DB, files FileStore, metadata youtube.MetadataClient, generator aiquiz.Service) *QuizContainer {
	sessions := NewMemorySessionStore(DefaultSessionTTL)
	repo := NewRepository(db)
	service := NewService(repo, sessions, files, metadata, generator)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler:  handler,
		Service:  service,
		Sessions: sessions,
	}
}
