package aiquiz

import (
	"context"

	"github.com/Tomasz2002/AI-project/internal/config"
)

type AIQuizContainer struct {
	Service Service
}

func NewAIQuizContainer() *AIQuizContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).
			Error("Gemini client unavailable, question generation will fall back to placeholders")
		provider = unavailableProvider{err: err}
	}
	service := NewService(provider)

	return &AIQuizContainer{
		Service: service,
	}
}
