package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Tomasz2002/AI-project/internal/config"
	"google.golang.org/genai"
)

var (
	ErrGenerationFailed = errors.New("all candidate models failed to generate questions")
	ErrEmptyResponse    = errors.New("empty response from model")
)

// candidateModels are tried in order; the first response that parses as the
// expected JSON shape wins. Each candidate is tried at most once.
var candidateModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]Question, error)
}

type geminiProvider struct {
	client   *genai.Client
	models   []string
	generate func(ctx context.Context, model, prompt string) (string, error)
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	p := &geminiProvider{client: client, models: candidateModels}
	p.generate = p.generateContent
	return p, nil
}

func (p *geminiProvider) generateContent(ctx context.Context, model, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}

// unavailableProvider stands in when the Gemini client could not be built
// (e.g. missing credentials). Every prompt fails with the construction
// error, so callers degrade to their fallback instead of panicking on a
// nil provider.
type unavailableProvider struct {
	err error
}

func (p unavailableProvider) SendPrompt(ctx context.Context, system, user string) ([]Question, error) {
	return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, p.err)
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]Question, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	for _, model := range p.models {
		raw, err := p.generate(ctx, model, prompt)
		if err != nil {
			log.WithError(err).Warnf("Model %s failed to generate content", model)
			continue
		}

		questions, err := ParseQuestions(raw)
		if err != nil {
			log.WithError(err).Warnf("Model %s returned an unusable response", model)
			continue
		}

		log.Infof("Generated %d questions with model %s", len(questions), model)
		return questions, nil
	}

	return nil, ErrGenerationFailed
}

// ParseQuestions decodes a model response into questions, stripping markdown
// code fences first and enforcing the question invariants.
func ParseQuestions(raw string) ([]Question, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, ErrEmptyResponse
	}

	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	var questions []Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("failed to decode question JSON: %w", err)
	}
	if len(questions) == 0 {
		return nil, errors.New("model returned no questions")
	}

	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	return questions, nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) == 0 {
		return errors.New("no options")
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return errors.New("correct answer is not one of the options")
}
