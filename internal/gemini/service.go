package gemini

import (
	"context"

	"github.com/sirupsen/logrus"
)

const (
	// PersonaPrefix is prepended verbatim to every user query.
	PersonaPrefix = "Como assistente especializado em Fortalezas Mágicas, responda de forma helpful e mágica: "

	// NoAnswerPlaceholder replaces an answer missing from an otherwise successful reply.
	NoAnswerPlaceholder = "❌ Não foi possível obter resposta"

	MaxOutputTokens = 1000
	Temperature     = 0.7
)

type Service struct {
	client *Client
	logger *logrus.Logger
}

func NewService(client *Client, logger *logrus.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// BuildPrompt embeds the query in the persona instruction without altering it.
func BuildPrompt(query string) string {
	return PersonaPrefix + query
}

func BuildRequest(query string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []Content{{
			Parts: []Part{TextPart(BuildPrompt(query))},
		}},
		GenerationConfig: &GenerationConfig{
			MaxOutputTokens: MaxOutputTokens,
			Temperature:     Temperature,
		},
	}
}

// Generate makes exactly one upstream call for query. A reply without
// candidate text is not an error: the placeholder is returned instead.
func (s *Service) Generate(ctx context.Context, query string) (string, error) {
	response, err := s.client.GenerateContent(ctx, BuildRequest(query))
	if err != nil {
		return "", err
	}

	text, ok := response.Text()
	if !ok {
		s.logger.WithField("candidates", len(response.Candidates)).Debug("No text in Gemini response")
		return NoAnswerPlaceholder, nil
	}
	return text, nil
}
