package completion

import (
	"Recipe-Sharing-API/domain"
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const maxTokens = 100

type (
	CompletionService interface {
		Complete(ctx context.Context, prompt string) (string, error)
	}

	completionService struct {
		client openai.Client
		model  string
	}
)

// NewCompletionService builds a client for the chat completions API. baseURL
// may be empty to use the public endpoint.
func NewCompletionService(apiKey, model, baseURL string) CompletionService {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &completionService{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (s *completionService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
