package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var (
	ErrChatbotNotConfigured = errors.New("chatbot is not configured")
	ErrChatbotRateLimited   = errors.New("chatbot provider rate limit reached")
	ErrChatbotUnavailable   = errors.New("chatbot provider unavailable")
)

const chatbotSystemPrompt = "You are a concise shopping assistant for an affiliate " +
	"product site. Help visitors find products and answer questions about the " +
	"catalog. Keep answers short and friendly. Do not invent prices or stock."

type ChatbotService struct {
	client *openai.Client
	logger *zap.Logger
}

// NewChatbotService returns a service backed by the OpenAI API. With an empty
// key the service is created but every Ask fails with ErrChatbotNotConfigured.
func NewChatbotService(apiKey string, logger *zap.Logger) *ChatbotService {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &ChatbotService{client: client, logger: logger}
}

func (s *ChatbotService) Ask(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", ErrChatbotNotConfigured
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openai.GPT4oMini,
		MaxTokens:   150,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatbotSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			s.logger.Warn("chatbot rate limited", zap.Error(err))
			return "", ErrChatbotRateLimited
		}
		s.logger.Error("chatbot completion failed", zap.Error(err))
		return "", ErrChatbotUnavailable
	}

	if len(resp.Choices) == 0 {
		return "", ErrChatbotUnavailable
	}
	return resp.Choices[0].Message.Content, nil
}
