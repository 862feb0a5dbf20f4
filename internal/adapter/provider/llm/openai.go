package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

// OpenRouterBaseURL is the OpenAI-compatible endpoint of OpenRouter.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAI is a Completer backed by the OpenAI chat completions API or any
// OpenAI-compatible endpoint (OpenRouter, local gateways).
type OpenAI struct {
	client *openai.Client
	model  string
	name   string
	log    *slog.Logger
}

// NewOpenAI creates an OpenAI-compatible client. An empty baseURL uses the
// library default (api.openai.com).
func NewOpenAI(apiKey, baseURL, model string, timeout time.Duration, logger *slog.Logger) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	name := "openai"
	if strings.Contains(config.BaseURL, "openrouter.ai") {
		name = "openrouter"
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  model,
		name:   name,
		log:    logger.With("adapter", name),
	}
}

// Complete sends a system + user message pair and returns the first choice.
func (c *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		c.log.ErrorContext(ctx, "chat completion failed",
			slog.String("model", c.model),
			slog.String("error", err.Error()),
		)
		return "", c.classify(err)
	}

	c.log.DebugContext(ctx, "chat completion",
		slog.String("model", c.model),
		slog.Int("total_tokens", resp.Usage.TotalTokens),
		slog.Duration("duration", time.Since(start)),
	)

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%s: %w: no content in response", c.name, domain.ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAI) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		errType := apiErr.Type
		if code, ok := apiErr.Code.(string); ok && code != "" {
			errType = code
		}
		return classify(c.name, errType, apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classify(c.name, "", reqErr.HTTPStatusCode, err)
	}

	return classify(c.name, "", 0, err)
}
