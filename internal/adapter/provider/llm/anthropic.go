package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/storylingo-backend/internal/domain"
)

const defaultAnthropicMaxTokens = 1024

// Anthropic is a Completer backed by the Anthropic Messages API.
// It has no JSON response mode; callers rely on DecodeJSON.
type Anthropic struct {
	client anthropic.Client
	model  string
	log    *slog.Logger
}

// NewAnthropic creates an Anthropic client. An empty baseURL uses the SDK default.
func NewAnthropic(apiKey, baseURL, model string, timeout time.Duration, logger *slog.Logger) *Anthropic {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(baseURL, "/")))
	}

	return &Anthropic{
		client: anthropic.NewClient(opts...),
		model:  model,
		log:    logger.With("adapter", "anthropic"),
	}
}

// Complete sends the prompt as a single user message.
func (c *Anthropic) Complete(ctx context.Context, req Request) (string, error) {
	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	prompt := req.Prompt
	if req.JSON {
		prompt += "\n\nOutput ONLY the JSON object, no markdown, no explanations."
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "messages call failed",
			slog.String("model", c.model),
			slog.String("error", err.Error()),
		)
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", classify("anthropic", "", apiErr.StatusCode, err)
		}
		return "", classify("anthropic", "", 0, err)
	}

	if len(msg.Content) == 0 || strings.TrimSpace(msg.Content[0].Text) == "" {
		return "", fmt.Errorf("anthropic: %w: empty response", domain.ErrMalformedResponse)
	}
	return msg.Content[0].Text, nil
}
