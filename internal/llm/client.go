package llm

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/logging"
)

const defaultRetryDelay = 2 * time.Second

// Client implements Completer against an OpenAI-compatible chat API.
// Azure deployments are reached through the endpoint in the config.
type Client struct {
	api        *openai.Client
	config     Config
	retryDelay time.Duration
}

// NewClient creates a new completion client with the given configuration
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(errors.ErrTypeConfig, "completion API key is required").
			WithSuggestion("Set AZURE_OPENAI_API_KEY in the environment")
	}

	if cfg.Model == "" {
		return nil, errors.New(errors.ErrTypeConfig, "completion model is required")
	}

	var apiCfg openai.ClientConfig
	if cfg.Endpoint != "" {
		apiCfg = openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
		apiCfg.AzureModelMapperFunc = func(string) string { return cfg.Model }
	} else {
		apiCfg = openai.DefaultConfig(cfg.APIKey)
	}

	return &Client{
		api:        openai.NewClientWithConfig(apiCfg),
		config:     cfg,
		retryDelay: defaultRetryDelay,
	}, nil
}

// Complete sends the messages as one chat completion request and returns the
// trimmed response text. Transient failures are retried up to MaxRetries.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		Messages:    toChatMessages(messages),
	}

	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			logging.WithField("attempt", attempt).Warn("Retrying completion request")

			select {
			case <-ctx.Done():
				return "", errors.Wrap(ctx.Err(), errors.ErrTypeUpstream, "completion cancelled")
			case <-time.After(c.retryDelay):
			}
		}

		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", errors.New(errors.ErrTypeUpstream, "completion returned no choices")
			}

			return strings.TrimSpace(resp.Choices[0].Message.Content), nil
		}

		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return "", errors.Wrapf(
		lastErr,
		errors.ErrTypeUpstream,
		"completion failed after %d attempts",
		c.config.MaxRetries+1,
	)
}

func toChatMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	return out
}
