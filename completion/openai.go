package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/sashabaranov/go-openai"

	"github.com/smokybot/orderagent/order"
)

// OpenAIConfig holds the OpenAI-compatible provider configuration.
type OpenAIConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// DefaultOpenAIConfig returns the default configuration. MaxRetries is 1:
// a failed turn is surfaced to the user, who simply resends the message.
func DefaultOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		BaseURL:    "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		MaxRetries: 1,
		Timeout:    30 * time.Second,
	}
}

// extractionParameters is the declared JSON schema of the extraction tool,
// mirrored from order.Record.
var extractionParameters = json.RawMessage(`{
	"type": "object",
	"properties": {
		"arrival_time": {"type": "string", "description": "Date and time of arrival, e.g. 'tomorrow at 20:00'."},
		"duration_hours": {"type": "number", "description": "Duration of the event in hours, e.g. 4."},
		"hookah_masters_count": {"type": "integer", "description": "Number of hookah masters needed."},
		"hookahs_count": {"type": "integer", "description": "Number of hookahs needed."},
		"location": {"type": "string", "description": "Full address of the event."},
		"phone_number": {"type": "string", "description": "Contact phone number of the user."}
	},
	"required": ["arrival_time", "duration_hours", "hookah_masters_count", "hookahs_count", "location", "phone_number"]
}`)

// OpenAIClient talks to an OpenAI-compatible chat completion endpoint
// directly, without going through eino.
type OpenAIClient struct {
	client *openai.Client
	config *OpenAIConfig
}

func NewOpenAIClient(cfg *OpenAIConfig) (*OpenAIClient, error) {
	if cfg == nil {
		cfg = DefaultOpenAIConfig()
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, history []*schema.Message) (*Reply, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, msg := range history {
		if msg == nil {
			continue
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    c.config.Model,
		Messages: messages,
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        order.ToolName,
				Description: "Creates a hookah catering order after all required information has been collected from the user.",
				Parameters:  extractionParameters,
			},
		}},
	}

	var choice openai.ChatCompletionChoice
	err := c.doWithRetry(ctx, func() error {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("empty chat response")
		}
		choice = resp.Choices[0]
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("completion call failed: %w", err)
	}

	if len(choice.Message.ToolCalls) > 0 {
		call := choice.Message.ToolCalls[0]
		return &Reply{
			Kind:          ReplyExtraction,
			ToolName:      call.Function.Name,
			ArgumentsJSON: call.Function.Arguments,
		}, nil
	}
	if choice.Message.Content == "" {
		return nil, fmt.Errorf("completion returned empty response")
	}
	return &Reply{Kind: ReplyText, Content: choice.Message.Content}, nil
}

// doWithRetry executes fn with exponential backoff up to MaxRetries
// attempts in total.
func (c *OpenAIClient) doWithRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			if attempt < c.config.MaxRetries-1 {
				waitTime := time.Duration(math.Pow(2, float64(attempt))) * time.Second
				slog.Debug("completion request failed, retrying",
					"attempt", attempt+1,
					"wait_time", waitTime,
					"error", err)
				select {
				case <-time.After(waitTime):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
	return lastErr
}

var _ Client = (*OpenAIClient)(nil)
