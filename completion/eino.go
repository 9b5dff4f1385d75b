package completion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/smokybot/orderagent/order"
)

// EinoClient adapts any eino tool-calling chat model. The extraction tool
// is bound once at construction; tool choice stays with the model, so each
// turn yields either a text reply or an extraction request.
type EinoClient struct {
	chatModel model.ToolCallingChatModel
}

func NewEinoClient(chatModel model.ToolCallingChatModel) (*EinoClient, error) {
	info, err := order.ToolInfo()
	if err != nil {
		return nil, err
	}
	modelWithTools, err := chatModel.WithTools([]*schema.ToolInfo{info})
	if err != nil {
		return nil, fmt.Errorf("bind extraction tool: %w", err)
	}
	return &EinoClient{chatModel: modelWithTools}, nil
}

func (c *EinoClient) Complete(ctx context.Context, history []*schema.Message) (*Reply, error) {
	resp, err := c.chatModel.Generate(ctx, history)
	if err != nil {
		return nil, fmt.Errorf("completion call failed: %w", err)
	}
	if len(resp.ToolCalls) > 0 {
		call := resp.ToolCalls[0]
		slog.Debug("completion returned tool call", "tool", call.Function.Name)
		return &Reply{
			Kind:          ReplyExtraction,
			ToolName:      call.Function.Name,
			ArgumentsJSON: call.Function.Arguments,
		}, nil
	}
	if resp.Content == "" {
		return nil, fmt.Errorf("completion returned empty response")
	}
	return &Reply{Kind: ReplyText, Content: resp.Content}, nil
}

var _ Client = (*EinoClient)(nil)
