package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokybot/orderagent/order"
)

// fakeChatModel scripts one Generate outcome and records what it was asked.
type fakeChatModel struct {
	resp        *schema.Message
	err         error
	boundTools  []*schema.ToolInfo
	gotMessages []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.gotMessages = in
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, in, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func (f *fakeChatModel) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	f.boundTools = tools
	return f, nil
}

func TestNewEinoClientBindsExtractionTool(t *testing.T) {
	fake := &fakeChatModel{}
	_, err := NewEinoClient(fake)
	require.NoError(t, err)
	require.Len(t, fake.boundTools, 1)
	assert.Equal(t, order.ToolName, fake.boundTools[0].Name)
}

func TestCompleteTextReply(t *testing.T) {
	fake := &fakeChatModel{resp: schema.AssistantMessage("What time should we arrive?", nil)}
	client, err := NewEinoClient(fake)
	require.NoError(t, err)

	history := []*schema.Message{schema.SystemMessage("sys"), schema.UserMessage("hi")}
	reply, err := client.Complete(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, ReplyText, reply.Kind)
	assert.Equal(t, "What time should we arrive?", reply.Content)
	assert.Equal(t, history, fake.gotMessages, "full history is passed through")
}

func TestCompleteExtractionReply(t *testing.T) {
	fake := &fakeChatModel{resp: &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{{
			Function: schema.FunctionCall{
				Name:      order.ToolName,
				Arguments: `{"arrival_time":"tonight"}`,
			},
		}},
	}}
	client, err := NewEinoClient(fake)
	require.NoError(t, err)

	reply, err := client.Complete(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, ReplyExtraction, reply.Kind)
	assert.Equal(t, order.ToolName, reply.ToolName)
	assert.Equal(t, `{"arrival_time":"tonight"}`, reply.ArgumentsJSON)
}

func TestCompleteModelError(t *testing.T) {
	modelErr := errors.New("boom")
	fake := &fakeChatModel{err: modelErr}
	client, err := NewEinoClient(fake)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.Error(t, err)
	assert.ErrorIs(t, err, modelErr)
}

func TestCompleteEmptyReplyIsAnError(t *testing.T) {
	fake := &fakeChatModel{resp: schema.AssistantMessage("", nil)}
	client, err := NewEinoClient(fake)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	assert.Error(t, err)
}
