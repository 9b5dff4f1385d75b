// Package completion wraps the language-model completion call behind a
// small adapter: the full dialogue history plus the single declared
// extraction tool go in, either free text or an extraction request comes
// out.
package completion

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

type ReplyKind string

const (
	ReplyText       ReplyKind = "text"
	ReplyExtraction ReplyKind = "extraction"
)

// Reply is the adapter's result for one turn. For ReplyText, Content holds
// the assistant's message. For ReplyExtraction, ToolName and ArgumentsJSON
// carry the model's structured extraction request undecoded; validating the
// payload is the caller's concern.
type Reply struct {
	Kind          ReplyKind
	Content       string
	ToolName      string
	ArgumentsJSON string
}

// Client is the completion-provider seam. Implementations must honor
// context cancellation; the engine applies its timeout through ctx.
type Client interface {
	Complete(ctx context.Context, history []*schema.Message) (*Reply, error)
}
