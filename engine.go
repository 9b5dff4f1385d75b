// Package orderagent drives a multi-turn conversation that collects the
// facts of a hookah catering order through an LLM with tool-call
// extraction, then walks the user through a confirm/edit loop and forwards
// confirmed orders to an operator channel.
package orderagent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/smokybot/orderagent/completion"
	"github.com/smokybot/orderagent/locale"
	"github.com/smokybot/orderagent/order"
	"github.com/smokybot/orderagent/session"
	"github.com/smokybot/orderagent/transport"
)

// Callback payloads carried by inline buttons.
const (
	langCallbackPrefix = "lang_"
	CallbackConfirm    = "confirm_order"
	CallbackEdit       = "edit_order"
)

// editNoteTurn is the assistant turn injected into the history when the
// user asks to change a pending order. It addresses the model; the system
// prompt keeps the actual reply in the dialogue language.
const editNoteTurn = "The user wants to make changes to the order. Ask what exactly should be changed."

// Config carries the engine's fixed wiring.
type Config struct {
	// OperatorChatID is the destination for confirmed order summaries.
	OperatorChatID int64
	// CompletionTimeout bounds each completion call. Zero disables the
	// engine-side deadline.
	CompletionTimeout time.Duration
}

// Engine is the per-user conversation state machine.
//
// Events for different users may be handled concurrently, but the engine
// assumes the transport serializes delivery per user: no two inbound events
// for the same user are processed at once. Session state is owned
// exclusively by its conversation.
type Engine struct {
	sessions          session.Store
	client            completion.Client
	messenger         transport.Messenger
	operatorChatID    int64
	completionTimeout time.Duration
}

func NewEngine(sessions session.Store, client completion.Client, messenger transport.Messenger, cfg Config) (*Engine, error) {
	if sessions == nil || client == nil || messenger == nil {
		return nil, errors.New("sessions, client and messenger are all required")
	}
	if cfg.OperatorChatID == 0 {
		return nil, errors.New("operator chat ID is required")
	}
	return &Engine{
		sessions:          sessions,
		client:            client,
		messenger:         messenger,
		operatorChatID:    cfg.OperatorChatID,
		completionTimeout: cfg.CompletionTimeout,
	}, nil
}

// HandleStart begins a fresh conversation, discarding any previous session
// for the user, and presents the language choices.
func (e *Engine) HandleStart(ctx context.Context, user transport.User) error {
	if err := e.sessions.Remove(ctx, user.ID); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	if err := e.sessions.Save(ctx, user.ID, session.New()); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	buttons := make([]transport.Button, 0, len(locale.Supported()))
	for _, lang := range locale.Supported() {
		buttons = append(buttons, transport.Button{
			Label: locale.ButtonLabel(lang),
			Data:  langCallbackPrefix + string(lang),
		})
	}
	_, err := e.messenger.Send(ctx, user.ID, locale.Message(locale.Default, locale.KeyLanguagePrompt), buttons...)
	if err != nil {
		return fmt.Errorf("send language prompt: %w", err)
	}
	slog.Debug("session started", "user", user.ID)
	return nil
}

// HandleCallback routes a button press. ref is the handle of the message
// that carried the button. Presses that no longer match the session state
// are ignored.
func (e *Engine) HandleCallback(ctx context.Context, user transport.User, data string, ref transport.MessageRef) error {
	sess, ok, err := e.sessions.Load(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok {
		slog.Debug("callback for disposed session ignored", "user", user.ID, "data", data)
		return nil
	}

	switch {
	case strings.HasPrefix(data, langCallbackPrefix) && sess.State == session.StateAwaitingLanguage:
		return e.selectLanguage(ctx, user, sess, strings.TrimPrefix(data, langCallbackPrefix), ref)
	case data == CallbackConfirm && sess.State == session.StateConfirmation:
		return e.confirmOrder(ctx, user, sess, ref)
	case data == CallbackEdit && sess.State == session.StateConfirmation:
		return e.editOrder(ctx, user, sess, ref)
	default:
		slog.Debug("callback ignored", "user", user.ID, "data", data, "state", sess.State)
		return nil
	}
}

// selectLanguage fixes the dialogue language, seeds the history with the
// language-specific system turn and opens the chat loop. Unsupported codes
// fall back to the default language.
func (e *Engine) selectLanguage(ctx context.Context, user transport.User, sess *session.Session, code string, promptRef transport.MessageRef) error {
	lang := locale.Parse(code)

	// The selection prompt is removed from the visible transcript; a
	// failure here is cosmetic.
	if err := e.messenger.Delete(ctx, promptRef); err != nil {
		slog.Debug("delete language prompt failed", "user", user.ID, "error", err)
	}

	sess.Language = lang
	sess.Append(schema.SystemMessage(locale.SystemPrompt(lang)))
	sess.State = session.StateActive
	if err := e.sessions.Save(ctx, user.ID, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if _, err := e.messenger.Send(ctx, user.ID, locale.Message(lang, locale.KeyWelcome)); err != nil {
		return fmt.Errorf("send welcome: %w", err)
	}
	slog.Debug("language selected", "user", user.ID, "language", lang)
	return nil
}

// HandleMessage processes one inbound text message. A message without a
// live chat loop restarts the conversation from the language choice.
func (e *Engine) HandleMessage(ctx context.Context, user transport.User, text string) error {
	sess, ok, err := e.sessions.Load(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok || sess.State == session.StateAwaitingLanguage {
		return e.HandleStart(ctx, user)
	}
	if sess.State == session.StateConfirmation {
		// The pending order must be confirmed or edited via its buttons.
		slog.Debug("message during confirmation ignored", "user", user.ID)
		return nil
	}

	lang := sess.Language
	sess.Append(schema.UserMessage(text + " " + locale.Reminder(lang)))

	thinkingRef, err := e.messenger.Send(ctx, user.ID, locale.Message(lang, locale.KeyThinking))
	if err != nil {
		sess.RollbackLast()
		if saveErr := e.sessions.Save(ctx, user.ID, sess); saveErr != nil {
			return fmt.Errorf("rollback after send failure: %w", saveErr)
		}
		return fmt.Errorf("send working indicator: %w", err)
	}

	cctx := ctx
	if e.completionTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, e.completionTimeout)
		defer cancel()
	}
	reply, err := e.client.Complete(cctx, sess.History)
	if err != nil {
		return e.recoverTurn(ctx, user, sess, thinkingRef, err)
	}

	switch reply.Kind {
	case completion.ReplyExtraction:
		return e.handleExtraction(ctx, user, sess, reply, thinkingRef)
	case completion.ReplyText:
		sess.Append(schema.AssistantMessage(reply.Content, nil))
		if err := e.sessions.Save(ctx, user.ID, sess); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		if err := e.messenger.Edit(ctx, thinkingRef, reply.Content); err != nil {
			return fmt.Errorf("deliver reply: %w", err)
		}
		return nil
	default:
		return e.recoverTurn(ctx, user, sess, thinkingRef, fmt.Errorf("unexpected reply kind %q", reply.Kind))
	}
}

// handleExtraction decodes the extraction request into a pending order and
// enters the confirmation flow. A malformed payload is handled exactly like
// an adapter failure: no partial order is ever stored.
func (e *Engine) handleExtraction(ctx context.Context, user transport.User, sess *session.Session, reply *completion.Reply, thinkingRef transport.MessageRef) error {
	if reply.ToolName != order.ToolName {
		return e.recoverTurn(ctx, user, sess, thinkingRef, fmt.Errorf("unknown extraction tool %q", reply.ToolName))
	}
	rec, err := order.Decode(reply.ArgumentsJSON)
	if err != nil {
		return e.recoverTurn(ctx, user, sess, thinkingRef, err)
	}

	sess.PendingOrder = rec
	sess.State = session.StateConfirmation
	if err := e.sessions.Save(ctx, user.ID, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	lang := sess.Language
	summary := order.UserSummary(lang, rec, user.Reference())
	_, err = e.messenger.Send(ctx, user.ID, summary,
		transport.Button{Label: locale.Message(lang, locale.KeyButtonConfirm), Data: CallbackConfirm},
		transport.Button{Label: locale.Message(lang, locale.KeyButtonEdit), Data: CallbackEdit},
	)
	if err != nil {
		return fmt.Errorf("send summary: %w", err)
	}
	if err := e.messenger.Delete(ctx, thinkingRef); err != nil {
		slog.Debug("delete working indicator failed", "user", user.ID, "error", err)
	}
	slog.Info("order extracted", "user", user.ID)
	return nil
}

// confirmOrder forwards the pending order to the operator channel and
// disposes of the session. If the forward fails the session stays in
// confirmation so the user can press confirm again; the order is never
// silently lost.
func (e *Engine) confirmOrder(ctx context.Context, user transport.User, sess *session.Session, summaryRef transport.MessageRef) error {
	rec := sess.PendingOrder
	if rec == nil {
		return errors.New("confirmation state without pending order")
	}

	reference := uuid.NewString()[:8]
	forward := order.OperatorSummary(rec, user.Reference(), reference)
	if _, err := e.messenger.Send(ctx, e.operatorChatID, forward); err != nil {
		slog.Error("operator forward failed", "user", user.ID, "reference", reference, "error", err)
		if _, sendErr := e.messenger.Send(ctx, user.ID, locale.Message(sess.Language, locale.KeyGenericError)); sendErr != nil {
			return fmt.Errorf("report forward failure: %w", sendErr)
		}
		return nil
	}

	if err := e.messenger.Edit(ctx, summaryRef, locale.Message(sess.Language, locale.KeyThanks)); err != nil {
		slog.Debug("edit summary to thanks failed", "user", user.ID, "error", err)
	}
	if err := e.sessions.Remove(ctx, user.ID); err != nil {
		return fmt.Errorf("dispose session: %w", err)
	}
	slog.Info("order confirmed", "user", user.ID, "reference", reference)
	return nil
}

// editOrder drops the pending order and re-enters the chat loop with an
// injected clarification turn; a fresh extraction must happen before the
// order can be confirmed.
func (e *Engine) editOrder(ctx context.Context, user transport.User, sess *session.Session, summaryRef transport.MessageRef) error {
	lang := sess.Language

	// Re-rendering the summary without buttons removes the confirm/edit
	// choices from the message.
	summary := order.UserSummary(lang, sess.PendingOrder, user.Reference())
	if err := e.messenger.Edit(ctx, summaryRef, summary); err != nil {
		slog.Debug("strip summary buttons failed", "user", user.ID, "error", err)
	}

	sess.PendingOrder = nil
	sess.State = session.StateActive
	sess.Append(schema.AssistantMessage(editNoteTurn, nil))
	if err := e.sessions.Save(ctx, user.ID, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if _, err := e.messenger.Send(ctx, user.ID, locale.Message(lang, locale.KeyEditPrompt)); err != nil {
		return fmt.Errorf("send edit prompt: %w", err)
	}
	slog.Debug("order edit requested", "user", user.ID)
	return nil
}

// recoverTurn implements the failure path of a chat turn: the just-appended
// user turn is rolled back so the history never ends with an unanswered
// user turn, the working indicator becomes a localized error and the
// session stays active. Timeouts are distinguished from other failures only
// for logging and message choice.
func (e *Engine) recoverTurn(ctx context.Context, user transport.User, sess *session.Session, thinkingRef transport.MessageRef, cause error) error {
	key := locale.KeyGenericError
	if isTimeout(cause) {
		key = locale.KeyTimeoutError
		slog.Warn("completion call timed out", "user", user.ID)
	} else {
		slog.Error("completion call failed", "user", user.ID, "error", cause)
	}

	sess.RollbackLast()
	if err := e.sessions.Save(ctx, user.ID, sess); err != nil {
		return fmt.Errorf("rollback history: %w", err)
	}
	if err := e.messenger.Edit(ctx, thinkingRef, locale.Message(sess.Language, key)); err != nil {
		return fmt.Errorf("report turn failure: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return true
	}
	return errors.Is(err, os.ErrDeadlineExceeded)
}
