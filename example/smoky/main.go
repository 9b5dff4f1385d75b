// Command smoky runs the order-collection engine against a real
// OpenAI-compatible endpoint, with the console standing in for the chat
// transport. Type /start to begin, then answer the assistant; button
// presses are simulated by typing the button's payload (e.g. lang_en,
// confirm_order).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"

	orderagent "github.com/smokybot/orderagent"
	"github.com/smokybot/orderagent/completion"
	"github.com/smokybot/orderagent/session"
	"github.com/smokybot/orderagent/transport"
)

const consoleUserID int64 = 1

func main() {
	conf := flag.String("config", "config.json", "path to config file")
	flag.Parse()
	config, err := loadConfig(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := startApp(context.Background(), config); err != nil {
		log.Fatalf("start app: %v", err)
	}
}

func startApp(ctx context.Context, config *Config) error {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  config.APIKey,
		Model:   config.Model,
		BaseURL: config.BaseURL,
	})
	if err != nil {
		return err
	}
	client, err := completion.NewEinoClient(cm)
	if err != nil {
		return err
	}

	messenger := newConsoleMessenger()
	operatorChatID := config.OperatorChatID
	if operatorChatID == 0 {
		operatorChatID = -1
	}
	engine, err := orderagent.NewEngine(session.NewMemoryStore(), client, messenger, orderagent.Config{
		OperatorChatID:    operatorChatID,
		CompletionTimeout: 60 * time.Second,
	})
	if err != nil {
		return err
	}

	user := transport.User{ID: consoleUserID, Username: "console"}
	fmt.Println("Smoky order assistant. Type /start to begin, Ctrl-D to quit.")
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, rErr := reader.ReadString('\n')
		if rErr != nil {
			fmt.Println("bye")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == "/start":
			err = engine.HandleStart(ctx, user)
		case messenger.isButton(line):
			ref, _ := messenger.buttonRef(line)
			err = engine.HandleCallback(ctx, user, line, ref)
		default:
			err = engine.HandleMessage(ctx, user, line)
		}
		if err != nil {
			slog.Error("handle input failed", "error", err)
		}
	}
}

// consoleMessenger prints outbound messages to stdout and tracks enough
// state to resolve typed button payloads back to their message.
type consoleMessenger struct {
	mu      sync.Mutex
	nextID  int64
	buttons map[string]transport.MessageRef
}

func newConsoleMessenger() *consoleMessenger {
	return &consoleMessenger{buttons: map[string]transport.MessageRef{}}
}

func (c *consoleMessenger) Send(ctx context.Context, chatID int64, text string, buttons ...transport.Button) (transport.MessageRef, error) {
	c.mu.Lock()
	c.nextID++
	ref := transport.MessageRef{ChatID: chatID, MessageID: c.nextID}
	for _, b := range buttons {
		c.buttons[b.Data] = ref
	}
	c.mu.Unlock()

	if chatID != consoleUserID {
		fmt.Printf("\n[operator channel %d]\n%s\n\n", chatID, text)
		return ref, nil
	}
	fmt.Printf("\nassistant: %s\n", text)
	for _, b := range buttons {
		fmt.Printf("  [%s] -> type %q\n", b.Label, b.Data)
	}
	return ref, nil
}

func (c *consoleMessenger) Edit(ctx context.Context, ref transport.MessageRef, text string) error {
	if ref.ChatID != consoleUserID {
		return nil
	}
	fmt.Printf("\nassistant (edited): %s\n", text)
	return nil
}

func (c *consoleMessenger) Delete(ctx context.Context, ref transport.MessageRef) error {
	return nil
}

func (c *consoleMessenger) isButton(data string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.buttons[data]
	return ok
}

func (c *consoleMessenger) buttonRef(data string) (transport.MessageRef, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ref, ok := c.buttons[data]
	return ref, ok
}
