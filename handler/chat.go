package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"console-tools/internal/console"
	"console-tools/internal/domain"
)

const bannerWidth = 41

type Responder interface {
	Match(input string) domain.Reply
	IsFarewell(text string) bool
}

// ChatSession drives one console conversation: read a line, print the
// reply, stop after a farewell.
type ChatSession struct {
	responder Responder
	in        *console.Reader
	out       io.Writer
	botName   string
	id        string
	log       *slog.Logger
}

func NewChatSession(r Responder, in io.Reader, out io.Writer, botName string) (*ChatSession, error) {
	if r == nil {
		return nil, errors.New("handler: responder must not be nil")
	}
	if in == nil || out == nil {
		return nil, errors.New("handler: input and output must not be nil")
	}
	botName = strings.TrimSpace(botName)
	if botName == "" {
		return nil, errors.New("handler: bot name must not be empty")
	}
	id := newSessionID()
	return &ChatSession{
		responder: r,
		in:        console.NewReader(in, out),
		out:       out,
		botName:   botName,
		id:        id,
		log:       slog.Default().With("session_id", id),
	}, nil
}

// ID identifies the session in log records.
func (s *ChatSession) ID() string { return s.id }

// Run loops until a farewell reply, end of input, or ctx is done.
func (s *ChatSession) Run(ctx context.Context) error {
	if err := s.writeBanner(); err != nil {
		return err
	}
	s.log.Info("chat session started")

	turns := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.in.Prompt(ctx, "You: ")
		if errors.Is(err, io.EOF) {
			s.log.Info("chat session ended", "reason", "eof", "turns", turns)
			return nil
		}
		if err != nil {
			return err
		}

		reply := s.responder.Match(line)
		turns++
		s.log.Debug("reply", "kind", reply.Kind, "trigger", reply.Trigger)
		if _, err := fmt.Fprintf(s.out, "%s: %s\n", s.botName, reply.Text); err != nil {
			return fmt.Errorf("handler: write reply: %w", err)
		}
		if s.responder.IsFarewell(reply.Text) {
			s.log.Info("chat session ended", "reason", "farewell", "turns", turns)
			return nil
		}
	}
}

func (s *ChatSession) writeBanner() error {
	rule := strings.Repeat("=", bannerWidth)
	lines := []string{
		rule,
		center(s.botName+" - AI Chatbot", bannerWidth),
		rule,
		fmt.Sprintf("Hello! I am %s. Ask me anything, or try keywords like 'weather' or 'capabilities'.", s.botName),
		"Type 'bye' or 'exit' to end the conversation.",
		"",
	}
	if _, err := io.WriteString(s.out, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("handler: write banner: %w", err)
	}
	return nil
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

var newSessionID = func() string {
	return uuid.NewString()
}
