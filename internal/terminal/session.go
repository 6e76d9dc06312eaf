package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"art-historian/internal/locale"
	"art-historian/internal/model"
)

// Session is one interactive conversation with the server.
type Session struct {
	client         *Client
	display        *Display
	in             io.Reader
	lang           model.Language
	conversationID string
}

func NewSession(client *Client, display *Display, in io.Reader, lang model.Language) *Session {
	return &Session{
		client:  client,
		display: display,
		in:      in,
		lang:    lang,
	}
}

// ConversationID is the id assigned by the server on the first reply.
func (s *Session) ConversationID() string {
	return s.conversationID
}

func (s *Session) Language() model.Language {
	return s.lang
}

// Run reads lines until EOF, /exit or ctx cancellation.
func (s *Session) Run(ctx context.Context) error {
	s.display.PrintWelcome(locale.For(s.lang).Welcome)

	scanner := bufio.NewScanner(s.in)
	for {
		s.display.PrintPrompt()
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := s.handle(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			s.display.PrintError(err)
		}
	}
}

var errExit = errors.New("exit")

func (s *Session) handle(ctx context.Context, line string) error {
	if !strings.HasPrefix(line, "/") {
		return s.chat(ctx, line)
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/exit", "/quit":
		return errExit
	case "/lang":
		return s.setLanguage(arg)
	case "/about":
		s.display.PrintInfo(locale.For(s.lang).CreatorResponse)
	case "/artwork":
		a, err := s.client.DailyArtwork(ctx, s.lang.String())
		if err != nil {
			return err
		}
		s.display.PrintArtwork(a)
	case "/feedback":
		return s.feedback(ctx, arg)
	case "/reset":
		if s.conversationID != "" {
			if err := s.client.Reset(ctx, s.conversationID); err != nil {
				return err
			}
		}
		s.conversationID = ""
		s.display.PrintInfo("Conversation cleared.")
	default:
		return fmt.Errorf("unknown command %s", cmd)
	}
	return nil
}

func (s *Session) chat(ctx context.Context, msg string) error {
	reply, err := s.client.Chat(ctx, ChatRequest{
		ConversationID: s.conversationID,
		Message:        msg,
		Language:       s.lang.String(),
	})
	if err != nil {
		return err
	}

	s.conversationID = reply.ConversationID
	s.display.PrintReply(reply.Response)
	return nil
}

func (s *Session) setLanguage(code string) error {
	lang := model.Language(strings.ToLower(code))
	if !lang.IsSupported() {
		return fmt.Errorf("unsupported language %q", code)
	}
	s.lang = lang
	s.display.PrintInfo(locale.For(lang).Welcome)
	return nil
}

// feedback accepts "yes"/"no" optionally followed by a comment.
func (s *Session) feedback(ctx context.Context, arg string) error {
	verdict, comment, _ := strings.Cut(arg, " ")

	req := FeedbackRequest{
		Language:       s.lang.String(),
		ConversationID: s.conversationID,
		FeedbackText:   strings.TrimSpace(comment),
	}
	switch strings.ToLower(verdict) {
	case "yes", "y":
		helpful := true
		req.WasHelpful = &helpful
	case "no", "n":
		helpful := false
		req.WasHelpful = &helpful
	default:
		req.FeedbackText = strings.TrimSpace(arg)
	}

	msg, err := s.client.Feedback(ctx, req)
	if err != nil {
		return err
	}
	s.display.PrintInfo(msg)
	return nil
}
