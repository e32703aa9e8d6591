// Package chat implements the copilot conversation protocol: an append-only
// message log where assistant messages may carry typed interactive widgets,
// a strict one-exchange-at-a-time send gate, and a dispatcher that maps
// widget actions back into the log.
package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FallbackText is appended as a normal assistant message when an exchange
// fails. The rendering layer never sees a distinct error.
const FallbackText = "Sorry, something went wrong. Try again."

const greetingText = "Hi! I'm your PaintFlow AI assistant. Ask me about inventory, stockouts, or demand trends."

// QuickPrompts are suggested inputs offered next to the input field.
var QuickPrompts = []string{"Why is Bridal Red low in Pune?", "Stockouts", "Diwali prep"}

// Message is one entry in the conversation log. Messages are never mutated
// or removed once appended; log order is the single source of truth for
// rendering.
type Message struct {
	ID     string
	Text   string
	IsUser bool
	Widget Widget
}

// Responder is the fetch capability one exchange consumes: a single-shot
// call carrying the user's text and the active scenario id as context.
type Responder interface {
	Chat(ctx context.Context, message, scenarioID string) (Reply, error)
}

// Session owns the message log and the waiting flag. The flag is true from
// the moment a user message is appended until the reply (success or failure)
// lands, and gates sending new input.
type Session struct {
	mu       sync.Mutex
	messages []Message
	waiting  bool
}

// NewSession returns a session seeded with the assistant greeting.
func NewSession() *Session {
	s := &Session{}
	s.appendAssistant(greetingText, Widget{})
	return s
}

// Messages returns a snapshot of the log in append order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// Len returns the current message count.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Waiting reports whether an exchange is in flight.
func (s *Session) Waiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waiting
}

// Begin starts an exchange: it appends the user message and closes the send
// gate. Returns the trimmed text and false if the input is empty after
// trimming or an exchange is already in flight (both are no-ops).
func (s *Session) Begin(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiting {
		return "", false
	}
	s.messages = append(s.messages, Message{ID: uuid.NewString(), Text: trimmed, IsUser: true})
	s.waiting = true
	return trimmed, true
}

// Complete finishes the in-flight exchange with the copilot's reply and
// reopens the send gate. Ignored when no exchange is in flight.
func (s *Session) Complete(r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.waiting {
		return
	}
	s.waiting = false
	s.messages = append(s.messages, Message{
		ID:     uuid.NewString(),
		Text:   r.Text,
		Widget: r.UIWidget.Decode(),
	})
}

// Fail finishes the in-flight exchange after a fetch failure. The failure
// surfaces only as the fixed fallback assistant message; the gate reopens
// exactly as on success.
func (s *Session) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.waiting {
		return
	}
	s.waiting = false
	s.messages = append(s.messages, Message{ID: uuid.NewString(), Text: FallbackText})
}

// Exchange runs the full protocol against r: gate check, user message,
// fetch with the scenario id as context, reply or fallback, gate reopened.
// Returns false when the send was rejected.
func (s *Session) Exchange(ctx context.Context, r Responder, text, scenarioID string) bool {
	trimmed, ok := s.Begin(text)
	if !ok {
		return false
	}
	reply, err := r.Chat(ctx, trimmed, scenarioID)
	if err != nil {
		s.Fail()
		return true
	}
	s.Complete(reply)
	return true
}

func (s *Session) appendAssistant(text string, w Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{ID: uuid.NewString(), Text: text, Widget: w})
}
