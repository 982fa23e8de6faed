package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/safebite/backend/internal/types"
)

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one entry of a conversation transcript. Messages are
// append-only and never mutated after insertion.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// DefaultComposeDelay mirrors the original assistant's typing window.
const DefaultComposeDelay = 1500 * time.Millisecond

const greetingMessage = "Hello! I'm your Allergen Assistant. " +
	"I can help you find specialists near you or answer questions about managing your allergies. " +
	"How can I assist you today?"

// ChatSession holds one user's conversation with the assistant: the
// transcript, the composing flag and the sticky provider-directory flag.
// Sessions are independent of each other; the mutex only guards this
// session's own state. The composing flag is an advisory busy-guard, not
// a queue: a second Submit while composing is rejected, not deferred.
type ChatSession struct {
	mu            sync.Mutex
	messages      []ChatMessage
	composing     bool
	showProviders bool

	classifier   *IntentClassifier
	composeDelay time.Duration
	wait         func(context.Context, time.Duration) error
	now          func() time.Time
}

// NewChatSession creates a session seeded with the assistant greeting.
func NewChatSession(classifier *IntentClassifier, composeDelay time.Duration) *ChatSession {
	s := &ChatSession{
		classifier:   classifier,
		composeDelay: composeDelay,
		wait:         sleepContext,
		now:          time.Now,
	}
	s.messages = append(s.messages, ChatMessage{
		ID:        uuid.NewString(),
		Text:      greetingMessage,
		Sender:    SenderBot,
		Timestamp: s.now(),
	})
	return s
}

// Submit appends the user's utterance, composes the assistant reply after
// the configured delay and returns the updated transcript. Empty or
// whitespace-only input is rejected with no state transition. A call while
// a prior reply is still composing returns ErrAssistantBusy. If ctx is
// cancelled during the delay the session returns to idle and no assistant
// message is appended.
func (s *ChatSession) Submit(ctx context.Context, text string, profile types.AllergyProfile) ([]ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Reason: "message text is required"}
	}

	s.mu.Lock()
	if s.composing {
		s.mu.Unlock()
		return nil, ErrAssistantBusy
	}
	s.composing = true
	s.messages = append(s.messages, ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: s.now(),
	})
	s.mu.Unlock()

	if err := s.wait(ctx, s.composeDelay); err != nil {
		s.mu.Lock()
		s.composing = false
		s.mu.Unlock()
		return nil, err
	}

	result := s.classifier.Classify(text, profile)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, ChatMessage{
		ID:        uuid.NewString(),
		Text:      result.Response,
		Sender:    SenderBot,
		Timestamp: s.now(),
	})
	if result.ShowProviders {
		s.showProviders = true
	}
	s.composing = false
	return s.snapshotLocked(), nil
}

// IsComposing reports whether an assistant reply is pending. Callers must
// treat it as a busy-guard before allowing further input.
func (s *ChatSession) IsComposing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composing
}

// ShowProviders reports whether a specialist lookup has asked for the
// provider directory at any point in this session.
func (s *ChatSession) ShowProviders() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showProviders
}

// Transcript returns a copy of the conversation so far.
func (s *ChatSession) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ChatSession) snapshotLocked() []ChatMessage {
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// ChatService hands out per-user chat sessions. Sessions live in memory for
// the process lifetime; each user gets at most one.
type ChatService struct {
	mu           sync.Mutex
	sessions     map[uuid.UUID]*ChatSession
	classifier   *IntentClassifier
	composeDelay time.Duration
}

// NewChatService creates a ChatService with the given composing delay.
func NewChatService(classifier *IntentClassifier, composeDelay time.Duration) *ChatService {
	return &ChatService{
		sessions:     make(map[uuid.UUID]*ChatSession),
		classifier:   classifier,
		composeDelay: composeDelay,
	}
}

// Session returns the user's session, creating it on first use.
func (s *ChatService) Session(userID uuid.UUID) *ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		session = NewChatSession(s.classifier, s.composeDelay)
		s.sessions[userID] = session
	}
	return session
}

// Reset discards the user's session so the next call starts fresh.
func (s *ChatService) Reset(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
