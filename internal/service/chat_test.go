package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/backend/internal/types"
)

func newTestSession() *ChatSession {
	return NewChatSession(NewIntentClassifier(), 0)
}

func TestChatSession_Submit(t *testing.T) {
	ctx := context.Background()
	empty := types.ParseAllergyProfile("", "")

	t.Run("new session opens with the assistant greeting", func(t *testing.T) {
		session := newTestSession()

		transcript := session.Transcript()

		require.Len(t, transcript, 1)
		assert.Equal(t, SenderBot, transcript[0].Sender)
		assert.Equal(t, greetingMessage, transcript[0].Text)
		assert.False(t, session.IsComposing())
		assert.False(t, session.ShowProviders())
	})

	t.Run("appends a user and assistant message pair", func(t *testing.T) {
		session := newTestSession()

		transcript, err := session.Submit(ctx, "hello there", empty)

		require.NoError(t, err)
		require.Len(t, transcript, 3)
		assert.Equal(t, SenderUser, transcript[1].Sender)
		assert.Equal(t, "hello there", transcript[1].Text)
		assert.Equal(t, SenderBot, transcript[2].Sender)
		assert.Equal(t, genericResponse, transcript[2].Text)
		assert.False(t, session.IsComposing())
	})

	t.Run("transcript alternates across many submissions", func(t *testing.T) {
		session := newTestSession()

		const rounds = 5
		for i := 0; i < rounds; i++ {
			_, err := session.Submit(ctx, fmt.Sprintf("message %d", i), empty)
			require.NoError(t, err)
		}

		transcript := session.Transcript()
		require.Len(t, transcript, 1+2*rounds)
		assert.Equal(t, SenderBot, transcript[0].Sender)
		for i := 1; i < len(transcript); i++ {
			want := SenderBot
			if i%2 == 1 {
				want = SenderUser
			}
			assert.Equal(t, want, transcript[i].Sender, "message %d", i)
		}
	})

	t.Run("rejects blank input without a state transition", func(t *testing.T) {
		session := newTestSession()

		transcript, err := session.Submit(ctx, "   ", empty)

		assert.Nil(t, transcript)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, session.Transcript(), 1)
		assert.False(t, session.IsComposing())
	})

	t.Run("rejects a submit while composing", func(t *testing.T) {
		session := newTestSession()
		started := make(chan struct{})
		release := make(chan struct{})
		session.wait = func(ctx context.Context, d time.Duration) error {
			close(started)
			<-release
			return nil
		}

		done := make(chan error, 1)
		go func() {
			_, err := session.Submit(ctx, "first", empty)
			done <- err
		}()

		<-started
		assert.True(t, session.IsComposing())
		_, err := session.Submit(ctx, "second", empty)
		assert.ErrorIs(t, err, ErrAssistantBusy)

		close(release)
		require.NoError(t, <-done)

		// Only the first submission made it into the transcript.
		transcript := session.Transcript()
		require.Len(t, transcript, 3)
		assert.Equal(t, "first", transcript[1].Text)
	})

	t.Run("cancellation returns the session to idle with the user message kept", func(t *testing.T) {
		session := NewChatSession(NewIntentClassifier(), time.Minute)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		transcript, err := session.Submit(cancelled, "are peanuts safe", empty)

		assert.Nil(t, transcript)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, session.IsComposing())

		kept := session.Transcript()
		require.Len(t, kept, 2)
		assert.Equal(t, SenderUser, kept[1].Sender)

		// The busy-guard released: a new submit gets past it and fails
		// only on its own expired context, not with ErrAssistantBusy.
		expired, cancelExpired := context.WithDeadline(ctx, time.Now().Add(-time.Second))
		defer cancelExpired()
		_, err = session.Submit(expired, "hello", empty)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("provider flag is sticky once set", func(t *testing.T) {
		session := newTestSession()

		_, err := session.Submit(ctx, "find me a doctor", empty)
		require.NoError(t, err)
		assert.True(t, session.ShowProviders())

		_, err = session.Submit(ctx, "thanks", empty)
		require.NoError(t, err)
		assert.True(t, session.ShowProviders())
	})

	t.Run("assistant reply reflects the current profile", func(t *testing.T) {
		session := newTestSession()
		profile := types.ParseAllergyProfile("peanuts, shellfish", "")

		transcript, err := session.Submit(ctx, "tell me about my allergies", profile)

		require.NoError(t, err)
		assert.Contains(t, transcript[len(transcript)-1].Text, "peanuts, shellfish")
	})

	t.Run("transcript snapshots are isolated from later appends", func(t *testing.T) {
		session := newTestSession()

		before := session.Transcript()
		_, err := session.Submit(ctx, "hello", empty)
		require.NoError(t, err)

		assert.Len(t, before, 1)
		assert.Len(t, session.Transcript(), 3)
	})
}

func TestChatService_Sessions(t *testing.T) {
	svc := NewChatService(NewIntentClassifier(), 0)
	alice := uuid.New()
	bob := uuid.New()

	t.Run("one session per user", func(t *testing.T) {
		assert.Same(t, svc.Session(alice), svc.Session(alice))
		assert.NotSame(t, svc.Session(alice), svc.Session(bob))
	})

	t.Run("sessions do not share transcripts", func(t *testing.T) {
		_, err := svc.Session(alice).Submit(context.Background(), "hi", types.AllergyProfile{})
		require.NoError(t, err)

		assert.Len(t, svc.Session(alice).Transcript(), 3)
		assert.Len(t, svc.Session(bob).Transcript(), 1)
	})

	t.Run("reset starts a fresh conversation", func(t *testing.T) {
		svc.Reset(alice)

		assert.Len(t, svc.Session(alice).Transcript(), 1)
	})
}
