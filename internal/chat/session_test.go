package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedResponder returns a fixed reply or error and records calls.
type scriptedResponder struct {
	reply    Reply
	err      error
	messages []string
	scenario []string
}

func (r *scriptedResponder) Chat(ctx context.Context, message, scenarioID string) (Reply, error) {
	r.messages = append(r.messages, message)
	r.scenario = append(r.scenario, scenarioID)
	if r.err != nil {
		return Reply{}, r.err
	}
	return r.reply, nil
}

func TestNewSessionSeedsGreeting(t *testing.T) {
	t.Parallel()

	s := NewSession()
	msgs := s.Messages()
	require.Len(t, msgs, 1)
	require.False(t, msgs[0].IsUser)
	require.False(t, s.Waiting())
}

func TestBeginRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	s := NewSession()
	before := s.Len()

	_, ok := s.Begin("   \t ")
	require.False(t, ok)
	require.Equal(t, before, s.Len())
	require.False(t, s.Waiting())
}

func TestBeginRejectsWhileWaiting(t *testing.T) {
	t.Parallel()

	s := NewSession()
	_, ok := s.Begin("first")
	require.True(t, ok)
	require.True(t, s.Waiting())

	before := s.Len()
	_, ok = s.Begin("second")
	require.False(t, ok, "sending while waiting must be a no-op")
	require.Equal(t, before, s.Len())
}

func TestExchangeSuccess(t *testing.T) {
	t.Parallel()

	r := &scriptedResponder{reply: Reply{Text: "8 stockouts network-wide."}}
	s := NewSession()
	before := s.Len()

	require.True(t, s.Exchange(context.Background(), r, "  Stockouts ", "NORMAL"))

	msgs := s.Messages()
	require.Len(t, msgs, before+2)
	user, reply := msgs[len(msgs)-2], msgs[len(msgs)-1]
	require.True(t, user.IsUser)
	require.Equal(t, "Stockouts", user.Text, "input is trimmed before appending")
	require.False(t, reply.IsUser)
	require.Equal(t, "8 stockouts network-wide.", reply.Text)
	require.False(t, s.Waiting())

	require.Equal(t, []string{"Stockouts"}, r.messages)
	require.Equal(t, []string{"NORMAL"}, r.scenario)
}

func TestExchangeFailureAppendsFallback(t *testing.T) {
	t.Parallel()

	r := &scriptedResponder{err: errors.New("connection refused")}
	s := NewSession()
	before := s.Len()

	require.True(t, s.Exchange(context.Background(), r, "Stockouts", "NORMAL"))

	// Failure surfaces as exactly one normal assistant message with the
	// fixed fallback text, never as an error.
	msgs := s.Messages()
	require.Len(t, msgs, before+2)
	last := msgs[len(msgs)-1]
	require.False(t, last.IsUser)
	require.Equal(t, FallbackText, last.Text)
	require.True(t, last.Widget.IsZero())
	require.False(t, s.Waiting(), "gate must reopen even on failure")
}

func TestExchangeCarriesActiveScenario(t *testing.T) {
	t.Parallel()

	r := &scriptedResponder{reply: Reply{Text: "ok"}}
	s := NewSession()

	require.True(t, s.Exchange(context.Background(), r, "stock levels?", "HEATWAVE"))
	require.Equal(t, []string{"HEATWAVE"}, r.scenario)
}

func TestCompleteDecodesWidget(t *testing.T) {
	t.Parallel()

	s := NewSession()
	_, ok := s.Begin("Why is Bridal Red low in Pune?")
	require.True(t, ok)

	w := Widget{Kind: WidgetTransferCard, Transfer: &TransferProps{
		From: "Mumbai", To: "Pune", SKU: "Bridal Red", Qty: 500, ETA: "2 days",
	}}
	s.Complete(Reply{Text: "Recommend a transfer.", UIWidget: w.Encode()})

	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	require.Equal(t, WidgetTransferCard, last.Widget.Kind)
	require.NotNil(t, last.Widget.Transfer)
	require.Equal(t, 500, last.Widget.Transfer.Qty)
}

func TestCompleteWithoutExchangeIgnored(t *testing.T) {
	t.Parallel()

	s := NewSession()
	before := s.Len()
	s.Complete(Reply{Text: "stray"})
	s.Fail()
	require.Equal(t, before, s.Len())
}

func TestLogIsAppendOnly(t *testing.T) {
	t.Parallel()

	r := &scriptedResponder{reply: Reply{Text: "first reply"}}
	s := NewSession()
	require.True(t, s.Exchange(context.Background(), r, "one", "NORMAL"))
	snapshot := s.Messages()

	require.True(t, s.Exchange(context.Background(), r, "two", "NORMAL"))
	after := s.Messages()

	require.Greater(t, len(after), len(snapshot))
	for i := range snapshot {
		require.Equal(t, snapshot[i], after[i], "earlier messages must never change")
	}
}
