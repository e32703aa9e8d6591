package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfirmTransferAppendsOneMessage(t *testing.T) {
	t.Parallel()

	s := NewSession()
	d := NewDispatcher(s)
	snapshot := s.Messages()

	d.ConfirmTransfer(TransferProps{From: "Mumbai", To: "Pune", SKU: "Bridal Red", Qty: 500, ETA: "2 days"})

	msgs := s.Messages()
	require.Len(t, msgs, len(snapshot)+1)
	last := msgs[len(msgs)-1]
	require.False(t, last.IsUser)
	require.Contains(t, last.Text, "500 units of Bridal Red")
	require.Contains(t, last.Text, "from Mumbai to Pune")
	require.Contains(t, last.Text, "ETA: 2 days")

	// earlier messages untouched
	for i := range snapshot {
		require.Equal(t, snapshot[i], msgs[i])
	}
}

func TestConfirmTransferIsNotDeduplicated(t *testing.T) {
	t.Parallel()

	s := NewSession()
	d := NewDispatcher(s)
	p := TransferProps{From: "Mumbai", To: "Pune", SKU: "Bridal Red", Qty: 500, ETA: "2 days"}

	before := s.Len()
	d.ConfirmTransfer(p)
	d.ConfirmTransfer(p)
	require.Equal(t, before+2, s.Len(), "each invocation appends another message")
}

func TestDispatchRoutesByKind(t *testing.T) {
	t.Parallel()

	s := NewSession()
	d := NewDispatcher(s)

	ok := d.Dispatch(Widget{Kind: WidgetTransferCard, Transfer: &TransferProps{From: "Mumbai", To: "Pune", SKU: "Bridal Red", Qty: 500, ETA: "2 days"}})
	require.True(t, ok)

	// actionless and unrecognized widgets are no-ops
	before := s.Len()
	require.False(t, d.Dispatch(Widget{Kind: WidgetInsightCard, Insight: &InsightProps{Title: "x"}}))
	require.False(t, d.Dispatch(Widget{}))
	require.False(t, d.Dispatch(Widget{Kind: WidgetTransferCard}), "card without props has nothing to confirm")
	require.Equal(t, before, s.Len())
}

func TestDispatchDoesNotBlockFurtherExchanges(t *testing.T) {
	t.Parallel()

	s := NewSession()
	d := NewDispatcher(s)
	d.ConfirmTransfer(TransferProps{From: "Mumbai", To: "Pune", SKU: "Bridal Red", Qty: 500, ETA: "2 days"})

	require.False(t, s.Waiting(), "a widget action is not an exchange")
	_, ok := s.Begin("follow-up")
	require.True(t, ok)
}
