package chat

import "fmt"

// Dispatcher maps user-triggered widget actions to their effects on the
// session. The transfer effect is simulated locally with templated text; a
// production build would call the backend transfer endpoint and report its
// real result.
type Dispatcher struct {
	session *Session
}

func NewDispatcher(s *Session) *Dispatcher {
	return &Dispatcher{session: s}
}

// Dispatch invokes the action for a widget, if its variant has one. Returns
// false for actionless or unrecognized widgets.
func (d *Dispatcher) Dispatch(w Widget) bool {
	switch w.Kind {
	case WidgetTransferCard:
		if w.Transfer == nil {
			return false
		}
		d.ConfirmTransfer(*w.Transfer)
		return true
	default:
		return false
	}
}

// ConfirmTransfer appends one synthesized assistant message describing the
// confirmed transfer. Earlier messages are untouched. Calling it again
// appends again — confirms are not deduplicated; callers wanting
// once-per-card must gate on their side.
func (d *Dispatcher) ConfirmTransfer(p TransferProps) {
	text := fmt.Sprintf(
		"Transfer confirmed! %d units of %s are now in transit from %s to %s. ETA: %s. The map will update shortly.",
		p.Qty, p.SKU, p.From, p.To, p.ETA,
	)
	d.session.appendAssistant(text, Widget{})
}
