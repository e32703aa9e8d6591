package chat

import "encoding/json"

// WidgetKind tags the closed set of interactive widget variants the copilot
// can attach to a message.
type WidgetKind string

const (
	WidgetNone         WidgetKind = ""
	WidgetTransferCard WidgetKind = "TRANSFER_CARD"
	WidgetInsightCard  WidgetKind = "INSIGHT_CARD"
	WidgetRestockAlert WidgetKind = "RESTOCK_ALERT"
)

// TransferProps carries a recommended stock transfer. Confirm is the only
// widget action the protocol currently supports.
type TransferProps struct {
	From    string `json:"from"`
	To      string `json:"to"`
	SKU     string `json:"sku"`
	Qty     int    `json:"qty"`
	ETA     string `json:"eta"`
	Savings string `json:"savings,omitempty"`
}

// InsightItem is one row of an insight or restock listing.
type InsightItem struct {
	Shade    string  `json:"shade"`
	Location string  `json:"location"`
	DaysLeft float64 `json:"days_left"`
}

// InsightProps backs both INSIGHT_CARD and RESTOCK_ALERT; the variants
// differ only in presentation.
type InsightProps struct {
	Title string        `json:"title"`
	Items []InsightItem `json:"items"`
}

// Widget is the decoded tagged union. Exactly one variant pointer is set for
// a recognized kind; an unrecognized kind decodes to the zero Widget, which
// renders as nothing. That keeps old clients silent, not broken, when the
// backend grows new widget types.
type Widget struct {
	Kind     WidgetKind
	Transfer *TransferProps
	Insight  *InsightProps
}

// IsZero reports whether the widget should render as absent.
func (w Widget) IsZero() bool {
	return w.Transfer == nil && w.Insight == nil
}

// WidgetEnvelope is the wire form: {"type": "...", "props": {...}}.
type WidgetEnvelope struct {
	Type  string          `json:"type"`
	Props json.RawMessage `json:"props"`
}

// Decode turns the envelope into a typed Widget. Unknown types and malformed
// props yield the zero Widget; the conversation never fails over a widget.
func (e *WidgetEnvelope) Decode() Widget {
	if e == nil {
		return Widget{}
	}
	switch WidgetKind(e.Type) {
	case WidgetTransferCard:
		var p TransferProps
		if err := json.Unmarshal(e.Props, &p); err != nil {
			return Widget{}
		}
		return Widget{Kind: WidgetTransferCard, Transfer: &p}
	case WidgetInsightCard, WidgetRestockAlert:
		var p InsightProps
		if err := json.Unmarshal(e.Props, &p); err != nil {
			return Widget{}
		}
		return Widget{Kind: WidgetKind(e.Type), Insight: &p}
	default:
		return Widget{}
	}
}

// Encode builds the wire envelope for a widget. Used by the offline copilot;
// the zero Widget encodes to nil (no ui_widget key).
func (w Widget) Encode() *WidgetEnvelope {
	var props any
	switch {
	case w.Kind == WidgetTransferCard && w.Transfer != nil:
		props = w.Transfer
	case (w.Kind == WidgetInsightCard || w.Kind == WidgetRestockAlert) && w.Insight != nil:
		props = w.Insight
	default:
		return nil
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return nil
	}
	return &WidgetEnvelope{Type: string(w.Kind), Props: raw}
}

// Reply is the copilot response payload: analysis text plus an optional
// widget.
type Reply struct {
	Text     string          `json:"text"`
	UIWidget *WidgetEnvelope `json:"ui_widget,omitempty"`
}
