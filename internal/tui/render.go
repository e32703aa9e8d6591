package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/paintflow/internal/api"
	"github.com/jask/paintflow/internal/chat"
	"github.com/jask/paintflow/internal/scenario"
)

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	kpiBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	kpiLabelStyle = lipgloss.NewStyle().Faint(true)
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userMsgStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

const chatPanelWidth = 46

func (a *App) View() string {
	w, h := a.width, a.height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 32
	}

	body := a.renderDashboard()
	if a.modal == modalScenario {
		body += "\n\n" + a.renderScenarioModal()
	}
	if a.chatOpen {
		panel := a.renderChatPanel()
		x := w - chatPanelWidth - 4
		if x < 0 {
			x = 0
		}
		body = overlayAt(body, panel, x, 1, w, h)
	}
	return body
}

func (a *App) renderDashboard() string {
	title := titleStyle.Render("PaintFlow Command Center")
	out := title + "\n"

	if active := a.deps.Store.Current(); active != scenario.Baseline {
		out += bannerStyle.Render("⚠ SIMULATION: "+a.scenarioName(active)) + "\n"
	}

	// KPI cards read through the overlay; a scenario override replaces only
	// the figures it names.
	dash := scenario.Apply(a.deps.Store, "dashboard_summary", a.summary)
	out += "\n" + a.renderKPIs(dash) + "\n"
	out += "\n" + a.renderWarehouses() + "\n"
	out += "\n" + a.renderTransfers() + "\n"
	out += "\n" + a.renderTopSKUs() + "\n"

	out += "\n[s] Scenarios  [c] Copilot  [n] Back to live  [r] Refresh  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderKPIs(d api.DashboardSummary) string {
	if !a.hasSummary {
		return "loading dashboard..."
	}
	cards := []string{
		a.kpiCard("Revenue (MTD)", a.money(d.TotalRevenueMTD)),
		a.kpiCard("Stockout Alerts", fmt.Sprintf("%d", d.StockoutCount)),
		a.kpiCard("Pending Transfers", fmt.Sprintf("%d", d.PendingTransfers)),
		a.kpiCard("Revenue at Risk", a.money(d.RevenueAtRisk)),
	}
	if d.AvgDaysOfCover > 0 {
		cards = append(cards, a.kpiCard("Days of Cover", fmt.Sprintf("%.1f", d.AvgDaysOfCover)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (a *App) kpiCard(label, value string) string {
	return kpiBoxStyle.Render(kpiLabelStyle.Render(label) + "\n" + value)
}

func (a *App) renderWarehouses() string {
	out := titleStyle.Render("Warehouse Network") + "\n"
	if len(a.warehouses) == 0 {
		return out + "  (no warehouse data)"
	}
	for _, w := range a.warehouses {
		status := w.Status
		switch w.Status {
		case "critical":
			status = criticalStyle.Render(w.Status)
		case "low", "overstocked":
			status = warnStyle.Render(w.Status)
		case "healthy":
			status = okStyle.Render(w.Status)
		}
		line := fmt.Sprintf("  %-4s %-20s %8d units  %s", w.Code, truncate(w.City, 20), w.TotalStock, status)
		if w.CriticalSKUs > 0 {
			line += fmt.Sprintf("  %d SKUs at risk (%s)", w.CriticalSKUs, a.money(w.RevenueAtRisk))
		}
		out += line + "\n"
	}
	return strings.TrimRight(out, "\n")
}

func (a *App) renderTransfers() string {
	out := titleStyle.Render("Recommended Transfers") + "\n"
	if len(a.transfers) == 0 {
		return out + "  (none pending)"
	}
	for _, t := range a.transfers {
		from, to := "?", "?"
		if t.FromWarehouse != nil {
			from = t.FromWarehouse.City
		}
		if t.ToWarehouse != nil {
			to = t.ToWarehouse.City
		}
		out += fmt.Sprintf("  %-22s %s → %-10s %5d units  [%s]\n",
			truncate(t.ShadeName, 22), from, to, t.Quantity, t.Status)
	}
	return strings.TrimRight(out, "\n")
}

func (a *App) renderTopSKUs() string {
	out := titleStyle.Render("Top SKUs") + "\n"
	if len(a.topSKUs) == 0 {
		return out + "  (no sales data)"
	}
	for _, s := range a.topSKUs {
		out += fmt.Sprintf("  %-10s %-24s %10s  %6d sold\n",
			s.SKUCode, truncate(s.ShadeName, 24), a.money(s.TotalRevenue), s.TotalQty)
	}
	return strings.TrimRight(out, "\n")
}

func (a *App) renderScenarioModal() string {
	out := titleStyle.Render("What-If Scenarios") + "\n"
	for i, s := range a.scenarioOptions() {
		marker := " "
		if i == a.scenarioCursor {
			marker = "▶"
		}
		active := ""
		if s.ID == a.deps.Store.Current() {
			active = "  (active)"
		}
		label := s.Name
		if s.Description != "" {
			label += " — " + truncate(s.Description, 48)
		}
		out += fmt.Sprintf("%s %s%s\n", marker, label, active)
	}
	out += "[enter] Select  [esc] Cancel"
	return out
}

func (a *App) renderChatPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AI Copilot") + "\n")

	msgs := a.deps.Session.Messages()
	start := 0
	if len(msgs) > 8 {
		start = len(msgs) - 8
	}
	for _, m := range msgs[start:] {
		if m.IsUser {
			b.WriteString(userMsgStyle.Render("you> ") + wrap(m.Text, chatPanelWidth-6) + "\n")
			continue
		}
		b.WriteString(wrap(m.Text, chatPanelWidth-2) + "\n")
		if card := renderWidget(m.Widget); card != "" {
			b.WriteString(card + "\n")
		}
	}
	if a.deps.Session.Waiting() {
		b.WriteString(kpiLabelStyle.Render("thinking...") + "\n")
	}

	b.WriteString("\n> " + a.chatInput + "▌\n")
	b.WriteString(kpiLabelStyle.Render("[enter] Send  [tab] Suggest  [ctrl+t] Confirm transfer  [esc] Close"))
	return panelStyle.Width(chatPanelWidth).Render(b.String())
}

// renderWidget draws the variant-specific card. Unrecognized widgets render
// as nothing.
func renderWidget(w chat.Widget) string {
	switch w.Kind {
	case chat.WidgetTransferCard:
		if w.Transfer == nil {
			return ""
		}
		return renderTransferCard(*w.Transfer)
	case chat.WidgetInsightCard, chat.WidgetRestockAlert:
		if w.Insight == nil {
			return ""
		}
		return renderInsightCard(*w.Insight)
	default:
		return ""
	}
}

func renderTransferCard(p chat.TransferProps) string {
	body := kpiLabelStyle.Render("Recommended Transfer") + "\n"
	body += fmt.Sprintf("%s → %s\n", p.From, p.To)
	body += fmt.Sprintf("%s   %d units   ETA %s", p.SKU, p.Qty, p.ETA)
	if p.Savings != "" {
		body += "\n" + okStyle.Render("Potential savings: "+p.Savings)
	}
	body += "\n" + kpiLabelStyle.Render("[ctrl+t] Confirm Transfer")
	return cardStyle.Render(body)
}

func renderInsightCard(p chat.InsightProps) string {
	body := warnStyle.Render(p.Title)
	for _, item := range p.Items {
		body += fmt.Sprintf("\n%-18s %-10s %s", truncate(item.Shade, 18), item.Location,
			criticalStyle.Render(fmt.Sprintf("%.1f days", item.DaysLeft)))
	}
	return cardStyle.Render(body)
}

func (a *App) money(v float64) string {
	return a.currency + formatAmount(v)
}

// formatAmount renders an amount with thousands separators, no decimals.
func formatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	if s != "" {
		parts = append([]string{s}, parts...)
	}
	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}

// wrap breaks text into lines no wider than width, on spaces where possible.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
