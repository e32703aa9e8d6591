package demo

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/paintflow/internal/chat"
)

// shades the copilot can reason about. Fuzzy matching tolerates the typos a
// demo audience types ("bridel red", "pacifc breeze").
var shades = []string{
	"Bridal Red",
	"Pacific Breeze",
	"Terracotta Dream",
	"Royale Luxury Emulsion",
	"Canary Gold",
	"Midnight Indigo",
}

// Chat is the heuristic copilot: keyword routing with scenario-aware
// prefixes. It mirrors the backend's fallback behavior so demos hold up with
// the LLM path dark.
func (f *Fetcher) Chat(ctx context.Context, message, scenarioID string) (chat.Reply, error) {
	if f.FailChat {
		return chat.Reply{}, ErrUnavailable
	}

	msg := strings.ToLower(message)
	prefix := scenarioPrefix(scenarioID)
	shade, shadeMentioned := matchShade(msg)

	// Hero query: a named shade running low somewhere.
	if shadeMentioned && containsAny(msg, "low", "why", "pune", "short") {
		eta := "2 days"
		if scenarioID == "TRUCK_STRIKE" {
			eta = "4 days (delayed due to strike)"
		}
		w := chat.Widget{
			Kind: chat.WidgetTransferCard,
			Transfer: &chat.TransferProps{
				From:    "Mumbai",
				To:      "Pune",
				SKU:     shade,
				Qty:     500,
				ETA:     eta,
				Savings: "₹15,000",
			},
		}
		return chat.Reply{
			Text: prefix + "I've detected a critical shortage of '" + shade + "' in Pune. " +
				"Wedding season demand has surged 40%, depleting stock to just 20 units (1.2 days cover). " +
				"Mumbai warehouse has 3,200 units overstocked. I recommend an immediate transfer.",
			UIWidget: w.Encode(),
		}, nil
	}

	if containsAny(msg, "stockout", "shortage", "critical") {
		w := chat.Widget{
			Kind: chat.WidgetInsightCard,
			Insight: &chat.InsightProps{
				Title: "Critical Stockouts",
				Items: []chat.InsightItem{
					{Shade: "Bridal Red", Location: "Pune", DaysLeft: 1.2},
					{Shade: "Pacific Breeze", Location: "Chennai", DaysLeft: 0.3},
					{Shade: "Terracotta Dream", Location: "Delhi", DaysLeft: 0.4},
				},
			},
		}
		return chat.Reply{
			Text: prefix + "There are currently 8 critical stockout situations across the network. " +
				"The most urgent: Bridal Red in Pune (1.2 days), Pacific Breeze in Chennai (0.3 days), " +
				"and Terracotta Dream in Delhi (0.4 days). Revenue at risk: ₹4,50,000.",
			UIWidget: w.Encode(),
		}, nil
	}

	if containsAny(msg, "diwali", "festival") {
		return chat.Reply{
			Text: prefix + "Diwali is 15 days away. Based on 2 years of historical data, " +
				"I predict a 60% demand surge across all paint categories. Premium products like " +
				"Royale Luxury Emulsion will see the highest spike. I recommend pre-positioning " +
				"stock in North and West warehouses.",
		}, nil
	}

	if containsAny(msg, "monsoon", "rain", "waterproof") {
		return chat.Reply{
			Text: prefix + "The Great Mumbai Rain event of Oct 2025 caused a 3x spike in " +
				"waterproofing demand. Our forecast model detected this pattern and can predict " +
				"similar events 3 days in advance. Current waterproofing stock in West region " +
				"is adequate for normal demand but insufficient for another rain event.",
		}, nil
	}

	return chat.Reply{
		Text: prefix + "I'm analyzing the current supply chain state. " +
			"There are 8 stockout risks, 3 recommended transfers, and Diwali demand surge approaching. " +
			"Would you like me to focus on a specific area? Try asking about 'Bridal Red in Pune', " +
			"'stockouts', 'Diwali preparation', or 'monsoon impact'.",
	}, nil
}

func scenarioPrefix(scenarioID string) string {
	switch scenarioID {
	case "TRUCK_STRIKE":
		return "During the simulated truck strike: "
	case "HEATWAVE":
		return "During the simulated heatwave: "
	case "EARLY_MONSOON":
		return "During the early monsoon simulation: "
	default:
		return ""
	}
}

// matchShade looks for a known shade in the message, tolerating small typos
// per word (edit distance <= 2, scaled down for short words).
func matchShade(msg string) (string, bool) {
	words := strings.Fields(msg)
	for _, shade := range shades {
		if shadeMatches(words, shade) {
			return shade, true
		}
	}
	return "", false
}

func shadeMatches(words []string, shade string) bool {
	parts := strings.Fields(strings.ToLower(shade))
	matched := 0
	for _, part := range parts {
		for _, w := range words {
			if levenshtein.ComputeDistance(w, part) <= maxEdits(part) {
				matched++
				break
			}
		}
	}
	// Every word of the shade name must appear; "red" alone is not a match
	// for two-word shades unless paired with its partner word.
	return matched == len(parts)
}

func maxEdits(word string) int {
	if len(word) <= 4 {
		return 1
	}
	return 2
}

func containsAny(msg string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(msg, t) {
			return true
		}
	}
	return false
}
