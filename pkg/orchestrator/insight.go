package orchestrator

import "strings"

// insightKeywords is the fixed topic list that marks a turn as worth
// persisting to long-term memory. The user base is Swedish-speaking, so each
// topic carries both forms. Advisory only; never blocks the response.
var insightKeywords = []string{
	"project", "projekt",
	"deadline",
	"subscription", "prenumeration",
	"cost", "kostnad",
	"stress",
	"decision", "beslut",
	"important", "viktig",
	"problem",
}

// shouldSaveInsight reports whether the user message or the final reply
// touches any insight topic (case-insensitive substring match).
func shouldSaveInsight(userMessage, reply string) bool {
	combined := strings.ToLower(userMessage + " " + reply)
	for _, kw := range insightKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}
