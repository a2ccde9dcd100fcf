package assistant

import "github.com/entrhq/architect/pkg/types"

// DefaultHistoryBudget is the rough character budget for the history sent to
// the assistant. It approximates a context window comfortably below current
// model limits; precision does not matter here, only that very long
// conversations stop growing the request without bound.
const DefaultHistoryBudget = 48000

// TrimHistory drops the oldest messages until the total content length fits
// the budget. The most recent message is always kept, even when it alone
// exceeds the budget: the latest user input must reach the assistant.
func TrimHistory(history []types.Message, budget int) []types.Message {
	if len(history) == 0 {
		return history
	}

	total := 0
	for _, m := range history {
		total += len(m.Content)
	}
	start := 0
	for start < len(history)-1 && total > budget {
		total -= len(history[start].Content)
		start++
	}
	return history[start:]
}
