package assistant

import "mailassist/internal/models"

// Window returns the suffix of history containing at most the last k turns,
// preserving order. The bound keeps prompt size independent of how long a
// conversation has run.
func Window(history []models.ConversationTurn, k int) []models.ConversationTurn {
	if k <= 0 || len(history) == 0 {
		return nil
	}
	if len(history) <= k {
		return history
	}
	return history[len(history)-k:]
}
