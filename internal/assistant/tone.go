package assistant

import "strings"

// DefaultTone is applied when a request leaves the tone unset.
const DefaultTone = "professional"

var validTones = map[string]bool{
	"professional": true,
	"formal":       true,
	"casual":       true,
	"friendly":     true,
	"urgent":       true,
	"relaxed":      true,
}

// NormalizeTone lowercases and validates a requested tone. An empty value
// yields the default; an unknown value reports false.
func NormalizeTone(tone string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(tone))
	if t == "" {
		return DefaultTone, true
	}
	if !validTones[t] {
		return "", false
	}
	return t, true
}

// Tones returns the accepted tone values in a stable order.
func Tones() []string {
	return []string{"professional", "formal", "casual", "friendly", "urgent", "relaxed"}
}
