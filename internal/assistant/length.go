package assistant

import "strings"

// Length values accepted by the generation endpoint. Each maps to the token
// budget handed to the completion call.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"

	// DefaultLength is applied when a request leaves the length unset.
	DefaultLength = LengthMedium
)

var lengthTokens = map[string]int{
	LengthShort:  200,
	LengthMedium: 400,
	LengthLong:   600,
}

// NormalizeLength lowercases and validates a requested length. An empty value
// yields the default; an unknown value reports false.
func NormalizeLength(length string) (string, bool) {
	l := strings.ToLower(strings.TrimSpace(length))
	if l == "" {
		return DefaultLength, true
	}
	if _, ok := lengthTokens[l]; !ok {
		return "", false
	}
	return l, true
}

// LengthTokens returns the completion token budget for a normalized length.
func LengthTokens(length string) int {
	if tokens, ok := lengthTokens[length]; ok {
		return tokens
	}
	return lengthTokens[DefaultLength]
}
