package assistant

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Interpret extracts a subject/body pair from the model's raw output using
// the strategy matching format. It is total: whatever the model returned,
// the fallback policy guarantees both subject and body are non-empty.
func Interpret(raw string, format Format, emailType, recipient string) (subject, body string) {
	switch format {
	case FormatLabeled:
		subject, body = interpretLabeled(raw)
	default:
		subject, body = interpretJSON(raw)
	}

	if strings.TrimSpace(subject) == "" {
		subject = fallbackSubject(emailType, recipient)
	}
	if strings.TrimSpace(body) == "" {
		body = raw
	}
	if strings.TrimSpace(body) == "" {
		body = subject
	}
	return subject, body
}

// interpretJSON strips any fenced-code markers and parses the remainder as a
// JSON object with subject and body keys. Absent keys yield empty strings,
// not errors.
func interpretJSON(raw string) (string, string) {
	var parsed struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return "", ""
	}
	return strings.TrimSpace(parsed.Subject), strings.TrimSpace(parsed.Body)
}

// interpretLabeled scans lines for the first "Subject:" prefix
// (case-insensitive); everything from the first non-empty line after it to
// the end becomes the body.
func interpretLabeled(raw string) (string, string) {
	var subject, body string
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if subject == "" {
			if rest, ok := cutPrefixFold(trimmed, "subject:"); ok {
				subject = strings.TrimSpace(rest)
			}
			continue
		}
		if trimmed != "" {
			body = strings.TrimSpace(strings.Join(lines[i:], "\n"))
			break
		}
	}
	return subject, body
}

// stripFences removes a surrounding triple-backtick fence, optionally tagged
// json, leaving the content between the markers.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	s = s[start+3:]
	s = strings.TrimPrefix(s, "json")
	if end := strings.Index(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// fallbackSubject synthesizes a deterministic subject from the email type and
// recipient when extraction produced none.
func fallbackSubject(emailType, recipient string) string {
	subject := "Generated Email"
	if strings.TrimSpace(emailType) != "" {
		subject = titleCaser.String(strings.ReplaceAll(emailType, "_", " "))
	}
	if strings.TrimSpace(recipient) != "" {
		subject += " - " + recipient
	}
	return subject
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
