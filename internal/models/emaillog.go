package models

import "time"

// EmailLog represents one persisted generation request and its result.
// Rows are immutable after creation.
type EmailLog struct {
	ID         int64     `json:"id" db:"id"`                             // Server-assigned identifier
	UserInput  string    `json:"user_input" db:"user_input"`             // Original request text
	EmailType  string    `json:"email_type,omitempty" db:"email_type"`   // Template identifier
	Recipient  string    `json:"recipient,omitempty" db:"recipient"`     // Recipient display name
	Context    string    `json:"context,omitempty" db:"context"`         // Additional background
	ResponseTo string    `json:"response_to,omitempty" db:"response_to"` // Message being replied to
	Tone       string    `json:"tone" db:"tone"`                         // Requested tone
	Length     string    `json:"length" db:"length"`                     // Requested length
	Subject    string    `json:"subject" db:"subject"`                   // Generated subject
	Body       string    `json:"body" db:"body"`                         // Generated body
	CreatedAt  time.Time `json:"created_at" db:"created_at"`             // Creation timestamp (UTC)
}

// FieldCount is one value of a grouped column with its row count.
type FieldCount struct {
	Value string `json:"value" db:"value"`
	Count int64  `json:"count" db:"count"`
}

// EmailStats represents aggregate counters over the generation log
// @Description Aggregate email generation statistics
type EmailStats struct {
	EmailsGenerated int64        `json:"emails_generated"`          // Total logged generations
	ByType          []FieldCount `json:"by_type,omitempty"`         // Generations grouped by email type
	ByTone          []FieldCount `json:"by_tone,omitempty"`         // Generations grouped by tone
	MostPopularType string       `json:"most_popular_type,omitempty"` // Highest-count email type
}
