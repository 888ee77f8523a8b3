package models

import "time"

// Severity grades a notification. The empty severity means "do not notify".
type Severity string

const (
	SeverityNone     Severity = ""
	SeverityInfo     Severity = "info"
	SeverityAlert    Severity = "alert"
	SeverityExceeded Severity = "exceeded"
	SeveritySuccess  Severity = "success"
)

// Rank orders severities so that a higher band compares greater.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityAlert:
		return 2
	case SeverityExceeded:
		return 3
	}
	return 0
}

// Notification is one entry in the capped notification history.
type Notification struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Severity Severity       `json:"severity"`
	Read     bool           `json:"read"`
	Time     time.Time      `json:"time"`
	Data     map[string]any `json:"data,omitempty"`
}
