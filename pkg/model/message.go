package model

import "strings"

// MessageLevel mirrors the severity levels of a host's flash message store.
type MessageLevel string

const (
	LevelDebug   MessageLevel = "debug"
	LevelInfo    MessageLevel = "info"
	LevelSuccess MessageLevel = "success"
	LevelWarning MessageLevel = "warning"
	LevelError   MessageLevel = "error"
)

// Message is a one-off notification shown to the user on the next page.
type Message struct {
	Level     MessageLevel `json:"level"`
	Text      string       `json:"text"`
	ExtraTags string       `json:"extraTags,omitempty"`
}

// Tags returns the extra tags followed by the level tag, space separated.
func (m Message) Tags() string {
	parts := strings.Fields(m.ExtraTags)
	if m.Level != "" {
		parts = append(parts, string(m.Level))
	}
	return strings.Join(parts, " ")
}

// AlertClass maps the level onto the Bootstrap alert modifier. Warnings use
// the bare "alert" class.
func (m Message) AlertClass() string {
	switch m.Level {
	case LevelSuccess:
		return "alert-success"
	case LevelError:
		return "alert-error"
	case LevelInfo, LevelDebug:
		return "alert-info"
	default:
		return ""
	}
}
