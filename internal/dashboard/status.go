package dashboard

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusClass is the semantic color class of a status word. Renderers map
// classes to concrete colors.
type StatusClass int

const (
	// Neutral is used for any status the dashboard does not recognize.
	Neutral StatusClass = iota
	Positive
	Caution
	Negative
	Informational
)

var statusClasses = map[string]StatusClass{
	"running":     Positive,
	"connected":   Positive,
	"healthy":     Positive,
	"scheduled":   Caution,
	"pending":     Caution,
	"degraded":    Caution,
	"ready":       Caution,
	"paused":      Negative,
	"offline":     Negative,
	"failed":      Negative,
	"maintenance": Informational,
}

// ClassOf maps a status to its class, ignoring case and surrounding space.
// Every input yields a class.
func ClassOf(status string) StatusClass {
	if class, ok := statusClasses[strings.ToLower(strings.TrimSpace(status))]; ok {
		return class
	}
	return Neutral
}

// String returns a human-readable name for the class.
func (c StatusClass) String() string {
	switch c {
	case Positive:
		return "positive"
	case Caution:
		return "caution"
	case Negative:
		return "negative"
	case Informational:
		return "informational"
	default:
		return "neutral"
	}
}

// Title renders a status for display ("scheduled" -> "Scheduled").
func Title(status string) string {
	return cases.Title(language.Und).String(strings.Join(strings.Fields(status), " "))
}
