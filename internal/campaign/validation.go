package campaign

import (
	"fmt"
	"strings"
	"time"

	"engagedash/internal/state"
)

// ValidationError describes every problem found with a campaign's fields.
type ValidationError struct {
	// Missing lists blank required fields in declaration order.
	Missing []string
	// Field and Reason describe a single malformed value.
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required fields for campaign: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks f without touching any state. Required fields are reported
// together; the status and date checks run only once they are all present.
func Validate(f Fields) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"segment", f.Segment},
		{"trigger", f.Trigger},
		{"channel", f.Channel},
		{"template", f.Template},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if err := ValidateStatus(f.Status); err != nil {
		return err
	}
	return ValidateDate(f.NextSend)
}

// ValidateStatus accepts a blank status or one of state.CampaignStatuses,
// ignoring case. Padded values are rejected.
func ValidateStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return nil
	}
	for _, s := range state.CampaignStatuses {
		if strings.EqualFold(status, s) {
			return nil
		}
	}
	return &ValidationError{
		Field:  "status",
		Reason: fmt.Sprintf("%q is not one of %s", status, strings.Join(state.CampaignStatuses, ", ")),
	}
}

// ValidateDate accepts a blank value or a real calendar date in YYYY-MM-DD.
func ValidateDate(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := time.Parse(state.DateLayout, value); err != nil {
		return &ValidationError{
			Field:  "next_send",
			Reason: fmt.Sprintf("%q is not a date, use YYYY-MM-DD", value),
		}
	}
	return nil
}
