// Package dashboard shapes a state document for presentation. It is the one
// place that decides what a missing value looks like, so renderers never
// deal with blanks or nil lists.
package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"engagedash/internal/state"
)

// Defaults shown in place of missing values.
const (
	Placeholder         = "—"
	UnknownStatus       = "unknown"
	DefaultBusinessName = "B2B Dashboard"
	DefaultOwner        = "Owner"
	UntitledAction      = "Untitled"
)

// Model is a read-only view over a state document.
type Model struct {
	doc *state.Document
}

// New wraps doc. A nil document behaves like an empty one.
func New(doc *state.Document) *Model {
	if doc == nil {
		doc = &state.Document{}
	}
	return &Model{doc: doc}
}

// BusinessName returns the profile's business name.
func (m *Model) BusinessName() string {
	return or(m.doc.Profile.BusinessName, DefaultBusinessName)
}

// Owner returns the profile's owner.
func (m *Model) Owner() string {
	return or(m.doc.Profile.Owner, DefaultOwner)
}

func (m *Model) OpenRate() float64  { return m.doc.Analytics.OpenRate }
func (m *Model) ClickRate() float64 { return m.doc.Analytics.ClickRate }
func (m *Model) ReplyRate() float64 { return m.doc.Analytics.ReplyRate }
func (m *Model) Conversions() int   { return m.doc.Analytics.Conversions }

// Segments returns the audience segments.
func (m *Model) Segments() []state.Segment {
	out := make([]state.Segment, 0, len(m.doc.Segments))
	for _, s := range m.doc.Segments {
		s.Name = or(s.Name, Placeholder)
		s.Criteria = append([]string{}, s.Criteria...)
		out = append(out, s)
	}
	return out
}

// Campaigns returns the campaigns in stored order.
func (m *Model) Campaigns() []state.Campaign {
	out := make([]state.Campaign, 0, len(m.doc.Campaigns))
	for _, c := range m.doc.Campaigns {
		c.Name = or(c.Name, Placeholder)
		c.Segment = or(c.Segment, Placeholder)
		c.Trigger = or(c.Trigger, Placeholder)
		c.Channel = or(c.Channel, Placeholder)
		c.Template = or(c.Template, Placeholder)
		c.NextSend = or(c.NextSend, Placeholder)
		c.Status = or(c.Status, UnknownStatus)
		out = append(out, c)
	}
	return out
}

// Templates returns the content templates.
func (m *Model) Templates() []state.Template {
	out := make([]state.Template, 0, len(m.doc.Templates))
	for _, t := range m.doc.Templates {
		t.Name = or(t.Name, Placeholder)
		t.Medium = or(t.Medium, Placeholder)
		t.Purpose = or(t.Purpose, Placeholder)
		t.LastUpdated = or(t.LastUpdated, Placeholder)
		out = append(out, t)
	}
	return out
}

// Connectors returns the connector list, falling back to the legacy
// integrations list for documents that never had connectors.
func (m *Model) Connectors() []state.Connector {
	src := m.doc.Connectors
	if src == nil {
		src = m.doc.Integrations
	}
	out := make([]state.Connector, 0, len(src))
	for _, c := range src {
		c.Name = or(c.Name, Placeholder)
		c.Status = or(c.Status, UnknownStatus)
		c.LastSync = or(c.LastSync, Placeholder)
		c.Detail = or(c.Detail, Placeholder)
		out = append(out, c)
	}
	return out
}

// Backend returns the backend service health records.
func (m *Model) Backend() []state.BackendService {
	out := make([]state.BackendService, 0, len(m.doc.Backend))
	for _, b := range m.doc.Backend {
		b.Service = or(b.Service, Placeholder)
		b.Status = or(b.Status, UnknownStatus)
		b.ErrorRate = or(b.ErrorRate, Placeholder)
		b.Version = or(b.Version, Placeholder)
		out = append(out, b)
	}
	return out
}

// Databases returns the datastore health records.
func (m *Model) Databases() []state.DatabaseRecord {
	out := make([]state.DatabaseRecord, 0, len(m.doc.Databases))
	for _, d := range m.doc.Databases {
		d.Name = or(d.Name, Placeholder)
		d.Role = or(d.Role, Placeholder)
		d.Status = or(d.Status, UnknownStatus)
		out = append(out, d)
	}
	return out
}

// ABTests returns the finished A/B tests.
func (m *Model) ABTests() []state.ABTest {
	out := make([]state.ABTest, 0, len(m.doc.Analytics.ABTests))
	for _, t := range m.doc.Analytics.ABTests {
		t.Name = or(t.Name, Placeholder)
		t.Winner = or(t.Winner, Placeholder)
		out = append(out, t)
	}
	return out
}

// Feedback returns the survey forms.
func (m *Model) Feedback() []state.FeedbackForm {
	out := make([]state.FeedbackForm, 0, len(m.doc.Feedback))
	for _, f := range m.doc.Feedback {
		f.Name = or(f.Name, Placeholder)
		f.Question = or(f.Question, Placeholder)
		f.LastSent = or(f.LastSent, Placeholder)
		out = append(out, f)
	}
	return out
}

// Actions returns the action items.
func (m *Model) Actions() []state.ActionItem {
	out := make([]state.ActionItem, 0, len(m.doc.Actions))
	for _, a := range m.doc.Actions {
		a.Title = or(a.Title, UntitledAction)
		a.Due = or(a.Due, Placeholder)
		a.Owner = or(a.Owner, Placeholder)
		out = append(out, a)
	}
	return out
}

// CampaignsByStatus counts campaigns per lowercased status.
func (m *Model) CampaignsByStatus() map[string]int {
	counts := make(map[string]int)
	for _, c := range m.Campaigns() {
		counts[strings.ToLower(c.Status)]++
	}
	return counts
}

// Summary renders a short plain-text digest of the document.
func (m *Model) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s • %s\n", m.BusinessName(), m.Owner())

	byStatus := m.CampaignsByStatus()
	statuses := make([]string, 0, len(byStatus))
	for s := range byStatus {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, fmt.Sprintf("%s %d", s, byStatus[s]))
	}
	fmt.Fprintf(&sb, "Campaigns: %d", len(m.doc.Campaigns))
	if len(parts) > 0 {
		fmt.Fprintf(&sb, " (%s)", strings.Join(parts, ", "))
	}
	sb.WriteString("\n")

	contacts := 0
	for _, s := range m.doc.Segments {
		contacts += s.Size
	}
	fmt.Fprintf(&sb, "Segments: %d (%d contacts)\n", len(m.doc.Segments), contacts)
	fmt.Fprintf(&sb, "Templates: %d\n", len(m.doc.Templates))

	connectors := m.Connectors()
	fmt.Fprintf(&sb, "Connectors: %d (%d connected)\n", len(connectors), countClass(connectors, func(c state.Connector) string { return c.Status }, Positive))

	backend := m.Backend()
	attention := len(backend) - countClass(backend, func(b state.BackendService) string { return b.Status }, Positive)
	fmt.Fprintf(&sb, "Backend: %d services, %d need attention\n", len(backend), attention)
	fmt.Fprintf(&sb, "Databases: %d\n", len(m.doc.Databases))

	fmt.Fprintf(&sb, "Open %s • Click %s • Reply %s • Conversions %d\n",
		FormatPercent(m.OpenRate()), FormatPercent(m.ClickRate()), FormatPercent(m.ReplyRate()), m.Conversions())
	fmt.Fprintf(&sb, "Actions: %d\n", len(m.doc.Actions))

	return sb.String()
}

// FormatPercent renders a fraction as a percentage with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func countClass[T any](items []T, status func(T) string, class StatusClass) int {
	n := 0
	for _, item := range items {
		if ClassOf(status(item)) == class {
			n++
		}
	}
	return n
}

func or(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
