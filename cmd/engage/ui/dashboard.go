package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"engagedash/internal/dashboard"
)

// HeaderTimeLayout formats the "Updated" stamp in the header.
const HeaderTimeLayout = "Jan 02, 2006 15:04"

// AllSetMessage is shown in Today's Focus when there are no action items.
const AllSetMessage = "You're all set for today."

// Dashboard renders the full dashboard for a model.
type Dashboard struct {
	Model  *dashboard.Model
	Styles Styles
	Width  int
	Now    time.Time
}

// Render returns the dashboard as a block of styled text.
func (d Dashboard) Render() string {
	width := ResolveWidth(d.Width)
	s := d.Styles

	sections := []string{d.header(width)}

	if width >= 2*MinimumWidth-20 {
		left, right := SplitPaneWidths(width, 0.5)
		leftCol := lipgloss.JoinVertical(lipgloss.Left,
			d.campaignTable().View(s, left), d.segmentTable().View(s, left))
		rightCol := lipgloss.JoinVertical(lipgloss.Left,
			d.templateTable().View(s, right), d.analyticsPanel(right))
		sections = append(sections, joinColumns([]string{leftCol, rightCol}, []int{left, right}))
	} else {
		sections = append(sections,
			d.campaignTable().View(s, width),
			d.segmentTable().View(s, width),
			d.templateTable().View(s, width),
			d.analyticsPanel(width))
	}

	three := ColumnWidths(width, 3)
	sections = append(sections, joinColumns([]string{
		d.connectorTable().View(s, three[0]),
		d.backendTable().View(s, three[1]),
		d.databaseTable().View(s, three[2]),
	}, three))

	two := ColumnWidths(width, 2)
	sections = append(sections, joinColumns([]string{
		d.feedbackTable().View(s, two[0]),
		d.actionsPanel(two[1]),
	}, two))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (d Dashboard) header(width int) string {
	m, s := d.Model, d.Styles
	inner := width - 2*PanelBorderWidth - 2*PanelPaddingH

	title := lipgloss.PlaceHorizontal(inner, lipgloss.Center,
		s.Header.Render(fmt.Sprintf("✦ %s • B2B Engagement Command Center", m.BusinessName())))
	sub := lipgloss.PlaceHorizontal(inner, lipgloss.Right,
		s.Subheader.Render(fmt.Sprintf("%s • Updated %s", m.Owner(), d.Now.Format(HeaderTimeLayout))))

	return s.PanelWith(Amber).Padding(0, PanelPaddingH).Width(width - 2*PanelBorderWidth).
		Render(title + "\n" + sub)
}

func (d Dashboard) campaignTable() *Table {
	t := NewTable("Automation", "Name", "Segment", "Trigger", "Channel", "Template", "Next", "Status")
	for _, c := range d.Model.Campaigns() {
		t.AddRow(c.Name, c.Segment, c.Trigger, c.Channel, c.Template, c.NextSend, d.Styles.Status(c.Status))
	}
	return t
}

func (d Dashboard) segmentTable() *Table {
	t := NewTable("Segments", "Name", "Criteria", "Size").AlignRight(2)
	for _, seg := range d.Model.Segments() {
		criteria := strings.Join(seg.Criteria, ", ")
		if criteria == "" {
			criteria = dashboard.Placeholder
		}
		t.AddRow(seg.Name, criteria, strconv.Itoa(seg.Size))
	}
	return t
}

func (d Dashboard) templateTable() *Table {
	t := NewTable("Creation Studio", "Template", "Medium", "Purpose", "Updated")
	for _, tpl := range d.Model.Templates() {
		t.AddRow(tpl.Name, tpl.Medium, tpl.Purpose, tpl.LastUpdated)
	}
	return t
}

func (d Dashboard) connectorTable() *Table {
	t := NewTable("Connectors", "System", "Status", "Last Sync", "Detail")
	for _, c := range d.Model.Connectors() {
		t.AddRow(c.Name, d.Styles.Status(c.Status), c.LastSync, c.Detail)
	}
	return t
}

func (d Dashboard) backendTable() *Table {
	t := NewTable("Backend Services", "Service", "Status", "Latency (ms)", "Errors", "Version").AlignRight(2)
	for _, b := range d.Model.Backend() {
		t.AddRow(b.Service, d.Styles.Status(b.Status), formatNumber(b.LatencyMS), b.ErrorRate, b.Version)
	}
	return t
}

func (d Dashboard) databaseTable() *Table {
	t := NewTable("Databases", "Name", "Role", "Status", "Storage (GB)", "Connections").AlignRight(3, 4)
	for _, db := range d.Model.Databases() {
		t.AddRow(db.Name, db.Role, d.Styles.Status(db.Status), formatNumber(db.StorageGB), strconv.Itoa(db.Connections))
	}
	return t
}

func (d Dashboard) feedbackTable() *Table {
	t := NewTable("Feedback & Surveys", "Name", "Question", "Last Sent", "Responses").AlignRight(3)
	for _, f := range d.Model.Feedback() {
		t.AddRow(f.Name, f.Question, f.LastSent, strconv.Itoa(f.Responses))
	}
	return t
}

// AnalyticsLines returns the body of the analytics panel.
func AnalyticsLines(m *dashboard.Model) []string {
	lines := []string{
		"Open rate: " + dashboard.FormatPercent(m.OpenRate()),
		"Click rate: " + dashboard.FormatPercent(m.ClickRate()),
		"Reply rate: " + dashboard.FormatPercent(m.ReplyRate()),
		fmt.Sprintf("Conversions this week: %d", m.Conversions()),
	}
	if tests := m.ABTests(); len(tests) > 0 {
		lines = append(lines, "A/B tests:")
		for _, ab := range tests {
			lines = append(lines, fmt.Sprintf(" • %s winner: %s (+%s)", ab.Name, ab.Winner, dashboard.FormatPercent(ab.Uplift)))
		}
	}
	return lines
}

// ActionLines returns the body of the Today's Focus panel.
func ActionLines(m *dashboard.Model) []string {
	actions := m.Actions()
	if len(actions) == 0 {
		return []string{AllSetMessage}
	}
	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, fmt.Sprintf("• %s (due %s)", a.Title, a.Due))
	}
	return lines
}

func (d Dashboard) analyticsPanel(width int) string {
	return d.panel("Analytics & A/B Tests", AnalyticsLines(d.Model), Amber, width)
}

func (d Dashboard) actionsPanel(width int) string {
	return d.panel("Today's Focus", ActionLines(d.Model), Amber, width)
}

func (d Dashboard) panel(title string, lines []string, border lipgloss.Color, width int) string {
	s := d.Styles
	body := s.Title.Foreground(border).Render(title) + "\n\n" + s.Muted.Render(strings.Join(lines, "\n"))
	return s.PanelWith(border).Width(width - 2*PanelBorderWidth).Render(body)
}

// joinColumns places blocks side by side, each padded to its width.
func joinColumns(blocks []string, widths []int) string {
	cols := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			cols = append(cols, strings.Repeat(" ", ColumnGap))
		}
		cols = append(cols, lipgloss.NewStyle().Width(widths[i]).MaxWidth(widths[i]).Render(b))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
