package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"engagedash/internal/automation"
)

// ScriptMarkdown is the editable script outline shown in the studio.
const ScriptMarkdown = `- **Opening hook**: Grab attention in first 3 seconds
- **Problem statement**: What pain point are we solving?
- **Solution demo**: Show the product in action
- **Call to action**: Book a demo / Start trial
`

// Studio renders the Creation Studio and Auto-magic Status split.
type Studio struct {
	Idea   string
	Plan   automation.Plan
	Styles Styles
	Width  int
	// Ratio is the studio pane's share of the width.
	Ratio float64
}

// Render returns the header, the two panes and the closing hint.
func (st Studio) Render() (string, error) {
	width := ResolveWidth(st.Width)
	s := st.Styles
	left, right := SplitPaneWidths(width, st.Ratio)

	script, err := renderMarkdown(ScriptMarkdown, PanelContentWidth(left), s.Theme.IsDark)
	if err != nil {
		return "", err
	}

	leftBody := st.studioBody(script)
	rightBody := st.statusBody()
	height := max(lipgloss.Height(leftBody), lipgloss.Height(rightBody))

	studio := s.PanelWith(Cyan).Width(left - 2*PanelBorderWidth).Height(height).Render(leftBody)
	status := s.PanelWith(Amber).Width(right - 2*PanelBorderWidth).Height(height).Render(rightBody)

	header := s.PanelWith(Amber).Padding(0, PanelPaddingH).Width(width - 2*PanelBorderWidth).
		Render(lipgloss.PlaceHorizontal(width-2*PanelBorderWidth-2*PanelPaddingH, lipgloss.Center,
			s.Header.Render("✦ Creative Mode • Easy Campaign Creation")))

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, studio, strings.Repeat(" ", ColumnGap), status))
	sb.WriteString("\n\n")
	sb.WriteString(s.Muted.Faint(true).Render("The system has handled the dirty work (segments, scheduling, syncs) automatically."))
	sb.WriteString("\n")
	sb.WriteString(s.Success.Render("Press Launch when ready to deploy your campaign!"))
	sb.WriteString("\n")
	return sb.String(), nil
}

func (st Studio) studioBody(script string) string {
	s := st.Styles
	heading := func(c lipgloss.Color, text string) string {
		return lipgloss.NewStyle().Foreground(c).Bold(true).Render(text)
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(Cyan).Bold(true).Render("Creation Studio"),
		"",
		heading(Cyan, "Your Creative Idea:"),
		"  " + s.Body.Render(st.Idea),
		"",
		heading(Green, "Script (editable):"),
		strings.Trim(script, "\n"),
		"",
		heading(Purple, "Thumbnails:"),
		"  [Thumbnail A] Bold text with product screenshot",
		"  [Thumbnail B] Face + emotion-driven design",
		"",
		heading(Amber, "Voiceover:"),
		"  Professional voice (auto-generated available)",
		"",
		heading(Green, "Actions:"),
		"  [Launch] Deploy campaign (segments, timing, syncs handled)",
		"  [Preview] See how it looks across channels",
		"  [Edit] Modify script, thumbnails, or voiceover",
	}
	return strings.Join(lines, "\n")
}

// StatusLines returns the plain body of the Auto-magic Status pane.
func StatusLines(plan automation.Plan) []string {
	rule := plan.Rule
	if rule == "" {
		rule = "None"
	}
	lines := []string{"Rule Matched:", "  " + rule, "", "Auto-handled:"}
	if len(plan.AutoHandled) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, item := range plan.AutoHandled {
		lines = append(lines, "  ✓ "+item)
	}
	return append(lines, "",
		"Status:",
		"  ✓ Segments configured",
		"  ✓ Scheduling ready",
		"  ✓ Syncs prepared",
		"  → Ready to launch!")
}

func (st Studio) statusBody() string {
	headings := map[string]lipgloss.Color{
		"Rule Matched:": Purple,
		"Auto-handled:": Green,
		"Status:":       Amber,
	}
	lines := StatusLines(st.Plan)
	for i, l := range lines {
		if c, ok := headings[l]; ok {
			lines[i] = lipgloss.NewStyle().Foreground(c).Bold(true).Render(l)
		}
	}
	title := lipgloss.NewStyle().Foreground(Amber).Bold(true).Render("Auto-magic Status")
	return title + "\n\n" + strings.Join(lines, "\n")
}

func renderMarkdown(md string, wrap int, dark bool) (string, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render script: %w", err)
	}
	return out, nil
}
