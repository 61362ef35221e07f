// Package automation turns a free-text creative idea into an automation plan
// by matching it against a fixed, ordered table of keyword rules.
package automation

import (
	"fmt"
	"strings"

	"engagedash/internal/state"
)

// DefaultRule is reported when no keyword rule matches.
const DefaultRule = "Default"

// Values used when no rule matches, or a matched preset leaves a field unset.
const (
	DefaultSegment  = "General Audience"
	DefaultCadence  = "0-7"
	DefaultChannel  = "Email"
	DefaultVariants = 1
)

// Rule pairs a preset identifier with the keywords that select it.
type Rule struct {
	ID       string
	Keywords []string
}

// Rules is evaluated top to bottom; the first rule with a keyword contained
// in the lowercased input wins.
var Rules = []Rule{
	{ID: state.RuleSMBCTO, Keywords: []string{"smb", "cto", "tech lead", "technical", "small business", "medium business"}},
	{ID: state.RuleEnterprise, Keywords: []string{"enterprise", "vp", "sales", "large", "corporation"}},
	{ID: state.RuleDemoVideo, Keywords: []string{"demo", "video", "presentation", "recording", "mp4"}},
}

// Plan is what the system will configure on the user's behalf.
type Plan struct {
	Rule        string   `json:"rule_matched"`
	Segment     string   `json:"segment"`
	Cadence     string   `json:"cadence"`
	Channel     string   `json:"channel"`
	Variants    int      `json:"variants"`
	ABTests     int      `json:"ab_tests,omitempty"`
	Length      int      `json:"length,omitempty"`
	Format      string   `json:"format,omitempty"`
	AutoHandled []string `json:"auto_handled"`
}

// Matcher matches ideas against Rules using a set of presets.
type Matcher struct {
	rules   []Rule
	presets map[string]state.RulePreset
}

// NewMatcher creates a matcher over presets. Rules whose preset is missing
// still match and produce a plan built from defaults.
func NewMatcher(presets map[string]state.RulePreset) *Matcher {
	copied := make(map[string]state.RulePreset, len(presets))
	for id, p := range presets {
		copied[id] = p
	}
	return &Matcher{rules: Rules, presets: copied}
}

// Default returns a matcher over the built-in presets.
func Default() *Matcher {
	return NewMatcher(state.DefaultRulePresets())
}

// MatchRule returns the identifier of the first matching rule.
func (m *Matcher) MatchRule(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range m.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.ID, true
			}
		}
	}
	return "", false
}

// Match builds the plan for text. It has no side effects.
func (m *Matcher) Match(text string) Plan {
	id, ok := m.MatchRule(text)
	if !ok {
		return DefaultPlan()
	}

	preset := m.presets[id]
	plan := Plan{
		Rule:     id,
		Segment:  orString(preset.Segment, DefaultSegment),
		Cadence:  orString(preset.Cadence, DefaultCadence),
		Channel:  orString(preset.Channel, DefaultChannel),
		Variants: orInt(preset.Variants, DefaultVariants),
		ABTests:  preset.ABTests,
		Length:   preset.Length,
		Format:   preset.Format,
	}
	plan.AutoHandled = explain(plan)
	return plan
}

// DefaultPlan is returned when no rule matches.
func DefaultPlan() Plan {
	return Plan{
		Rule:        DefaultRule,
		Segment:     DefaultSegment,
		Cadence:     DefaultCadence,
		Channel:     DefaultChannel,
		Variants:    DefaultVariants,
		AutoHandled: []string{"Segment selection", "Basic scheduling"},
	}
}

// explain lists one line per populated field in a fixed order.
func explain(p Plan) []string {
	var lines []string
	if p.Segment != "" {
		lines = append(lines, fmt.Sprintf("Segment: %s", p.Segment))
	}
	if p.Cadence != "" {
		lines = append(lines, fmt.Sprintf("Cadence: %s days", p.Cadence))
	}
	if p.Channel != "" {
		lines = append(lines, fmt.Sprintf("Channel: %s", p.Channel))
	}
	if p.ABTests > 0 {
		lines = append(lines, fmt.Sprintf("A/B tests: %d variants", p.ABTests))
	}
	if p.Variants > 0 {
		lines = append(lines, fmt.Sprintf("Creative variants: %d", p.Variants))
	}
	if p.Length > 0 {
		lines = append(lines, fmt.Sprintf("Video length: %ds", p.Length))
	}
	if p.Format != "" {
		lines = append(lines, fmt.Sprintf("Format: %s", p.Format))
	}
	return lines
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
