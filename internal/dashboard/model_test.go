package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engagedash/internal/state"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		status string
		want   StatusClass
	}{
		{"running", Positive},
		{"Connected", Positive},
		{"HEALTHY", Positive},
		{"scheduled", Caution},
		{"pending", Caution},
		{"degraded", Caution},
		{"Ready", Caution},
		{"paused", Negative},
		{"offline", Negative},
		{"failed", Negative},
		{"maintenance", Informational},
		{" running ", Positive},
		{"archived", Neutral},
		{"", Neutral},
		{"—", Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassOf(tt.status))
		})
	}
}

func TestStatusClassString(t *testing.T) {
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "informational", Informational.String())
	assert.Equal(t, "neutral", StatusClass(42).String())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Scheduled", Title("scheduled"))
	assert.Equal(t, "Needs Review", Title("NEEDS review"))
	assert.Equal(t, "", Title(""))
	assert.Equal(t, "Élan", Title("élan"))
	assert.Equal(t, "ǅungla Run", Title("  ǆungla   run "), "digraphs take their titlecase form")
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "46.0%", FormatPercent(0.46))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "12.5%", FormatPercent(0.125))
}

func TestModel_EmptyDocument(t *testing.T) {
	m := New(nil)

	assert.Equal(t, DefaultBusinessName, m.BusinessName())
	assert.Equal(t, DefaultOwner, m.Owner())
	assert.Zero(t, m.OpenRate())
	assert.Zero(t, m.Conversions())

	assert.NotNil(t, m.Segments())
	assert.NotNil(t, m.Campaigns())
	assert.NotNil(t, m.Templates())
	assert.NotNil(t, m.Connectors())
	assert.NotNil(t, m.Backend())
	assert.NotNil(t, m.Databases())
	assert.NotNil(t, m.ABTests())
	assert.NotNil(t, m.Feedback())
	assert.NotNil(t, m.Actions())
	assert.Empty(t, m.Campaigns())
}

func TestModel_FillsBlanks(t *testing.T) {
	doc := &state.Document{
		Campaigns:  []state.Campaign{{Name: "Only name"}},
		Connectors: []state.Connector{{Name: "x"}},
		Actions:    []state.ActionItem{{}},
	}
	m := New(doc)

	c := m.Campaigns()[0]
	assert.Equal(t, "Only name", c.Name)
	assert.Equal(t, Placeholder, c.Segment)
	assert.Equal(t, Placeholder, c.NextSend)
	assert.Equal(t, UnknownStatus, c.Status)

	conn := m.Connectors()[0]
	assert.Equal(t, UnknownStatus, conn.Status)
	assert.Equal(t, Placeholder, conn.LastSync)

	assert.Equal(t, UntitledAction, m.Actions()[0].Title)

	// The document itself is untouched.
	assert.Equal(t, "", doc.Campaigns[0].Segment)
}

func TestModel_ConnectorsFallBackToIntegrations(t *testing.T) {
	doc := &state.Document{
		Integrations: []state.Connector{{Name: "CRM (HubSpot)", Status: "connected"}},
	}
	got := New(doc).Connectors()

	require.Len(t, got, 1)
	assert.Equal(t, "CRM (HubSpot)", got[0].Name)

	doc.Connectors = []state.Connector{}
	assert.Empty(t, New(doc).Connectors())
}

func TestModel_Summary(t *testing.T) {
	doc := state.Sample(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	summary := New(doc).Summary()

	assert.Contains(t, summary, "Acme Components • You")
	assert.Contains(t, summary, "Campaigns: 3 (ready 1, running 1, scheduled 1)")
	assert.Contains(t, summary, "Segments: 3 (64 contacts)")
	assert.Contains(t, summary, "Connectors: 3 (2 connected)")
	assert.Contains(t, summary, "Backend: 2 services, 1 need attention")
	assert.Contains(t, summary, "Open 46.0% • Click 23.0% • Reply 14.0% • Conversions 5")
}

func TestModel_CampaignsByStatusIgnoresCase(t *testing.T) {
	doc := &state.Document{Campaigns: []state.Campaign{
		{Status: "Running"}, {Status: "running"}, {Status: "paused"},
	}}
	counts := New(doc).CampaignsByStatus()

	assert.Equal(t, map[string]int{"running": 2, "paused": 1}, counts)
}
