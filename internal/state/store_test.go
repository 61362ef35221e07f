package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "state.json")
	return NewStore(path, WithClock(fixedClock))
}

func TestLoad_MissingFileSeedsSample(t *testing.T) {
	store := newTestStore(t)

	doc := store.Load()

	want := Sample(fixedNow)
	want.normalize()
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("loaded document differs from sample (-want +got):\n%s", diff)
	}
	_, err := os.Stat(store.Path())
	require.NoError(t, err, "sample should be persisted")

	again := store.Load()
	if diff := cmp.Diff(doc, again); diff != "" {
		t.Fatalf("second load differs (-first +second):\n%s", diff)
	}
}

func TestLoad_CorruptFileBackedUpAndReset(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	bad := []byte(`{"campaigns": [`)
	require.NoError(t, os.WriteFile(store.Path(), bad, 0644))

	doc := store.Load()

	assert.Len(t, doc.Campaigns, 3)
	backup, err := os.ReadFile(BackupPath(store.Path(), fixedNow))
	require.NoError(t, err)
	assert.Equal(t, bad, backup)

	reloaded := store.Load()
	if diff := cmp.Diff(doc, reloaded); diff != "" {
		t.Fatalf("reset was not persisted (-want +got):\n%s", diff)
	}
}

func TestLoad_CorruptFileWithoutBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStore(path, WithClock(fixedClock), WithBackupCorrupt(false))
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	doc := store.Load()

	assert.Equal(t, "Acme Components", doc.Profile.BusinessName)
	_, err := os.Stat(BackupPath(path, fixedNow))
	assert.True(t, os.IsNotExist(err), "no backup expected")
}

func TestLoad_WrongShapeFallsBack(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"campaigns": "none"}`), 0644))

	doc := store.Load()

	assert.Len(t, doc.Campaigns, 3)
	assert.FileExists(t, BackupPath(store.Path(), fixedNow))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	doc := Sample(fixedNow)
	doc.normalize()
	doc.Campaigns = append(doc.Campaigns, Campaign{
		Name:     "Launch <beta>",
		Segment:  "New Leads",
		Trigger:  "Manual",
		Channel:  "Email",
		Template: "Welcome Series",
		Status:   "Paused",
		NextSend: "2024-03-09",
	})
	doc.AutomationRules["Custom"] = RulePreset{Channel: "SMS"}

	require.NoError(t, store.Save(doc))
	loaded := store.Load()

	if diff := cmp.Diff(doc, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoad_LegacyIntegrationsFallback(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	legacy := `{
  "profile": {"business_name": "Old Co", "owner": "Sam"},
  "integrations": [
    {"name": "CRM (HubSpot)", "status": "connected", "detail": "API token valid"}
  ]
}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(legacy), 0644))

	doc := store.Load()

	require.Len(t, doc.Connectors, 1)
	assert.Equal(t, "CRM (HubSpot)", doc.Connectors[0].Name)
	assert.Equal(t, "Old Co", doc.Profile.BusinessName)
	assert.NotNil(t, doc.Campaigns)
	assert.Empty(t, doc.Campaigns)
}

func TestDecode_ConnectorsWinOverIntegrations(t *testing.T) {
	doc, err := Decode([]byte(`{"integrations": [{"name": "old"}], "connectors": []}`))
	require.NoError(t, err)

	assert.NotNil(t, doc.Connectors)
	assert.Empty(t, doc.Connectors)
	require.Len(t, doc.Integrations, 1)
}

func TestDecode_NullConnectorsUseIntegrations(t *testing.T) {
	doc, err := Decode([]byte(`{"integrations": [{"name": "old"}], "connectors": null}`))
	require.NoError(t, err)

	require.Len(t, doc.Connectors, 1)
	assert.Equal(t, "old", doc.Connectors[0].Name)
}

func TestDecode_NormalizesLists(t *testing.T) {
	doc, err := Decode([]byte(`{"segments": [{"name": "x"}]}`))
	require.NoError(t, err)

	assert.NotNil(t, doc.Segments[0].Criteria)
	assert.NotNil(t, doc.Templates)
	assert.NotNil(t, doc.Backend)
	assert.NotNil(t, doc.Databases)
	assert.NotNil(t, doc.Feedback)
	assert.NotNil(t, doc.Actions)
	assert.NotNil(t, doc.Analytics.ABTests)
	assert.NotNil(t, doc.AutomationRules)
}

func TestSave_NilDocument(t *testing.T) {
	store := newTestStore(t)
	assert.Error(t, store.Save(nil))
}

func TestSave_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	store := NewStore(filepath.Join(blocker, "state.json"), WithClock(fixedClock))

	err := store.Save(Sample(fixedNow))
	assert.Error(t, err)

	// Load still answers with sample data.
	doc := store.Load()
	assert.Len(t, doc.Campaigns, 3)
}

func TestCheckShape(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "empty object", data: `{}`},
		{name: "sample-like", data: `{"segments": [{"name": "a", "criteria": ["b"], "size": 3}]}`},
		{name: "null lists", data: `{"campaigns": null, "connectors": null}`},
		{name: "not json", data: `{{`, wantErr: true},
		{name: "top-level array", data: `[]`, wantErr: true},
		{name: "size as text", data: `{"segments": [{"size": "34"}]}`, wantErr: true},
		{name: "rule preset with text length", data: `{"automation_rules": {"x": {"length": "90"}}}`, wantErr: true},
		{name: "whole-number float size", data: `{"segments": [{"name": "a", "size": 34.0}]}`},
		{name: "fractional size", data: `{"segments": [{"name": "a", "size": 34.5}]}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckShape([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadSave_KeepsUnknownKeys(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	input := `{
  "profile": {"business_name": "Mine", "owner": "Ana", "region": "EU"},
  "notes": "keep me",
  "campaigns": [
    {"name": "Nurture", "segment": "New Leads", "trigger": "Signup", "channel": "Email",
     "template": "Welcome Series", "status": "ready", "next_send": "2024-03-04", "budget": 500}
  ],
  "automation_rules": {"Custom": {"channel": "SMS", "owner": "ops"}}
}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(input), 0644))

	doc := store.Load()
	require.Equal(t, "Mine", doc.Profile.BusinessName)
	require.Len(t, doc.Campaigns, 1)
	assert.JSONEq(t, `"EU"`, string(doc.Profile.Extra["region"]))
	assert.JSONEq(t, `500`, string(doc.Campaigns[0].Extra["budget"]))

	doc.Campaigns = append(doc.Campaigns, Campaign{Name: "Second", Status: StatusPaused})
	require.NoError(t, store.Save(doc))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "keep me", saved["notes"])
	assert.Equal(t, "EU", saved["profile"].(map[string]any)["region"])
	campaigns := saved["campaigns"].([]any)
	require.Len(t, campaigns, 2)
	assert.Equal(t, float64(500), campaigns[0].(map[string]any)["budget"])
	assert.NotContains(t, campaigns[1].(map[string]any), "budget")
	rule := saved["automation_rules"].(map[string]any)["Custom"].(map[string]any)
	assert.Equal(t, "ops", rule["owner"])

	reloaded := store.Load()
	if diff := cmp.Diff(doc, reloaded); diff != "" {
		t.Fatalf("unknown keys lost across save (-saved +loaded):\n%s", diff)
	}
}

func TestDecode_ModelledKeysHaveNoExtra(t *testing.T) {
	data, err := Encode(Sample(fixedNow))
	require.NoError(t, err)

	doc, err := Decode(data)
	require.NoError(t, err)

	assert.Nil(t, doc.Extra)
	assert.Nil(t, doc.Profile.Extra)
	for _, c := range doc.Campaigns {
		assert.Nil(t, c.Extra, c.Name)
	}
}

func TestLoad_WholeNumberFloatCounts(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	input := `{
  "profile": {"business_name": "Mine"},
  "segments": [{"name": "a", "size": 34.0}],
  "databases": [{"name": "db", "connections": 12.0}],
  "analytics": {"conversions": 7.0},
  "feedback": [{"name": "NPS", "responses": 3.0}],
  "automation_rules": {"x": {"ab_tests": 2.0, "variants": 3.0, "length": 90.0}}
}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(input), 0644))

	doc := store.Load()

	assert.Equal(t, "Mine", doc.Profile.BusinessName)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, 34, doc.Segments[0].Size)
	assert.Equal(t, 12, doc.Databases[0].Connections)
	assert.Equal(t, 7, doc.Analytics.Conversions)
	assert.Equal(t, 3, doc.Feedback[0].Responses)
	assert.Equal(t, RulePreset{ABTests: 2, Variants: 3, Length: 90}, doc.AutomationRules["x"])
	_, err := os.Stat(BackupPath(store.Path(), fixedNow))
	assert.True(t, os.IsNotExist(err), "file must not be treated as corrupt")
}

func TestDecode_FractionalCountRejected(t *testing.T) {
	_, err := Decode([]byte(`{"segments": [{"name": "a", "size": 34.5}]}`))
	assert.Error(t, err)
}

func TestEncode_EmptyIntegrationsSurvive(t *testing.T) {
	doc := Sample(fixedNow)
	doc.Integrations = []Connector{}

	data, err := Encode(doc)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.NotNil(t, decoded.Integrations)
	assert.Empty(t, decoded.Integrations)

	doc.Integrations = nil
	data, err = Encode(doc)
	require.NoError(t, err)
	decoded, err = Decode(data)
	require.NoError(t, err)
	assert.Nil(t, decoded.Integrations)
}
