package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"engagedash/internal/automation"
	"engagedash/internal/campaign"
	"engagedash/internal/config"
	"engagedash/internal/state"
)

var fixedNow = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

// useTestConfig points the globals at a temp state file and a fixed clock.
func useTestConfig(t *testing.T) string {
	t.Helper()
	cfg = config.DefaultConfig()
	cfg.StatePath = filepath.Join(t.TempDir(), "data", "state.json")
	cfg.UI.Theme = config.ThemeDark
	cfg.UI.Width = 400
	cfg.Watch.Debounce = "50ms"
	logger = zap.NewNop()
	clock = func() time.Time { return fixedNow }
	t.Cleanup(func() { clock = time.Now })
	return cfg.StatePath
}

func newTestCommand(input string) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(input))
	return cmd, &out
}

func TestRunDashboard_SeedsState(t *testing.T) {
	path := useTestConfig(t)
	cmd, out := newTestCommand("")

	require.NoError(t, runDashboard(cmd, nil))

	assert.Contains(t, out.String(), "Acme Components")
	assert.Contains(t, out.String(), "Today's Focus")
	assert.FileExists(t, path)
}

func TestRunSummary_Plain(t *testing.T) {
	useTestConfig(t)
	summaryPlain = true
	t.Cleanup(func() { summaryPlain = false })
	cmd, out := newTestCommand("")

	require.NoError(t, runSummary(cmd, nil))

	assert.Contains(t, out.String(), "Acme Components • You")
	assert.Contains(t, out.String(), "Campaigns: 3 (ready 1, running 1, scheduled 1)")
	assert.NotContains(t, out.String(), "Command Center")
}

func TestRunReset(t *testing.T) {
	path := useTestConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{"campaigns": []}`), 0644))
	cmd, out := newTestCommand("")

	require.NoError(t, runReset(cmd, nil))

	assert.Contains(t, out.String(), "Sample data restored to "+path)
	doc := state.NewStore(path).Load()
	assert.Len(t, doc.Campaigns, 3)
}

func TestRunCampaignAdd(t *testing.T) {
	path := useTestConfig(t)
	campaignFields = campaign.Fields{
		Name:     "Q3 Nurture",
		Segment:  "New Leads",
		Trigger:  "Signed up",
		Channel:  "Email",
		Template: "Welcome Series",
		Status:   "scheduled",
	}
	t.Cleanup(func() { campaignFields = campaign.Fields{} })
	cmd, out := newTestCommand("")

	require.NoError(t, runCampaignAdd(cmd, nil))

	assert.Contains(t, out.String(), `Added campaign "Q3 Nurture" for New Leads (scheduled, next send 2024-03-01)`)
	doc := state.NewStore(path).Load()
	require.Len(t, doc.Campaigns, 4)
	assert.Equal(t, "Q3 Nurture", doc.Campaigns[3].Name)
	assert.Equal(t, "2024-03-01", doc.Campaigns[3].NextSend)
}

func TestRunCampaignAdd_MissingFields(t *testing.T) {
	path := useTestConfig(t)
	campaignFields = campaign.Fields{Name: "Solo", Segment: "New Leads", Status: "scheduled"}
	t.Cleanup(func() { campaignFields = campaign.Fields{} })
	cmd, _ := newTestCommand("")

	err := runCampaignAdd(cmd, nil)

	require.Error(t, err)
	assert.Equal(t, "missing required fields for campaign: trigger, channel, template", err.Error())
	assert.NoFileExists(t, path, "validation failures must not touch the state file")
}

func TestRunCampaignAdd_BadDate(t *testing.T) {
	path := useTestConfig(t)
	campaignFields = campaign.Fields{
		Name: "A", Segment: "B", Trigger: "C", Channel: "D", Template: "E",
		Status: "scheduled", NextSend: "2024-02-30",
	}
	t.Cleanup(func() { campaignFields = campaign.Fields{} })
	cmd, _ := newTestCommand("")

	err := runCampaignAdd(cmd, nil)

	var verr *campaign.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "next_send", verr.Field)
	assert.NoFileExists(t, path)
}

func TestRunSnapshot(t *testing.T) {
	useTestConfig(t)
	snapshotPath = filepath.Join(t.TempDir(), "docs", "dash.svg")
	t.Cleanup(func() { snapshotPath = "" })
	cmd, out := newTestCommand("")

	require.NoError(t, runSnapshot(cmd, nil))

	assert.Contains(t, out.String(), "Saved snapshot to "+snapshotPath)
	data, err := os.ReadFile(snapshotPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme Components")
}

func TestRunSnapshot_RejectsExtension(t *testing.T) {
	path := useTestConfig(t)
	snapshotPath = filepath.Join(t.TempDir(), "dash.jpg")
	t.Cleanup(func() { snapshotPath = "" })
	cmd, _ := newTestCommand("")

	assert.Error(t, runSnapshot(cmd, nil))
	assert.NoFileExists(t, path)
}

func TestRunCreative_JSON(t *testing.T) {
	useTestConfig(t)
	creativeJSON = true
	t.Cleanup(func() { creativeJSON = false })
	cmd, out := newTestCommand("")

	require.NoError(t, runCreative(cmd, []string{"product", "demo", "video"}))

	var plan automation.Plan
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	assert.Equal(t, "Demo_video", plan.Rule)
	assert.Equal(t, 90, plan.Length)
	assert.Equal(t, "MP4 vertical", plan.Format)
}

func TestRunCreative_PipedPrompt(t *testing.T) {
	useTestConfig(t)
	cmd, out := newTestCommand("webinar for a CTO\n")

	require.NoError(t, runCreative(cmd, nil))

	assert.Contains(t, out.String(), "What's your creative idea?")
	assert.Contains(t, out.String(), "Auto-magic Status")
	assert.Contains(t, out.String(), "SMB_CTO")
}

func TestRunCreative_EmptyInputCancels(t *testing.T) {
	path := useTestConfig(t)
	cmd, _ := newTestCommand("")

	require.NoError(t, runCreative(cmd, nil))
	assert.NoFileExists(t, path)
}

func TestMatcherFor_UsesStoredPresets(t *testing.T) {
	doc := state.Sample(fixedNow)
	doc.AutomationRules[state.RuleEnterprise] = state.RulePreset{Segment: "Board members"}

	plan := matcherFor(doc).Match("enterprise")
	assert.Equal(t, "Board members", plan.Segment)

	plan = matcherFor(&state.Document{}).Match("enterprise")
	assert.Equal(t, "VP Sales", plan.Segment)
}

func TestSetup(t *testing.T) {
	for _, key := range []string{"ENGAGE_STATE_PATH", "ENGAGE_SNAPSHOT_PATH", "ENGAGE_THEME", "ENGAGE_LOG_LEVEL", "ENGAGE_WIDTH"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	cfgFile = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("ui:\n  theme: light\n  width: 120\n"), 0644))
	statePath = filepath.Join(dir, "custom.json")
	verbose = true
	darkMode = true
	t.Cleanup(func() {
		cfgFile, statePath, verbose, darkMode = "", "", false, false
	})

	require.NoError(t, setup())

	assert.Equal(t, statePath, cfg.StatePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, config.ThemeDark, cfg.UI.Theme, "--dark wins over the file")
	assert.Equal(t, 120, cfg.UI.Width)
	assert.NotNil(t, logger)
}

func TestSetup_InvalidConfig(t *testing.T) {
	t.Setenv("ENGAGE_SNAPSHOT_PATH", "")
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("snapshot_path: out.gif\n"), 0644))
	t.Cleanup(func() { cfgFile = "" })

	assert.Error(t, setup())
}

// syncBuffer lets the watcher goroutine write while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchState_RedrawsOnChange(t *testing.T) {
	path := useTestConfig(t)
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- watchState(ctx, out) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Acme Components") },
		3*time.Second, 20*time.Millisecond)
	// Let the watcher register before writing.
	time.Sleep(100 * time.Millisecond)

	doc := state.Sample(fixedNow)
	doc.Profile.BusinessName = "Globex"
	require.NoError(t, state.NewStore(path).Save(doc))

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Globex") },
		3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watchState did not return after cancel")
	}
}
