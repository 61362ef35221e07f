// Package state owns the engagement dashboard's persisted document: its record
// types, the sample catalog used to seed it, and the file-backed store that
// loads, saves and resets it.
package state

// DateLayout is the on-disk format for every date field (next_send, due, ...).
const DateLayout = "2006-01-02"

// Campaign statuses accepted at the mutation boundary.
const (
	StatusScheduled = "scheduled"
	StatusReady     = "ready"
	StatusRunning   = "running"
	StatusPaused    = "paused"
)

// CampaignStatuses lists the statuses a new campaign may start in.
var CampaignStatuses = []string{StatusScheduled, StatusReady, StatusRunning, StatusPaused}

// Document is the whole state file. Field names follow the JSON keys written
// by earlier releases so old files keep loading.
type Document struct {
	Profile         Profile               `json:"profile"`
	Segments        []Segment             `json:"segments"`
	Campaigns       []Campaign            `json:"campaigns"`
	Templates       []Template            `json:"templates"`
	Integrations    []Connector           `json:"integrations,omitempty"` // legacy, kept as found
	Connectors      []Connector           `json:"connectors"`
	Backend         []BackendService      `json:"backend"`
	Databases       []DatabaseRecord      `json:"databases"`
	Analytics       AnalyticsSummary      `json:"analytics"`
	Feedback        []FeedbackForm        `json:"feedback"`
	Actions         []ActionItem          `json:"actions"`
	AutomationRules map[string]RulePreset `json:"automation_rules"`

	Extra Extra `json:"-"`
}

// Profile identifies the business the dashboard belongs to.
type Profile struct {
	BusinessName string `json:"business_name"`
	Owner        string `json:"owner"`

	Extra Extra `json:"-"`
}

// Segment is a named audience slice. Campaigns reference it by name.
type Segment struct {
	Name     string   `json:"name"`
	Criteria []string `json:"criteria"`
	Size     int      `json:"size"`

	Extra Extra `json:"-"`
}

// Campaign is one automation. Segment and Template are soft references.
type Campaign struct {
	Name     string `json:"name"`
	Segment  string `json:"segment"`
	Trigger  string `json:"trigger"`
	Channel  string `json:"channel"`
	Template string `json:"template"`
	Status   string `json:"status"`
	NextSend string `json:"next_send"`

	Extra Extra `json:"-"`
}

// Template is a reusable piece of outbound content.
type Template struct {
	Name        string `json:"name"`
	Medium      string `json:"medium"`
	Purpose     string `json:"purpose"`
	LastUpdated string `json:"last_updated"`

	Extra Extra `json:"-"`
}

// Connector is an illustrative integration record; nothing is synced.
type Connector struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	LastSync string `json:"last_sync,omitempty"`
	Detail   string `json:"detail"`

	Extra Extra `json:"-"`
}

// BackendService reports the health of one service.
type BackendService struct {
	Service   string  `json:"service"`
	Status    string  `json:"status"`
	LatencyMS float64 `json:"latency_ms"`
	ErrorRate string  `json:"error_rate"`
	Version   string  `json:"version"`

	Extra Extra `json:"-"`
}

// DatabaseRecord reports the health of one datastore.
type DatabaseRecord struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	StorageGB   float64 `json:"storage_gb"`
	Connections int     `json:"connections"`

	Extra Extra `json:"-"`
}

// AnalyticsSummary holds the engagement rates (fractions in [0,1]).
type AnalyticsSummary struct {
	OpenRate    float64  `json:"open_rate"`
	ClickRate   float64  `json:"click_rate"`
	ReplyRate   float64  `json:"reply_rate"`
	Conversions int      `json:"conversions"`
	ABTests     []ABTest `json:"ab_tests"`

	Extra Extra `json:"-"`
}

// ABTest is a finished experiment and its winning variant.
type ABTest struct {
	Name   string  `json:"name"`
	Winner string  `json:"winner"`
	Uplift float64 `json:"uplift"`

	Extra Extra `json:"-"`
}

// FeedbackForm is a survey sent to contacts.
type FeedbackForm struct {
	Name      string `json:"name"`
	Question  string `json:"question"`
	LastSent  string `json:"last_sent"`
	Responses int    `json:"responses"`

	Extra Extra `json:"-"`
}

// ActionItem is a to-do shown in the "Today's Focus" panel.
type ActionItem struct {
	Title string `json:"title"`
	Due   string `json:"due"`
	Owner string `json:"owner"`

	Extra Extra `json:"-"`
}

// RulePreset configures one automation rule. Zero values mean "not defined
// by this preset" and are omitted on disk.
type RulePreset struct {
	Segment  string `json:"segment,omitempty"`
	Cadence  string `json:"cadence,omitempty"`
	Channel  string `json:"channel,omitempty"`
	ABTests  int    `json:"ab_tests,omitempty"`
	Variants int    `json:"variants,omitempty"`
	Length   int    `json:"length,omitempty"`
	Format   string `json:"format,omitempty"`

	Extra Extra `json:"-"`
}

// normalize replaces absent lists with empty ones so readers never have to
// tell nil from empty. The legacy Integrations list is left as found.
func (d *Document) normalize() {
	if d.Segments == nil {
		d.Segments = []Segment{}
	}
	for i := range d.Segments {
		if d.Segments[i].Criteria == nil {
			d.Segments[i].Criteria = []string{}
		}
	}
	if d.Campaigns == nil {
		d.Campaigns = []Campaign{}
	}
	if d.Templates == nil {
		d.Templates = []Template{}
	}
	if d.Connectors == nil {
		d.Connectors = []Connector{}
	}
	if d.Backend == nil {
		d.Backend = []BackendService{}
	}
	if d.Databases == nil {
		d.Databases = []DatabaseRecord{}
	}
	if d.Analytics.ABTests == nil {
		d.Analytics.ABTests = []ABTest{}
	}
	if d.Feedback == nil {
		d.Feedback = []FeedbackForm{}
	}
	if d.Actions == nil {
		d.Actions = []ActionItem{}
	}
	if d.AutomationRules == nil {
		d.AutomationRules = map[string]RulePreset{}
	}
}
