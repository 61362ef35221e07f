package state

import "time"

// Automation rule identifiers shipped with the sample catalog.
const (
	RuleSMBCTO     = "SMB_CTO"
	RuleEnterprise = "Enterprise"
	RuleDemoVideo  = "Demo_video"
)

// DefaultRulePresets returns the built-in automation rule presets.
func DefaultRulePresets() map[string]RulePreset {
	return map[string]RulePreset{
		RuleSMBCTO:     {Segment: "Tech Leads", Cadence: "0-3-7", Channel: "Email+LinkedIn"},
		RuleEnterprise: {Segment: "VP Sales", Cadence: "0-5-14-30", ABTests: 3},
		RuleDemoVideo:  {Variants: 2, Length: 90, Format: "MP4 vertical"},
	}
}

// Sample builds the seed document. Only next_send, due and the various
// "updated/sent/synced" dates depend on now; they are today or tomorrow in
// now's location.
func Sample(now time.Time) *Document {
	y, m, d := now.Date()
	todayDate := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	today := todayDate.Format(DateLayout)
	tomorrow := todayDate.AddDate(0, 0, 1).Format(DateLayout)

	doc := &Document{
		Profile: Profile{BusinessName: "Acme Components", Owner: "You"},
		Segments: []Segment{
			{Name: "New Leads", Criteria: []string{"Created < 30 days", "Matches ICP industries"}, Size: 34},
			{Name: "Active Customers", Criteria: []string{"Touched product in last 14 days"}, Size: 18},
			{Name: "Dormant Accounts", Criteria: []string{"No activity > 30 days"}, Size: 12},
		},
		Campaigns: []Campaign{
			{
				Name:     "Onboarding Drip",
				Segment:  "New Leads",
				Trigger:  "Sign-up form",
				Channel:  "Email",
				Template: "Welcome Series",
				Status:   StatusScheduled,
				NextSend: tomorrow,
			},
			{
				Name:     "Win-back Sequence",
				Segment:  "Dormant Accounts",
				Trigger:  "Inactivity 30d",
				Channel:  "Email",
				Template: "Re-engagement",
				Status:   StatusReady,
				NextSend: tomorrow,
			},
			{
				Name:     "Post-demo Follow-up",
				Segment:  "Active Customers",
				Trigger:  "Demo completed",
				Channel:  "Email + Call task",
				Template: "Demo Recap",
				Status:   StatusRunning,
				NextSend: today,
			},
		},
		Templates: []Template{
			{Name: "Welcome Series", Medium: "Email", Purpose: "Onboarding", LastUpdated: today},
			{Name: "Re-engagement", Medium: "Email", Purpose: "Win-back", LastUpdated: today},
			{Name: "Product Tour Deck", Medium: "Presentation", Purpose: "Sales enablement", LastUpdated: today},
		},
		Integrations: []Connector{
			{Name: "CRM (HubSpot)", Status: "connected", Detail: "API token valid"},
			{Name: "Email (SendGrid)", Status: "connected", Detail: "Sender verified"},
			{Name: "Social (LinkedIn)", Status: "pending", Detail: "OAuth to finish"},
		},
		Connectors: []Connector{
			{Name: "HubSpot contacts", Status: "connected", LastSync: today, Detail: "Contacts + deals"},
			{Name: "LinkedIn Ads", Status: "pending", LastSync: "—", Detail: "Finish OAuth to pull audiences"},
			{Name: "SendGrid events", Status: "connected", LastSync: today, Detail: "Bounces + clicks ingested"},
		},
		Backend: []BackendService{
			{Service: "Engagement API", Status: "healthy", LatencyMS: 180, ErrorRate: "0.2%", Version: "v1.4.2"},
			{Service: "Automation Worker", Status: "degraded", LatencyMS: 420, ErrorRate: "1.1%", Version: "v1.3.9"},
		},
		Databases: []DatabaseRecord{
			{Name: "Postgres", Role: "Primary", Status: "healthy", StorageGB: 12.4, Connections: 58},
			{Name: "Redis", Role: "Cache", Status: "healthy", StorageGB: 1.1, Connections: 14},
		},
		Analytics: AnalyticsSummary{
			OpenRate:    0.46,
			ClickRate:   0.23,
			ReplyRate:   0.14,
			Conversions: 5,
			ABTests: []ABTest{
				{Name: "CTA copy", Winner: "Book a call", Uplift: 0.12},
				{Name: "Send time", Winner: "09:00", Uplift: 0.08},
			},
		},
		Feedback: []FeedbackForm{
			{Name: "Post-demo pulse", Question: "How clear was the value prop?", LastSent: today, Responses: 12},
			{Name: "Onboarding check-in", Question: "Did you activate the core workflow?", LastSent: today, Responses: 8},
		},
		Actions: []ActionItem{
			{Title: "A/B test CTA for New Leads", Due: today, Owner: "You"},
			{Title: "Send nurture to Dormant Accounts", Due: tomorrow, Owner: "You"},
			{Title: "Sync CRM deal stages", Due: tomorrow, Owner: "You"},
		},
		AutomationRules: DefaultRulePresets(),
	}
	return doc
}
