package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"engagedash/internal/campaign"
	"engagedash/internal/logging"
)

var campaignFields campaign.Fields

// campaignCmd groups campaign commands
var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Manage automation campaigns",
}

var campaignAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new automation campaign",
	Long: `Appends a campaign to the state file.

Example:
  engage campaign add --name "Q3 Nurture" --segment "New Leads" \
    --trigger "Signed up" --channel Email --template "Welcome Series" \
    --next-send 2024-07-01`,
	Args: cobra.NoArgs,
	RunE: runCampaignAdd,
}

func init() {
	f := campaignAddCmd.Flags()
	f.StringVar(&campaignFields.Name, "name", "", "Campaign name (required)")
	f.StringVar(&campaignFields.Segment, "segment", "", "Target segment (required)")
	f.StringVar(&campaignFields.Trigger, "trigger", "", "Trigger condition (required)")
	f.StringVar(&campaignFields.Channel, "channel", "", "Primary channel (required)")
	f.StringVar(&campaignFields.Template, "template", "", "Template name (required)")
	f.StringVar(&campaignFields.Status, "status", "scheduled", "Initial status: scheduled, ready, running or paused")
	f.StringVar(&campaignFields.NextSend, "next-send", "", "Next send date YYYY-MM-DD (default: today)")

	campaignCmd.AddCommand(campaignAddCmd)
}

func runCampaignAdd(cmd *cobra.Command, args []string) error {
	// Reject a bad date before the state file is touched.
	if err := campaign.ValidateDate(campaignFields.NextSend); err != nil {
		return err
	}
	if err := campaign.Validate(campaignFields); err != nil {
		return err
	}

	store := newStore()
	doc := store.Load()
	mutator := campaign.NewMutator(store,
		campaign.WithClock(clock),
		campaign.WithLogger(logging.For(logger, logging.CategoryCampaign)))

	c, err := mutator.Add(doc, campaignFields)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added campaign %q for %s (%s, next send %s)\n",
		c.Name, c.Segment, c.Status, c.NextSend)
	return nil
}
