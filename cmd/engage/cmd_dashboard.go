package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"engagedash/cmd/engage/ui"
	"engagedash/internal/dashboard"
	"engagedash/internal/state"
)

var summaryPlain bool

// summaryCmd shows the dashboard, or a plain digest with --plain
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard summary",
	Long: `Renders the dashboard. With --plain, prints a short text digest
instead (counts per section, campaigns by status, engagement rates).`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryPlain, "plain", false, "Print a plain text summary")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	doc := newStore().Load()
	fmt.Fprintln(cmd.OutOrStdout(), renderDashboard(doc, cfg.UI.Width))
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	if !summaryPlain {
		return runDashboard(cmd, args)
	}
	doc := newStore().Load()
	fmt.Fprint(cmd.OutOrStdout(), dashboard.New(doc).Summary())
	return nil
}

func renderDashboard(doc *state.Document, width int) string {
	return ui.Dashboard{
		Model:  dashboard.New(doc),
		Styles: currentStyles(),
		Width:  width,
		Now:    clock(),
	}.Render()
}
