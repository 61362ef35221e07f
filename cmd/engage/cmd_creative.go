package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"engagedash/cmd/engage/ui"
	"engagedash/internal/automation"
	"engagedash/internal/logging"
	"engagedash/internal/state"
)

var creativeJSON bool

// creativeCmd maps a creative idea to an automation plan
var creativeCmd = &cobra.Command{
	Use:   "creative [idea...]",
	Short: "Creative mode: turn an idea into a campaign plan",
	Long: `Matches a free-text creative idea against the automation rule presets
and shows the Creation Studio next to what was configured automatically.

Without an idea argument, engage asks for one.

Examples:
  engage creative "demo video for enterprise VPs"
  engage creative --json smb cto webinar`,
	RunE: runCreative,
}

func init() {
	creativeCmd.Flags().BoolVar(&creativeJSON, "json", false, "Print the plan as JSON")
}

func runCreative(cmd *cobra.Command, args []string) error {
	idea := strings.TrimSpace(strings.Join(args, " "))
	if idea == "" {
		var err error
		idea, err = askIdea(cmd)
		if errors.Is(err, ui.ErrPromptCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	doc := newStore().Load()
	plan := matcherFor(doc).Match(idea)
	logging.For(logger, logging.CategoryAutomation).Debug("idea matched",
		zap.String("rule", plan.Rule),
		zap.Int("auto_handled", len(plan.AutoHandled)))

	out := cmd.OutOrStdout()
	if creativeJSON {
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	rendered, err := ui.Studio{
		Idea:   idea,
		Plan:   plan,
		Styles: currentStyles(),
		Width:  cfg.UI.Width,
		Ratio:  cfg.UI.SplitRatio,
	}.Render()
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}

// matcherFor prefers the presets stored in the document and falls back to
// the built-in ones.
func matcherFor(doc *state.Document) *automation.Matcher {
	if doc != nil && len(doc.AutomationRules) > 0 {
		return automation.NewMatcher(doc.AutomationRules)
	}
	return automation.Default()
}

func askIdea(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return ui.AskIdea(in, cmd.OutOrStdout(), currentStyles())
	}
	return ui.ReadIdea(in, cmd.OutOrStdout())
}
