package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/pm/internal/audit"
	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "number", "n", 0, "only show the most recent entries")
	RootCmd.AddCommand(historyCmd)
}

// resetHistoryCommandState resets the history command's global state for testing.
func resetHistoryCommandState() {
	historyLimit = 0
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the history of registry changes",
	Long: `Displays every create, rename, regroup, removal, import and settings
change, oldest first.

Examples:
  pm history
  pm history -n 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting history command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.History(context.Background(), env, workflows.HistoryOptions{Limit: historyLimit})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read history: %w", err)
		}
		Logger.Debugf("Read %d entries, showing %d", result.Total, len(result.Entries))

		if len(result.Entries) == 0 {
			fmt.Println("No history entries found.")
			return nil
		}
		for _, e := range result.Entries {
			fmt.Println(formatHistoryEntry(e))
		}
		return nil
	},
}

// formatHistoryEntry renders one entry on a single line.
func formatHistoryEntry(e audit.Entry) string {
	ts := e.Timestamp
	if len(ts) >= 19 {
		ts = strings.Replace(ts[:19], "T", " ", 1)
	}

	var details []string
	if e.Project != "" {
		details = append(details, e.Group+"/"+e.Project)
	}
	if e.NewName != "" {
		details = append(details, "→ "+e.NewName)
	}
	if e.NewGroup != "" {
		details = append(details, "→ "+e.NewGroup)
	}
	if e.Key != "" {
		details = append(details, e.Key)
	}
	if e.Count > 0 {
		details = append(details, fmt.Sprintf("%d projects", e.Count))
	}
	if e.Project == "" && e.Dir != "" {
		details = append(details, e.Dir)
	}

	line := ui.Muted.Sprint(ts) + " " + fmt.Sprintf("%-12s", e.Operation)
	if len(details) > 0 {
		line += " " + strings.Join(details, " ")
	}
	if e.User != "" {
		line += " " + ui.Muted.Sprint(e.User)
	}
	return line
}
