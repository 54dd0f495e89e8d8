package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	openName  string
	openGroup string
)

func init() {
	openCmd.Flags().StringVarP(&openName, "name", "n", "", "project name")
	openCmd.Flags().StringVarP(&openGroup, "group", "g", "", "project group (searches every group when omitted)")
	_ = openCmd.MarkFlagRequired("name")
	RootCmd.AddCommand(openCmd)
}

// resetOpenCommandState resets the open command's global state for testing.
func resetOpenCommandState() {
	openName = ""
	openGroup = ""
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a project with your editor",
	Long: `Runs the configured editor command inside the project's folder.

When the name exists in several groups and --group is not given you are
asked to pick one.

Examples:
  pm open --name site
  pm open --name site --group work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting open command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.Open(context.Background(), env, workflows.OpenOptions{Name: openName, Group: openGroup})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open project: %w", err)
		}

		Logger.Infof("Ran %q in %s", result.Command, result.Project.Dir)
		fmt.Println(ui.Success.Sprint("✓") + " Opened " + ui.Highlight.Sprint(result.Project.Name) +
			" " + ui.Muted.Sprint("in group "+result.Project.Group))
		return nil
	},
}
