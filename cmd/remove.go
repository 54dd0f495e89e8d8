package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	removeName  string
	removeGroup string
	removeYes   bool
)

func init() {
	removeCmd.Flags().StringVarP(&removeName, "name", "n", "", "project name")
	removeCmd.Flags().StringVarP(&removeGroup, "group", "g", "", "project group (searches every group when omitted)")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "do not ask for confirmation")
	_ = removeCmd.MarkFlagRequired("name")
	RootCmd.AddCommand(removeCmd)
}

// resetRemoveCommandState resets the remove command's global state for testing.
func resetRemoveCommandState() {
	removeName = ""
	removeGroup = ""
	removeYes = false
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a project from the registry",
	Long: `Forgets a project. Its folder is left on disk.

Examples:
  pm remove --name site
  pm remove --name site --group work --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting remove command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.Remove(context.Background(), env, workflows.RemoveOptions{
			Name:  removeName,
			Group: removeGroup,
			Yes:   removeYes,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to remove project: %w", err)
		}

		p := result.Project
		fmt.Println(ui.Success.Sprint("✓") + " Removed " + ui.Highlight.Sprint(p.Name) + " from group " + ui.Highlight.Sprint(p.Group))
		fmt.Println("    folder kept at: " + ui.Path.Sprint(p.Dir))
		return nil
	},
}
