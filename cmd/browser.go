package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	browserName  string
	browserGroup string
)

func init() {
	browserCmd.Flags().StringVarP(&browserName, "name", "n", "", "project name")
	browserCmd.Flags().StringVarP(&browserGroup, "group", "g", "", "project group (searches every group when omitted)")
	_ = browserCmd.MarkFlagRequired("name")
	RootCmd.AddCommand(browserCmd)
}

// resetBrowserCommandState resets the browser command's global state for testing.
func resetBrowserCommandState() {
	browserName = ""
	browserGroup = ""
}

var browserCmd = &cobra.Command{
	Use:   "browser",
	Short: "Open a project's repository page in your browser",
	Long: `Opens the repo_url of a project in the default browser.

Examples:
  pm browser --name site
  pm browser --name site --group work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting browser command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.Browser(context.Background(), env, workflows.OpenOptions{Name: browserName, Group: browserGroup})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open repository page: %w", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Opened " + ui.Path.Sprint(result.URL))
		return nil
	},
}
