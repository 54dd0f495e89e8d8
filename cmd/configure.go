package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	configureName       string
	configureGroup      string
	configureKey        string
	configureValue      string
	configureMoveFolder bool
)

func init() {
	configureCmd.Flags().StringVarP(&configureName, "name", "n", "", "project name")
	configureCmd.Flags().StringVarP(&configureGroup, "group", "g", "", "project group (searches every group when omitted)")
	configureCmd.Flags().StringVar(&configureKey, "key", "", "key to change: "+strings.Join(workflows.ProjectKeys(), ", "))
	configureCmd.Flags().StringVar(&configureValue, "value", "", "new value for the key ('-' clears repo_url)")
	configureCmd.Flags().BoolVar(&configureMoveFolder, "move-folder", false, "rename the project folder on disk along with the name")
	_ = configureCmd.MarkFlagRequired("name")
	RootCmd.AddCommand(configureCmd)
}

// resetConfigureCommandState resets the configure command's global state for testing.
func resetConfigureCommandState() {
	configureName = ""
	configureGroup = ""
	configureKey = ""
	configureValue = ""
	configureMoveFolder = false
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Change a project's name, group, folder or repository URL",
	Long: `Changes one key of a registered project. Missing --key and --value
are asked for.

Keys:
  name      rename the project (add --move-folder to rename its folder too)
  group     move the project to another group
  dir       point the project at another folder
  repo_url  set the repository page used by 'pm browser' ('-' removes it)

Examples:
  pm configure --name site --key name --value homepage --move-folder
  pm configure --name site --group work --key group --value archive
  pm configure --name site --key repo_url --value -
  pm configure --name site`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting configure command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.Configure(context.Background(), env, workflows.ConfigureOptions{
			Name:       configureName,
			Group:      configureGroup,
			Key:        configureKey,
			Value:      configureValue,
			MoveFolder: configureMoveFolder,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to configure project: %w", err)
		}

		p := result.Project
		fmt.Println(ui.Success.Sprint("✓") + " Updated " + ui.Code.Sprint(result.Key) + " of " +
			ui.Highlight.Sprint(p.Name) + " in group " + ui.Highlight.Sprint(p.Group))
		if result.Previous != "" {
			fmt.Println("    was: " + ui.Muted.Sprint(result.Previous))
		}
		if result.FolderMoved {
			fmt.Println("    moved folder to: " + ui.Path.Sprint(p.Dir))
		}
		return nil
	},
}
