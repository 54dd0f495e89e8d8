package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configListCmd)
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config list command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.ConfigList(context.Background(), env)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read settings: %w", err)
		}

		fmt.Println(ui.Info.Sprint("Settings") + " " + ui.Muted.Sprint(result.Path))
		for _, e := range result.Entries {
			value := e.Value
			if value == "" {
				value = ui.Muted.Sprint("not set")
			}
			fmt.Printf("  %-16s %s\n", e.Key, value)
		}
		fmt.Printf("  %-16s %d groups, %d projects\n", "projects", result.Groups, result.Projects)
		return nil
	},
}
