package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configOpenCmd)
}

var configOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the settings folder with your editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config open command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		path, err := workflows.ConfigOpen(context.Background(), env)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open settings: %w", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Opened " + ui.Path.Sprint(path))
		return nil
	},
}
