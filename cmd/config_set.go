package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	configSetCmd.Flags().StringVar(&configKey, "key", "", "setting to change")
	configSetCmd.Flags().StringVar(&configValue, "value", "", "new value (asked for when omitted)")
	_ = configSetCmd.MarkFlagRequired("key")
	ConfigCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.ConfigSet(context.Background(), env, workflows.ConfigSetOptions{Key: configKey, Value: configValue})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to change setting: %w", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Set " + ui.Code.Sprint(result.Key) + " to " + ui.Highlight.Sprint(result.Value))
		return nil
	},
}
