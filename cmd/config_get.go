package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	configGetCmd.Flags().StringVar(&configKey, "key", "", "setting to read")
	configGetCmd.Flags().BoolVar(&configReveal, "reveal", false, "print the token unmasked")
	_ = configGetCmd.MarkFlagRequired("key")
	ConfigCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print one setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config get command")

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		value, err := workflows.ConfigGet(context.Background(), env, workflows.ConfigGetOptions{Key: configKey, Reveal: configReveal})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read setting: %w", err)
		}

		fmt.Println(value)
		return nil
	},
}
