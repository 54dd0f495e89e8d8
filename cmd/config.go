package cmd

import (
	"strings"

	"github.com/PolarWolf314/pm/internal/configs"
	"github.com/spf13/cobra"
)

var (
	configKey    string
	configValue  string
	configReveal bool

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage pm settings",
		Long: `Provides commands for reading and changing the settings document.

Keys: ` + strings.Join(configs.Keys(), ", ") + `

Examples:
  # Show every setting
  pm config list

  # Read one setting
  pm config get --key editor_command

  # Change one setting
  pm config set --key editor_command --value "code ."

  # Open the settings folder with your editor
  pm config open`,
	}
)

func init() {
	RootCmd.AddCommand(ConfigCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// resetConfigCommandState resets the config commands' global state for testing.
func resetConfigCommandState() {
	configKey = ""
	configValue = ""
	configReveal = false
}
