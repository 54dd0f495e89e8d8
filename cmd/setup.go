package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	setupForce     bool
	setupImportAll bool
)

func init() {
	setupCmd.Flags().BoolVarP(&setupForce, "force", "f", false, "overwrite existing settings without asking")
	setupCmd.Flags().BoolVar(&setupImportAll, "import", false, "import discovered project folders without asking")
	RootCmd.AddCommand(setupCmd)
}

// resetSetupCommandState resets the setup command's global state for testing.
func resetSetupCommandState() {
	setupForce = false
	setupImportAll = false
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure pm",
	Long: `Asks for your projects folder, an editor command and a GitHub token and
writes the settings document.

Folders already laid out as <projects_folder>/<group>/<project> can be
imported into the registry.

A settings document that cannot be read is replaced after confirmation;
import the projects folder to register its projects again.

Examples:
  pm setup
  pm setup --force --import`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting setup command")
		fmt.Print(ui.Banner("pm"))
		fmt.Println("Welcome to Project Manager. Let's get you set up.")
		fmt.Println()

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.Setup(context.Background(), env, workflows.SetupOptions{
			Force:     setupForce,
			ImportAll: setupImportAll,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("setup failed: %w", err)
		}

		if result.Replaced {
			Logger.WarnfUser("The previous settings could not be read and were replaced. Projects registered there are forgotten.")
		}
		fmt.Println(ui.Success.Sprint("✓") + " Settings written to " + ui.Path.Sprint(result.Path))
		if len(result.Imported) > 0 {
			fmt.Printf("    imported %d projects:\n", len(result.Imported))
			for _, p := range result.Imported {
				fmt.Println("      " + ui.Highlight.Sprint(p.Group) + "/" + p.Name)
			}
		} else if len(result.Discovered) > 0 {
			fmt.Printf("    %d project folders were not imported\n", len(result.Discovered))
		}
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("pm create") + " to start a new project")
		return nil
	},
}
