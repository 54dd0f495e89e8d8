package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
)

var listGroup string

func init() {
	listCmd.Flags().StringVarP(&listGroup, "group", "g", "", "only list projects of this group")
	RootCmd.AddCommand(listCmd)
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listGroup = ""
}

var listCmd = &cobra.Command{
	Use:       "list [projects|groups]",
	Short:     "List projects or groups",
	ValidArgs: []string{workflows.ListProjects, workflows.ListGroups},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Long: `Lists the registered projects, grouped, or the groups with their
project counts.

Examples:
  pm list
  pm list groups
  pm list projects --group work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		target := workflows.ListProjects
		if len(args) == 1 {
			target = args[0]
		}

		env, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := workflows.List(context.Background(), env, workflows.ListOptions{Target: target, Group: listGroup})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list %s: %w", target, err)
		}

		if target == workflows.ListGroups {
			if len(result.Groups) == 0 {
				fmt.Println("No groups found.")
				return nil
			}
			for _, g := range result.Groups {
				fmt.Printf("%s %s\n", ui.Highlight.Sprint(g.Name), ui.Muted.Sprintf("%d projects", g.Projects))
			}
			return nil
		}

		if len(result.Projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}
		current := ""
		for _, p := range result.Projects {
			if p.Group != current {
				current = p.Group
				fmt.Println(ui.Highlight.Sprint(current))
			}
			line := "  " + p.Name + "  " + ui.Path.Sprint(p.Dir)
			if p.RepoURL != "" {
				line += "  " + ui.Muted.Sprint(p.RepoURL)
			}
			fmt.Println(line)
		}
		return nil
	},
}
