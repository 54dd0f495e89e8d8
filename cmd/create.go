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
	createName     string
	createGroup    string
	createRepoName string
	createPrivate  bool
	createNoRemote bool
	createNoOpen   bool
)

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "project name (asked for when omitted)")
	createCmd.Flags().StringVarP(&createGroup, "group", "g", "", "project group (asked for when omitted)")
	createCmd.Flags().StringVar(&createRepoName, "repo-name", "", "name of the GitHub repository (defaults to the project name)")
	createCmd.Flags().BoolVar(&createPrivate, "private", false, "make the GitHub repository private without asking")
	createCmd.Flags().BoolVar(&createNoRemote, "no-remote", false, "do not create a GitHub repository")
	createCmd.Flags().BoolVar(&createNoOpen, "no-open", false, "do not run the editor command afterwards")
	RootCmd.AddCommand(createCmd)
}

// resetCreateCommandState resets the create command's global state for testing.
func resetCreateCommandState() {
	createName = ""
	createGroup = ""
	createRepoName = ""
	createPrivate = false
	createNoRemote = false
	createNoOpen = false
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	Long: `Creates <projects_folder>/<group>/<name>, initializes a git repository
in it and registers the project.

When a GitHub token is configured you are asked whether to create a GitHub
repository as well. If that fails the project is still created.

Examples:
  pm create --name site --group work
  pm create --name site --group work --private --repo-name my-site
  pm create                                  # asks for name and group`,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting create command")

	env, cleanup, err := newEnv()
	if err != nil {
		return err
	}
	defer cleanup()

	opts := workflows.CreateOptions{
		Name:     createName,
		Group:    createGroup,
		RepoName: createRepoName,
		NoOpen:   createNoOpen,
	}
	if createNoRemote {
		opts.Remote = boolFlag(false)
	}
	if cmd.Flags().Changed("private") {
		opts.Private = boolFlag(createPrivate)
	}
	Logger.Debugf("Create options: %+v", opts)

	result, err := workflows.Create(context.Background(), env, opts)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to create project: %w", err)
	}

	if result.RemoteErr != nil {
		Logger.WarnfUser("An error occurred while creating the GitHub repository: %v", result.RemoteErr)
		Logger.WarnfUser("Please check your token and your internet connection.")
	}
	for _, w := range result.Warnings {
		Logger.WarnfUser("%s", w)
	}

	p := result.Project
	var b strings.Builder
	b.WriteString(ui.Success.Sprint("✓") + " Created project " + ui.Highlight.Sprint(p.Name) + " in group " + ui.Highlight.Sprint(p.Group) + "\n")
	if result.GroupCreated {
		b.WriteString("    created group folder: " + ui.Path.Sprint(p.Group) + "\n")
	}
	b.WriteString("    folder: " + ui.Path.Sprint(p.Dir) + "\n")
	if p.RepoURL != "" {
		b.WriteString("    repository: " + ui.Path.Sprint(p.RepoURL) + "\n")
	}
	if result.Opened {
		b.WriteString(ui.Info.Sprint("→") + " Opened the project folder with your editor command\n")
	}
	fmt.Print(b.String())

	Logger.Infof("Create command completed for %s/%s", p.Group, p.Name)
	return nil
}

func boolFlag(b bool) *bool {
	return &b
}
