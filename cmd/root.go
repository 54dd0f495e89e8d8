package cmd

import (
	"io"
	"os"

	"github.com/PolarWolf314/pm/internal/audit"
	"github.com/PolarWolf314/pm/internal/configs"
	logger "github.com/PolarWolf314/pm/internal/logging"
	"github.com/PolarWolf314/pm/internal/prompt"
	"github.com/PolarWolf314/pm/internal/remote"
	"github.com/PolarWolf314/pm/internal/utils"
	"github.com/PolarWolf314/pm/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	homeDir string
	Logger  logger.Logger

	// inputReader replaces the terminal as the source of answers when set.
	inputReader io.Reader

	// remoteCreator replaces the GitHub adapter when set.
	remoteCreator remote.Creator

	// editorRunner and urlOpener replace the shell and the browser when set.
	editorRunner func(command, dir string) error
	urlOpener    func(url string) error

	RootCmd = &cobra.Command{
		Use:   "pm",
		Short: "pm - Easily create, manage and categorize your projects",
		Long: `pm keeps a registry of your projects, organized in groups, and
helps you create, open and maintain them.

Projects live in <projects_folder>/<group>/<name>. Run 'pm setup' once to
choose the projects folder, an editor command and an optional GitHub token.

Examples:
  pm setup
  pm create --name site --group work
  pm open --name site
  pm list groups`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t, home=%q", cmd.CommandPath(), verbose, debug, homeDir)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "directory holding pm-settings.toml (defaults to the user config directory)")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return exitCode(RootCmd.Execute())
}

// newEnv builds the workflow environment. The returned function releases the
// terminal and must be called once the workflow is done.
func newEnv() (*workflows.Env, func(), error) {
	home := homeDir
	if home == "" {
		var err error
		if home, err = configs.DefaultHome(); err != nil {
			return nil, nil, Logger.ErrorfAndReturn("failed to locate settings directory: %w", err)
		}
	}
	home, err := utils.ExpandHome(home)
	if err != nil {
		return nil, nil, err
	}
	Logger.Debugf("Using settings document %s", configs.SettingsPath(home))

	console := newPrompter()

	var creator remote.Creator = remote.NewGitHub()
	if remoteCreator != nil {
		creator = remoteCreator
	}

	env := &workflows.Env{
		Store:     configs.NewStore(configs.SettingsPath(home)),
		Prompter:  console,
		Remote:    &spinnerCreator{inner: creator},
		Audit:     audit.NewTrail(home),
		Out:       os.Stdout,
		RunEditor: editorRunner,
		OpenURL:   urlOpener,
	}

	cleanup := func() {
		if err := console.Close(); err != nil {
			Logger.Warnf("Failed to restore terminal: %v", err)
		}
	}
	return env, cleanup, nil
}

// newPrompter returns a line-editing console on a terminal and a plain line
// reader otherwise.
func newPrompter() *prompt.Console {
	if inputReader != nil {
		return prompt.NewReader(inputReader, os.Stdout)
	}
	if utils.IsTerminal() {
		Logger.Debugf("Using interactive console for prompts")
		return prompt.NewConsole()
	}
	return prompt.NewReader(os.Stdin, os.Stdout)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	homeDir = ""
	inputReader = nil
	remoteCreator = nil
	editorRunner = nil
	urlOpener = nil
	resetCreateCommandState()
	resetOpenCommandState()
	resetBrowserCommandState()
	resetRemoveCommandState()
	resetConfigureCommandState()
	resetListCommandState()
	resetConfigCommandState()
	resetSetupCommandState()
	resetHistoryCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marks on every flag so a command
// can be executed again in the same process.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}

// SetInput makes prompts read their answers from r, for testing.
func SetInput(r io.Reader) {
	inputReader = r
}

// SetRemoteCreator replaces the GitHub adapter, for testing.
func SetRemoteCreator(c remote.Creator) {
	remoteCreator = c
}

// SetEditorRunner replaces the shell that runs the editor command, for testing.
func SetEditorRunner(fn func(command, dir string) error) {
	editorRunner = fn
}

// SetURLOpener replaces the browser, for testing.
func SetURLOpener(fn func(url string) error) {
	urlOpener = fn
}
