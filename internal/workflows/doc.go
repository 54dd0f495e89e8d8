// Package workflows provides high-level orchestration for pm commands.
//
// Workflows coordinate the settings store, the project registry, prompts,
// the remote repository adapter and the audit trail to implement complete
// user-facing features. Each workflow handles a single command's business
// logic, independent of CLI concerns like flag parsing, spinners, and output
// formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Builds an Env and calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading the settings document
//   - Asking for missing input through the Prompter
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Create: Creates a project folder, git repository and optional remote
//   - Open: Runs the editor command inside a project folder
//   - Browser: Opens a project's repository page
//   - Configure: Renames, regroups or re-points a project
//   - Remove: Forgets a project
//   - List: Lists groups or projects
//   - Setup: Writes the settings document and imports existing folders
//   - ConfigList, ConfigGet, ConfigSet, ConfigOpen: Settings keys
//   - History: Reads the audit trail
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Open(ctx, env, opts)
//	if errors.Is(err, perrors.ErrEditorNotSet) {
//	    // Show how to set editor_command
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// This enables cancellation, timeouts, and passing request-scoped values.
package workflows
