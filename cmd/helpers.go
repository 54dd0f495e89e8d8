package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/remote"
	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/briandowns/spinner"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// spinnerCreator shows a spinner while the remote repository is created.
type spinnerCreator struct {
	inner remote.Creator
}

func (c *spinnerCreator) CreateRepository(ctx context.Context, token, name string, private bool) (*remote.Repository, error) {
	s, cleanup := startSpinner("Creating repository "+name+" on GitHub...", verbose)
	defer cleanup()

	repo, err := c.inner.CreateRepository(ctx, token, name, private)
	if err != nil {
		Logger.Debugf("Remote repository creation failed: %v", err)
		return nil, err
	}
	s.FinalMSG = ui.Success.Sprint("✓") + " Created repository " + ui.Path.Sprint(repo.HTMLURL)
	return repo, nil
}

// exitCode prints err for the user and maps it to the process exit code.
// A cancellation the user chose is not a failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, perrors.ErrInterrupted):
		fmt.Fprintln(os.Stderr, ui.Warning.Sprint("Interrupted."))
		return exitInterrupted
	case errors.Is(err, perrors.ErrCancelled):
		fmt.Println(ui.Muted.Sprint("Operation cancelled."))
		return exitOK
	}

	fmt.Fprint(os.Stderr, ui.EnsureNewline(formatError(err)))
	return exitError
}

// formatError renders an error with a hint where one helps.
func formatError(err error) string {
	msg := ui.Error.Sprint("✗") + " " + err.Error()

	switch {
	case errors.Is(err, perrors.ErrConfigMissing):
		return msg + "\n" + ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("pm setup") + " first"

	case errors.Is(err, perrors.ErrConfigCorrupt):
		return msg + "\n" + ui.Info.Sprint("→") + " Fix the file by hand or run " + ui.Code.Sprint("pm setup --force")

	case errors.Is(err, perrors.ErrEditorNotSet):
		return msg + "\n" + ui.Info.Sprint("→") + " Set one with " + ui.Code.Sprint(`pm config set --key editor_command --value "code ."`)

	case errors.Is(err, perrors.ErrNoRepoURL):
		return msg + "\n" + ui.Info.Sprint("→") + " Set one with " + ui.Code.Sprint("pm configure --name <name> --key repo_url --value <url>")

	case errors.Is(err, perrors.ErrAmbiguousName):
		return msg + "\n" + ui.Info.Sprint("→") + " Add " + ui.Flag.Sprint("--group") + " to pick one"

	case errors.Is(err, perrors.ErrInvalidName):
		return msg + "\n" + ui.Info.Sprint("→") + " Names cannot be empty, start or end with spaces, contain slashes, or be '.' or '..'"
	}
	return msg
}
