// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up a pm home, running the
// real command tree and capturing its output.
package shared

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/PolarWolf314/pm/cmd"
	"github.com/PolarWolf314/pm/internal/configs"
	"github.com/PolarWolf314/pm/internal/remote"
)

// TestEnvironment is an isolated pm home with an empty projects folder.
type TestEnvironment struct {
	Home   string
	Folder string

	// Remote answers repository creation when set.
	Remote remote.Creator

	mu      sync.Mutex
	editor  []string
	browser []string
}

// SetupTestEnvironment creates a pm home and projects folder, disables color
// and resets the command state when the test ends.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(cmd.ResetGlobalState)

	return &TestEnvironment{
		Home:   filepath.Join(t.TempDir(), "pm"),
		Folder: t.TempDir(),
	}
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// Run executes pm with args, answering prompts from input, and returns the
// combined output and the exit code.
func (e *TestEnvironment) Run(t *testing.T, input string, args ...string) (string, int) {
	t.Helper()

	cmd.ResetGlobalState()
	cmd.SetInput(strings.NewReader(input))
	if e.Remote != nil {
		cmd.SetRemoteCreator(e.Remote)
	}
	cmd.SetEditorRunner(func(command, dir string) error {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.editor = append(e.editor, command+"@"+dir)
		return nil
	})
	cmd.SetURLOpener(func(url string) error {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.browser = append(e.browser, url)
		return nil
	})

	root := cmd.GetRootCmd()
	root.SetArgs(append([]string{"--home", e.Home}, args...))

	code := 0
	output, _ := CaptureOutput(func() error {
		code = cmd.Execute()
		return nil
	})
	return output, code
}

// MustRun is Run that fails the test on a non-zero exit code.
func (e *TestEnvironment) MustRun(t *testing.T, input string, args ...string) string {
	t.Helper()
	output, code := e.Run(t, input, args...)
	if code != 0 {
		t.Fatalf("pm %s exited with %d. Output: %s", strings.Join(args, " "), code, output)
	}
	return output
}

// EditorRuns returns every editor invocation as "<command>@<dir>".
func (e *TestEnvironment) EditorRuns() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.editor...)
}

// OpenedURLs returns every URL handed to the browser.
func (e *TestEnvironment) OpenedURLs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.browser...)
}

// Settings loads the settings document.
func (e *TestEnvironment) Settings(t *testing.T) *configs.Settings {
	t.Helper()
	settings, err := configs.NewStore(configs.SettingsPath(e.Home)).Load()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	return settings
}

// VerifyProjectFolder checks that dir exists and holds a git repository.
func VerifyProjectFolder(t *testing.T, dir string) {
	t.Helper()
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Project folder %s does not exist: %v", dir, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", dir)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Errorf("Expected a git repository in %s: %v", dir, err)
	}
}

// FakeGitHub records repository creation requests.
type FakeGitHub struct {
	mu       sync.Mutex
	Requests []string
}

func (f *FakeGitHub) CreateRepository(ctx context.Context, token, name string, private bool) (*remote.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, name)
	return &remote.Repository{
		HTMLURL:  "https://github.com/tester/" + name,
		CloneURL: "https://github.com/tester/" + name + ".git",
	}, nil
}
