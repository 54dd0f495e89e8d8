// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up a pm home, running
// commands and capturing their output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/pm/internal/configs"
	"github.com/PolarWolf314/pm/internal/remote"
)

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
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
	first := <-outputChan
	second := <-outputChan

	return first + second, err
}

// testHome is an isolated pm home with a projects folder.
type testHome struct {
	home    string
	folder  string
	remote  remote.Creator
	editor  []string
	browser []string
}

// setupTestHome creates a pm home and projects folder and resets the
// command state. Color is disabled so output can be matched as plain text.
func setupTestHome(t *testing.T) *testHome {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	th := &testHome{
		home:   filepath.Join(t.TempDir(), "pm"),
		folder: t.TempDir(),
	}
	t.Cleanup(ResetGlobalState)
	return th
}

// writeSettings stores a settings document whose projects folder is th.folder.
func (th *testHome) writeSettings(t *testing.T, mutate func(s *configs.Settings)) {
	t.Helper()
	settings := configs.NewSettings()
	settings.ProjectsFolder = th.folder
	if mutate != nil {
		mutate(settings)
	}
	if err := th.store().Save(settings); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
}

func (th *testHome) store() *configs.Store {
	return configs.NewStore(configs.SettingsPath(th.home))
}

func (th *testHome) load(t *testing.T) *configs.Settings {
	t.Helper()
	settings, err := th.store().Load()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	return settings
}

// addProject registers group/name with a real folder.
func (th *testHome) addProject(t *testing.T, group, name, repoURL string) string {
	t.Helper()
	dir := filepath.Join(th.folder, group, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create project folder: %v", err)
	}
	store := th.store()
	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if settings.Projects[group] == nil {
		settings.Projects[group] = make(map[string]configs.ProjectRecord)
	}
	settings.Projects[group][name] = configs.ProjectRecord{Dir: dir, RepoURL: repoURL}
	if err := store.Save(settings); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}
	return dir
}

// run executes pm with args, answering prompts from input, and returns the
// combined output and exit code.
func (th *testHome) run(t *testing.T, input string, args ...string) (string, int) {
	t.Helper()

	ResetGlobalState()
	SetInput(strings.NewReader(input))
	if th.remote != nil {
		SetRemoteCreator(th.remote)
	}
	editorRunner = func(command, dir string) error {
		th.editor = append(th.editor, command+"@"+dir)
		return nil
	}
	urlOpener = func(url string) error {
		th.browser = append(th.browser, url)
		return nil
	}

	RootCmd.SetArgs(append([]string{"--home", th.home}, args...))

	code := 0
	output, _ := captureOutput(func() error {
		code = Execute()
		return nil
	})
	return output, code
}
