package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	perrors "github.com/PolarWolf314/pm/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"cancelled", fmt.Errorf("failed to remove project: %w", perrors.ErrCancelled), exitOK},
		{"interrupted", fmt.Errorf("failed to create project: %w", perrors.ErrInterrupted), exitInterrupted},
		{"not found", fmt.Errorf("%w: site", perrors.ErrProjectNotFound), exitError},
		{"plain", errors.New("boom"), exitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int
			_, _ = captureOutput(func() error {
				got = exitCode(tt.err)
				return nil
			})
			if got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		err  error
		hint string
	}{
		{"missing settings", perrors.ErrConfigMissing, "`pm setup`"},
		{"corrupt settings", perrors.ErrConfigCorrupt, "`pm setup --force`"},
		{"editor", perrors.ErrEditorNotSet, "editor_command"},
		{"repo url", perrors.ErrNoRepoURL, "--key repo_url"},
		{"ambiguous", perrors.ErrAmbiguousName, "--group"},
		{"invalid name", fmt.Errorf("%w: project %q", perrors.ErrInvalidName, "a/b"), "contain slashes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatError(fmt.Errorf("failed: %w", tt.err))
			if !strings.HasPrefix(got, "✗ failed: ") {
				t.Errorf("Expected error marker, got %q", got)
			}
			if !strings.Contains(got, tt.hint) {
				t.Errorf("Expected hint %q, got %q", tt.hint, got)
			}
		})
	}

	if got := formatError(errors.New("boom")); got != "✗ boom" {
		t.Errorf("Expected no hint for a plain error, got %q", got)
	}
}

func TestUnknownCommand(t *testing.T) {
	th := setupTestHome(t)

	output, code := th.run(t, "", "frobnicate")
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, `unknown command "frobnicate"`) {
		t.Errorf("Expected unknown command error, got: %s", output)
	}
}
