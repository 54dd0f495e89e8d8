package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/pm/internal/configs"
)

// TestConfigCommand contains tests for the `pm config` subcommands.
func TestConfigCommand(t *testing.T) {
	t.Run("ListMasksToken", testConfigListMasksToken)
	t.Run("GetMasksToken", testConfigGetMasksToken)
	t.Run("GetRevealsToken", testConfigGetRevealsToken)
	t.Run("GetUnknownKey", testConfigGetUnknownKey)
	t.Run("SetEditorCommand", testConfigSetEditorCommand)
	t.Run("SetAsksForValue", testConfigSetAsksForValue)
	t.Run("SetMissingFolder", testConfigSetMissingFolder)
	t.Run("OpenRunsEditorInHome", testConfigOpenRunsEditorInHome)
	t.Run("NotConfigured", testConfigNotConfigured)
}

func withToken(s *configs.Settings) {
	s.Token = "ghp_secret1234"
}

func testConfigListMasksToken(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, withToken)
	th.addProject(t, "work", "site", "")
	th.addProject(t, "work", "api", "")

	output, code := th.run(t, "", "config", "list")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if strings.Contains(output, "ghp_secret") {
		t.Errorf("Token should be masked, got: %s", output)
	}
	for _, want := range []string{"**********1234", "(not set)", th.folder, "1 groups, 2 projects"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func testConfigGetMasksToken(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, withToken)

	output, code := th.run(t, "", "config", "get", "--key", "token")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if strings.TrimSpace(output) != "**********1234" {
		t.Errorf("Expected masked token, got: %q", output)
	}
}

func testConfigGetRevealsToken(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, withToken)

	output, code := th.run(t, "", "config", "get", "--key", "token", "--reveal")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if strings.TrimSpace(output) != "ghp_secret1234" {
		t.Errorf("Expected revealed token, got: %q", output)
	}
}

func testConfigGetUnknownKey(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, nil)

	output, code := th.run(t, "", "config", "get", "--key", "theme")
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "invalid key") {
		t.Errorf("Expected invalid key error, got: %s", output)
	}
}

func testConfigSetEditorCommand(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, nil)

	output, code := th.run(t, "", "config", "set", "--key", "editor_command", "--value", "nvim .")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if got := th.load(t).EditorCommand; got != "nvim ." {
		t.Errorf("Expected editor command to be saved, got %q", got)
	}
	if !strings.Contains(output, "Set `editor_command` to 'nvim .'") {
		t.Errorf("Expected confirmation, got: %s", output)
	}
}

func testConfigSetAsksForValue(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, nil)

	output, code := th.run(t, "ghp_fromprompt\n", "config", "set", "--key", "token")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if got := th.load(t).Token; got != "ghp_fromprompt" {
		t.Errorf("Expected token to be saved, got %q", got)
	}
	if strings.Contains(output, "to 'ghp_fromprompt'") {
		t.Errorf("Token should be masked in the confirmation, got: %s", output)
	}
}

func testConfigSetMissingFolder(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, nil)

	missing := filepath.Join(th.folder, "missing")
	output, code := th.run(t, "", "config", "set", "--key", "projects_folder", "--value", missing)
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d. Output: %s", code, output)
	}
	if got := th.load(t).ProjectsFolder; got != th.folder {
		t.Errorf("Projects folder should be unchanged, got %q", got)
	}
}

func testConfigOpenRunsEditorInHome(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, withEditor)

	output, code := th.run(t, "", "config", "open")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if len(th.editor) != 1 || th.editor[0] != "code .@"+th.home {
		t.Errorf("Expected editor to run in %s, got %v", th.home, th.editor)
	}
}

func testConfigNotConfigured(t *testing.T) {
	th := setupTestHome(t)

	output, code := th.run(t, "", "config", "list")
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "pm is not configured") {
		t.Errorf("Expected not configured error, got: %s", output)
	}
}
