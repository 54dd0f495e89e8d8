package cmd

import (
	"strings"
	"testing"

	"github.com/PolarWolf314/pm/internal/configs"
)

// TestOpenCommand contains tests for `pm open` and `pm browser`.
func TestOpenCommand(t *testing.T) {
	t.Run("OpenUniqueProject", testOpenUniqueProject)
	t.Run("OpenWithoutEditor", testOpenWithoutEditor)
	t.Run("OpenAmbiguousPick", testOpenAmbiguousPick)
	t.Run("OpenAmbiguousQuit", testOpenAmbiguousQuit)
	t.Run("OpenMissingNameFlag", testOpenMissingNameFlag)
	t.Run("BrowserOpensRepoURL", testBrowserOpensRepoURL)
	t.Run("BrowserWithoutRepoURL", testBrowserWithoutRepoURL)
}

func withEditor(s *configs.Settings) {
	s.EditorCommand = "code ."
}

func testOpenUniqueProject(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, withEditor)
	dir := th.addProject(t, "work", "site", "")

	output, code := th.run(t, "", "open", "--name", "site")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if len(th.editor) != 1 || th.editor[0] != "code .@"+dir {
		t.Errorf("Expected editor to run in %s, got %v", dir, th.editor)
	}
	if strings.Contains(output, "Multiple projects found") {
		t.Errorf("A unique name should not ask, got: %s", output)
	}
}

func testOpenWithoutEditor(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, nil)
	th.addProject(t, "work", "site", "")

	output, code := th.run(t, "", "open", "--name", "site")
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "editor command is not set") {
		t.Errorf("Expected editor error, got: %s", output)
	}
	if !strings.Contains(output, "pm config set --key editor_command") {
		t.Errorf("Expected hint, got: %s", output)
	}
}

func testOpenAmbiguousPick(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, withEditor)
	th.addProject(t, "personal", "site", "")
	workDir := th.addProject(t, "work", "site", "")

	output, code := th.run(t, "abc\n7\n2\n", "open", "--name", "site")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	for _, want := range []string{
		"Multiple projects found:",
		"[1] site (in group 'personal')",
		"[2] site (in group 'work')",
		"Your answer must be an integer.",
		"Options are: 1, 2.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
	if len(th.editor) != 1 || th.editor[0] != "code .@"+workDir {
		t.Errorf("Expected editor to run in %s, got %v", workDir, th.editor)
	}
}

func testOpenAmbiguousQuit(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, withEditor)
	th.addProject(t, "personal", "site", "")
	th.addProject(t, "work", "site", "")

	output, code := th.run(t, "q\n", "open", "--name", "site")
	if code != 0 {
		t.Fatalf("Expected exit code 0 for a chosen cancel, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "Operation cancelled.") {
		t.Errorf("Expected cancellation notice, got: %s", output)
	}
	if len(th.editor) != 0 {
		t.Errorf("Editor should not run after quitting, ran %v", th.editor)
	}
}

func testOpenMissingNameFlag(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, withEditor)

	output, code := th.run(t, "", "open")
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, `"name" not set`) {
		t.Errorf("Expected missing flag error, got: %s", output)
	}
}

func testBrowserOpensRepoURL(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, nil)
	th.addProject(t, "work", "site", "https://github.com/me/site")

	output, code := th.run(t, "", "browser", "--name", "site", "--group", "work")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d. Output: %s", code, output)
	}
	if len(th.browser) != 1 || th.browser[0] != "https://github.com/me/site" {
		t.Errorf("Expected repository page to open, got %v", th.browser)
	}
}

func testBrowserWithoutRepoURL(t *testing.T) {
	th := setupTestHome(t)
	th.writeSettings(t, nil)
	th.addProject(t, "work", "site", "")

	output, code := th.run(t, "", "browser", "--name", "site")
	if code != 1 {
		t.Fatalf("Expected exit code 1, got %d. Output: %s", code, output)
	}
	if !strings.Contains(output, "project has no repository URL") {
		t.Errorf("Expected missing URL error, got: %s", output)
	}
}
